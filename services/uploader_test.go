package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDataURL(t *testing.T) {
	cases := map[string]string{
		"data:image/png;base64,aGVsbG8=":  "data:image/jpeg;base64,aGVsbG8=",
		"data:image/jpeg;base64,aGVsbG8=": "data:image/jpeg;base64,aGVsbG8=",
		"aGVsbG8=":                        "data:image/jpeg;base64,aGVsbG8=",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeDataURL(in), "input %q", in)
	}
}
