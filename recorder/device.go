package recorder

import (
	"context"
	"encoding/base64"
	"os"

	"github.com/Nandu8821/Attendance-Project/errors"
)

// Position is a device-reported coordinate pair.
type Position struct {
	Latitude  float64
	Longitude float64
}

// Geolocator models the device geolocation API as a blocking call that
// honors ctx cancellation. Implementations return ErrLocationDenied or
// ErrLocationUnsupported from the errors package on typed failures.
type Geolocator interface {
	Current(ctx context.Context) (Position, error)
}

// Camera models photo capture. Capture returns the photo as a base64 image
// data URL, or ErrCameraUnavailable.
type Camera interface {
	Capture(ctx context.Context) (string, error)
}

// StaticGeolocator reports a fixed position, for kiosks mounted at a known
// spot.
type StaticGeolocator struct {
	Position Position
}

func (g StaticGeolocator) Current(ctx context.Context) (Position, error) {
	if err := ctx.Err(); err != nil {
		return Position{}, err
	}
	return g.Position, nil
}

// FileCamera serves a photo from a file on disk as a jpeg data URL.
type FileCamera struct {
	Path string
}

func (c FileCamera) Capture(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := os.ReadFile(c.Path)
	if err != nil {
		return "", errors.ErrCameraUnavailable
	}
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(data), nil
}
