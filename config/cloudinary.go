package config

import (
	"fmt"
	"os"

	"github.com/cloudinary/cloudinary-go/v2"
)

var Cloudinary *cloudinary.Cloudinary

// ConnectCloudinary initializes the image host client. CLOUDINARY_URL wins
// over the discrete cloud name / key / secret variables.
func ConnectCloudinary() error {
	var err error
	if url := os.Getenv("CLOUDINARY_URL"); url != "" {
		Cloudinary, err = cloudinary.NewFromURL(url)
	} else {
		Cloudinary, err = cloudinary.NewFromParams(
			os.Getenv("CLOUDINARY_CLOUD_NAME"),
			os.Getenv("CLOUDINARY_API_KEY"),
			os.Getenv("CLOUDINARY_API_SECRET"),
		)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize Cloudinary: %w", err)
	}
	return nil
}
