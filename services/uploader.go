package services

import (
	"context"
	"regexp"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/Nandu8821/Attendance-Project/constants"
)

// ImageUploader pushes a captured photo to the image host and returns its
// public URL.
type ImageUploader interface {
	Upload(ctx context.Context, base64Image, publicID string) (string, error)
}

// CloudinaryUploader implements ImageUploader against Cloudinary.
type CloudinaryUploader struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryUploader wraps an initialized Cloudinary client.
func NewCloudinaryUploader(cld *cloudinary.Cloudinary) *CloudinaryUploader {
	return &CloudinaryUploader{cld: cld}
}

var dataURLPrefix = regexp.MustCompile(`^data:image/[a-z]+;base64,`)

// NormalizeDataURL strips whatever data URL prefix came off the client and
// re-wraps the payload as a jpeg data URL, the form the upload API takes.
func NormalizeDataURL(base64Image string) string {
	return "data:image/jpeg;base64," + dataURLPrefix.ReplaceAllString(base64Image, "")
}

func (u *CloudinaryUploader) Upload(ctx context.Context, base64Image, publicID string) (string, error) {
	resp, err := u.cld.Upload.Upload(ctx, NormalizeDataURL(base64Image), uploader.UploadParams{
		PublicID: publicID,
		Folder:   constants.UploadFolder,
	})
	if err != nil {
		return "", err
	}
	return resp.SecureURL, nil
}
