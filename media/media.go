// Package media wraps the external image store.
package media

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"portfolio/models"
)

// UploadOptions constrain how an asset is stored.
type UploadOptions struct {
	Folder   string
	MaxWidth int // 0 = no resize
}

// Store uploads and destroys image assets. Upload takes a base64 payload
// (with or without a data-URI prefix) and returns the stable URL plus the
// handle needed to destroy the asset later.
type Store interface {
	Upload(ctx context.Context, payload string, opts UploadOptions) (models.Image, error)
	Destroy(ctx context.Context, publicID string) error
}

// Cloudinary implements Store against the Cloudinary upload API.
type Cloudinary struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinary(url string) (*Cloudinary, error) {
	cld, err := cloudinary.NewFromURL(url)
	if err != nil {
		return nil, fmt.Errorf("cloudinary configuration: %w", err)
	}
	return &Cloudinary{cld: cld}, nil
}

func (s *Cloudinary) Upload(ctx context.Context, payload string, opts UploadOptions) (models.Image, error) {
	if !strings.HasPrefix(payload, "data:") {
		payload = "data:image/png;base64," + payload
	}

	params := uploader.UploadParams{Folder: opts.Folder}
	if opts.MaxWidth > 0 {
		params.Transformation = fmt.Sprintf("c_limit,w_%d,q_auto", opts.MaxWidth)
	}

	res, err := s.cld.Upload.Upload(ctx, payload, params)
	if err != nil {
		return models.Image{}, err
	}
	return models.Image{URL: res.SecureURL, PublicID: res.PublicID}, nil
}

func (s *Cloudinary) Destroy(ctx context.Context, publicID string) error {
	res, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return err
	}
	if res.Result != "ok" && res.Result != "not found" {
		return fmt.Errorf("cloudinary destroy %s: %s", publicID, res.Result)
	}
	return nil
}
