package actions

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"portfolio/database"
	"portfolio/media"
	"portfolio/models"
)

const certificateFolder = "portfolio/certificates"

type Certificates struct {
	repo  repo[models.Certificate]
	media media.Store
	rev   Revalidator
}

func NewCertificates(coll database.Collection, store media.Store, rev Revalidator) *Certificates {
	return &Certificates{
		repo: repo[models.Certificate]{
			coll:    coll,
			label:   "certificate",
			sortKey: "issueDate", // newest credentials first
			search:  []string{"title", "organization"},
		},
		media: store,
		rev:   rev,
	}
}

type CertificateInput struct {
	Title         string
	Organization  string
	IssueDate     int64
	CredentialURL string
	Image         string
}

func (in *CertificateInput) validate(requireImage bool) error {
	if strings.TrimSpace(in.Title) == "" {
		return &ValidationError{Field: "title", Reason: "is required"}
	}
	if strings.TrimSpace(in.Organization) == "" {
		return &ValidationError{Field: "organization", Reason: "is required"}
	}
	if in.IssueDate <= 0 {
		return &ValidationError{Field: "issueDate", Reason: "is required"}
	}
	if requireImage && in.Image == "" {
		return &ValidationError{Field: "coverImage", Reason: "is required"}
	}
	return nil
}

func (c *Certificates) Create(ctx context.Context, in CertificateInput) (*models.Certificate, error) {
	if err := in.validate(true); err != nil {
		return nil, err
	}

	img, err := uploadImage(ctx, c.media, in.Image, certificateFolder)
	if err != nil {
		return nil, err
	}

	now := nowUnix()
	doc := models.Certificate{
		ID:            primitive.NewObjectID(),
		Title:         strings.TrimSpace(in.Title),
		Organization:  strings.TrimSpace(in.Organization),
		IssueDate:     in.IssueDate,
		CredentialURL: in.CredentialURL,
		CoverImage:    img,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := c.repo.insert(ctx, doc); err != nil {
		return nil, err
	}

	c.rev.Revalidate("/certificates")
	return &doc, nil
}

func (c *Certificates) Update(ctx context.Context, id primitive.ObjectID, in CertificateInput) (*models.Certificate, error) {
	existing, err := c.repo.byID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}
	if err := in.validate(false); err != nil {
		return nil, err
	}

	img := existing.CoverImage
	if in.Image != "" {
		img, err = replaceImage(ctx, c.media, existing.CoverImage, in.Image, certificateFolder)
		if err != nil {
			return nil, err
		}
	}

	set := bson.M{
		"title":         strings.TrimSpace(in.Title),
		"organization":  strings.TrimSpace(in.Organization),
		"issueDate":     in.IssueDate,
		"credentialUrl": in.CredentialURL,
		"coverImage":    img,
		"updatedAt":     nowUnix(),
	}
	if err := c.repo.updateByID(ctx, id, set); err != nil {
		return nil, err
	}

	c.rev.Revalidate("/certificates")
	return c.repo.byID(ctx, id)
}

func (c *Certificates) Delete(ctx context.Context, id primitive.ObjectID) error {
	existing, err := c.repo.byID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}

	destroyImage(ctx, c.media, existing.CoverImage)
	if err := c.repo.deleteByID(ctx, id); err != nil {
		return err
	}

	c.rev.Revalidate("/certificates")
	return nil
}

func (c *Certificates) List(ctx context.Context, f Filter) ([]models.Certificate, error) {
	return c.repo.list(ctx, f)
}

func (c *Certificates) ByID(ctx context.Context, id primitive.ObjectID) (*models.Certificate, error) {
	return c.repo.byID(ctx, id)
}
