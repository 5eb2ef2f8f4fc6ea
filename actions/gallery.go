package actions

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"portfolio/database"
	"portfolio/media"
	"portfolio/models"
)

const galleryFolder = "portfolio/gallery"

type Gallery struct {
	repo  repo[models.GalleryImage]
	media media.Store
	rev   Revalidator
}

func NewGallery(coll database.Collection, store media.Store, rev Revalidator) *Gallery {
	return &Gallery{
		repo:  repo[models.GalleryImage]{coll: coll, label: "gallery image", sortKey: "createdAt"},
		media: store,
		rev:   rev,
	}
}

func (g *Gallery) Create(ctx context.Context, title, payload string) (*models.GalleryImage, error) {
	if strings.TrimSpace(title) == "" {
		return nil, &ValidationError{Field: "title", Reason: "is required"}
	}
	if payload == "" {
		return nil, &ValidationError{Field: "image", Reason: "is required"}
	}

	img, err := uploadImage(ctx, g.media, payload, galleryFolder)
	if err != nil {
		return nil, err
	}

	doc := models.GalleryImage{
		ID:        primitive.NewObjectID(),
		Title:     strings.TrimSpace(title),
		Image:     img,
		CreatedAt: nowUnix(),
	}
	if err := g.repo.insert(ctx, doc); err != nil {
		return nil, err
	}

	g.rev.Revalidate("/gallery")
	return &doc, nil
}

func (g *Gallery) List(ctx context.Context) ([]models.GalleryImage, error) {
	return g.repo.list(ctx, Filter{})
}

func (g *Gallery) Delete(ctx context.Context, id primitive.ObjectID) error {
	existing, err := g.repo.byID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}

	destroyImage(ctx, g.media, existing.Image)
	if err := g.repo.deleteByID(ctx, id); err != nil {
		return err
	}

	g.rev.Revalidate("/gallery")
	return nil
}
