package actions

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"portfolio/database"
	"portfolio/media"
	"portfolio/models"
	"portfolio/slugify"
)

const projectFolder = "portfolio/projects"

type Projects struct {
	repo  repo[models.Project]
	media media.Store
	rev   Revalidator
}

func NewProjects(coll database.Collection, store media.Store, rev Revalidator) *Projects {
	return &Projects{
		repo: repo[models.Project]{
			coll:    coll,
			label:   "project",
			sortKey: "createdAt",
			search:  []string{"title", "tags", "category"},
		},
		media: store,
		rev:   rev,
	}
}

type ProjectInput struct {
	Title       string
	Description string
	Tags        []string
	Category    string
	RepoURL     string
	LiveURL     string
	// Image is a base64 payload. Required on create; on update an empty
	// value keeps the existing asset untouched.
	Image string
}

func (in *ProjectInput) validate(requireImage bool) error {
	if len(strings.TrimSpace(in.Title)) < 2 {
		return &ValidationError{Field: "title", Reason: "must be at least 2 characters"}
	}
	if slugify.Make(in.Title) == "" {
		return &ValidationError{Field: "title", Reason: "must contain letters or digits"}
	}
	if strings.TrimSpace(in.Description) == "" {
		return &ValidationError{Field: "description", Reason: "is required"}
	}
	if requireImage && in.Image == "" {
		return &ValidationError{Field: "coverImage", Reason: "is required"}
	}
	return nil
}

func (p *Projects) Create(ctx context.Context, in ProjectInput) (*models.Project, error) {
	if err := in.validate(true); err != nil {
		return nil, err
	}

	// Upload before insert: a failed upload must leave no document behind.
	// A failed insert can orphan the asset; accepted, see DESIGN.md.
	img, err := uploadImage(ctx, p.media, in.Image, projectFolder)
	if err != nil {
		return nil, err
	}

	now := nowUnix()
	doc := models.Project{
		ID:          primitive.NewObjectID(),
		Title:       strings.TrimSpace(in.Title),
		Slug:        slugify.Make(in.Title),
		Description: in.Description,
		Tags:        in.Tags,
		CoverImage:  img,
		Category:    in.Category,
		RepoURL:     in.RepoURL,
		LiveURL:     in.LiveURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := p.repo.insert(ctx, doc); err != nil {
		return nil, err
	}

	p.rev.Revalidate("/", "/projects", "/projects/"+doc.Slug)
	return &doc, nil
}

func (p *Projects) Update(ctx context.Context, id primitive.ObjectID, in ProjectInput) (*models.Project, error) {
	existing, err := p.repo.byID(ctx, id)
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
		img, err = replaceImage(ctx, p.media, existing.CoverImage, in.Image, projectFolder)
		if err != nil {
			return nil, err
		}
	}

	slug := slugify.Make(in.Title)
	set := bson.M{
		"title":       strings.TrimSpace(in.Title),
		"slug":        slug,
		"description": in.Description,
		"tags":        in.Tags,
		"category":    in.Category,
		"repoUrl":     in.RepoURL,
		"liveUrl":     in.LiveURL,
		"coverImage":  img,
		"updatedAt":   nowUnix(),
	}
	if err := p.repo.updateByID(ctx, id, set); err != nil {
		return nil, err
	}

	p.rev.Revalidate("/", "/projects", "/projects/"+existing.Slug, "/projects/"+slug)
	return p.repo.byID(ctx, id)
}

func (p *Projects) Delete(ctx context.Context, id primitive.ObjectID) error {
	existing, err := p.repo.byID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		// Concurrent delete already removed it; nothing left to destroy.
		return ErrNotFound
	}

	destroyImage(ctx, p.media, existing.CoverImage)
	if err := p.repo.deleteByID(ctx, id); err != nil {
		return err
	}

	p.rev.Revalidate("/", "/projects", "/projects/"+existing.Slug)
	return nil
}

func (p *Projects) List(ctx context.Context, f Filter) ([]models.Project, error) {
	return p.repo.list(ctx, f)
}

func (p *Projects) ByID(ctx context.Context, id primitive.ObjectID) (*models.Project, error) {
	return p.repo.byID(ctx, id)
}

func (p *Projects) BySlug(ctx context.Context, slug string) (*models.Project, error) {
	return p.repo.bySlug(ctx, slug)
}

func (p *Projects) Count(ctx context.Context) (int64, error) {
	return p.repo.count(ctx, bson.M{})
}

// Related returns up to limit projects sharing the category or a tag.
func (p *Projects) Related(ctx context.Context, slug string, limit int) ([]models.Project, error) {
	proj, err := p.repo.bySlug(ctx, slug)
	if err != nil || proj == nil {
		return nil, err
	}

	var or []bson.M
	if proj.Category != "" {
		or = append(or, bson.M{"category": proj.Category})
	}
	if len(proj.Tags) > 0 {
		or = append(or, bson.M{"tags": bson.M{"$in": proj.Tags}})
	}
	if len(or) == 0 {
		return nil, nil
	}

	docs, err := p.repo.find(ctx, bson.M{"slug": bson.M{"$ne": slug}, "$or": or})
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(docs) > limit {
		docs = docs[:limit]
	}
	return docs, nil
}
