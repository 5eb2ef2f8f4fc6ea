package actions

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"portfolio/database"
	"portfolio/media"
	"portfolio/models"
	"portfolio/slugify"
)

const blogFolder = "portfolio/blogs"

type Blogs struct {
	repo  repo[models.Blog]
	media media.Store
	rev   Revalidator
}

func NewBlogs(coll database.Collection, store media.Store, rev Revalidator) *Blogs {
	return &Blogs{
		repo: repo[models.Blog]{
			coll:    coll,
			label:   "blog",
			sortKey: "createdAt",
			search:  []string{"title", "tags"},
		},
		media: store,
		rev:   rev,
	}
}

type BlogInput struct {
	Title   string
	Content string
	Tags    []string
	Image   string // base64; required on create, empty keeps existing on update
}

func (in *BlogInput) validate(requireImage bool) error {
	if len(strings.TrimSpace(in.Title)) < 2 {
		return &ValidationError{Field: "title", Reason: "must be at least 2 characters"}
	}
	if slugify.Make(in.Title) == "" {
		return &ValidationError{Field: "title", Reason: "must contain letters or digits"}
	}
	if strings.TrimSpace(in.Content) == "" {
		return &ValidationError{Field: "content", Reason: "is required"}
	}
	if requireImage && in.Image == "" {
		return &ValidationError{Field: "coverImage", Reason: "is required"}
	}
	return nil
}

func (b *Blogs) Create(ctx context.Context, in BlogInput) (*models.Blog, error) {
	if err := in.validate(true); err != nil {
		return nil, err
	}

	img, err := uploadImage(ctx, b.media, in.Image, blogFolder)
	if err != nil {
		return nil, err
	}

	now := nowUnix()
	doc := models.Blog{
		ID:         primitive.NewObjectID(),
		Title:      strings.TrimSpace(in.Title),
		Slug:       slugify.Make(in.Title),
		Content:    in.Content,
		Tags:       in.Tags,
		CoverImage: img,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := b.repo.insert(ctx, doc); err != nil {
		return nil, err
	}

	b.rev.Revalidate("/", "/blog", "/blog/"+doc.Slug)
	return &doc, nil
}

func (b *Blogs) Update(ctx context.Context, id primitive.ObjectID, in BlogInput) (*models.Blog, error) {
	existing, err := b.repo.byID(ctx, id)
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
		img, err = replaceImage(ctx, b.media, existing.CoverImage, in.Image, blogFolder)
		if err != nil {
			return nil, err
		}
	}

	slug := slugify.Make(in.Title)
	set := bson.M{
		"title":      strings.TrimSpace(in.Title),
		"slug":       slug,
		"content":    in.Content,
		"tags":       in.Tags,
		"coverImage": img,
		"updatedAt":  nowUnix(),
	}
	if err := b.repo.updateByID(ctx, id, set); err != nil {
		return nil, err
	}

	b.rev.Revalidate("/", "/blog", "/blog/"+existing.Slug, "/blog/"+slug)
	return b.repo.byID(ctx, id)
}

func (b *Blogs) Delete(ctx context.Context, id primitive.ObjectID) error {
	existing, err := b.repo.byID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}

	destroyImage(ctx, b.media, existing.CoverImage)
	if err := b.repo.deleteByID(ctx, id); err != nil {
		return err
	}

	b.rev.Revalidate("/", "/blog", "/blog/"+existing.Slug)
	return nil
}

func (b *Blogs) List(ctx context.Context, f Filter) ([]models.Blog, error) {
	return b.repo.list(ctx, f)
}

func (b *Blogs) ByID(ctx context.Context, id primitive.ObjectID) (*models.Blog, error) {
	return b.repo.byID(ctx, id)
}

func (b *Blogs) BySlug(ctx context.Context, slug string) (*models.Blog, error) {
	return b.repo.bySlug(ctx, slug)
}

func (b *Blogs) Count(ctx context.Context) (int64, error) {
	return b.repo.count(ctx, bson.M{})
}

// IncrementViews bumps the detail-page counter. Analytics bookkeeping must
// never block a visitor-facing read, so failures are logged and swallowed.
func (b *Blogs) IncrementViews(ctx context.Context, slug string) {
	bestEffort("blog view increment", func() error {
		matched, err := b.repo.coll.UpdateOne(ctx, bson.M{"slug": slug}, bson.M{"$inc": bson.M{"views": 1}})
		if err != nil {
			return err
		}
		if matched == 0 {
			return fmt.Errorf("blog %q not found", slug)
		}
		return nil
	})
}

// Related returns up to limit blogs sharing at least one tag.
func (b *Blogs) Related(ctx context.Context, slug string, limit int) ([]models.Blog, error) {
	blog, err := b.repo.bySlug(ctx, slug)
	if err != nil || blog == nil {
		return nil, err
	}
	if len(blog.Tags) == 0 {
		return nil, nil
	}

	docs, err := b.repo.find(ctx, bson.M{
		"slug": bson.M{"$ne": slug},
		"tags": bson.M{"$in": blog.Tags},
	})
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(docs) > limit {
		docs = docs[:limit]
	}
	return docs, nil
}
