package actions

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"portfolio/database"
	"portfolio/media"
	"portfolio/models"
)

const siteFolder = "portfolio/site"

// Site manages the three singleton documents: Intro, About and Theme.
// Each lives under a fixed key and is written with upsert semantics, so the
// "at most one document" invariant is explicit rather than implied.
type Site struct {
	intros database.Collection
	abouts database.Collection
	themes database.Collection
	media  media.Store
	rev    Revalidator
}

func NewSite(intros, abouts, themes database.Collection, store media.Store, rev Revalidator) *Site {
	return &Site{intros: intros, abouts: abouts, themes: themes, media: store, rev: rev}
}

func singletonFilter() bson.M {
	return bson.M{"key": models.SingletonKey}
}

func (s *Site) Intro(ctx context.Context) (*models.Intro, error) {
	var doc models.Intro
	err := s.intros.FindOne(ctx, singletonFilter(), &doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, &PersistenceError{Op: "find intro", Err: err}
	}
	return &doc, nil
}

type IntroInput struct {
	Name      string
	Headline  string
	Summary   string
	Email     string
	Location  string
	GithubURL string
	Linkedin  string
	ResumeURL string
	Image     string // base64; empty keeps the existing avatar
}

func (s *Site) UpsertIntro(ctx context.Context, in IntroInput) (*models.Intro, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, &ValidationError{Field: "name", Reason: "is required"}
	}
	if strings.TrimSpace(in.Headline) == "" {
		return nil, &ValidationError{Field: "headline", Reason: "is required"}
	}

	existing, err := s.Intro(ctx)
	if err != nil {
		return nil, err
	}

	var avatar models.Image
	if existing != nil {
		avatar = existing.Avatar
	}
	if in.Image != "" {
		avatar, err = replaceImage(ctx, s.media, avatar, in.Image, siteFolder)
		if err != nil {
			return nil, err
		}
	}

	set := bson.M{
		"key":         models.SingletonKey,
		"name":        strings.TrimSpace(in.Name),
		"headline":    strings.TrimSpace(in.Headline),
		"summary":     in.Summary,
		"email":       in.Email,
		"location":    in.Location,
		"githubUrl":   in.GithubURL,
		"linkedinUrl": in.Linkedin,
		"resumeUrl":   in.ResumeURL,
		"avatar":      avatar,
		"updatedAt":   nowUnix(),
	}
	if err := s.intros.UpsertOne(ctx, singletonFilter(), bson.M{"$set": set}); err != nil {
		return nil, &PersistenceError{Op: "upsert intro", Err: err}
	}

	s.rev.Revalidate("/")
	return s.Intro(ctx)
}

func (s *Site) About(ctx context.Context) (*models.About, error) {
	var doc models.About
	err := s.abouts.FindOne(ctx, singletonFilter(), &doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, &PersistenceError{Op: "find about", Err: err}
	}
	return &doc, nil
}

type AboutInput struct {
	Heading string
	Body    string
	Skills  []string
	Image   string // base64; empty keeps the existing photo
}

func (s *Site) UpsertAbout(ctx context.Context, in AboutInput) (*models.About, error) {
	if strings.TrimSpace(in.Heading) == "" {
		return nil, &ValidationError{Field: "heading", Reason: "is required"}
	}
	if strings.TrimSpace(in.Body) == "" {
		return nil, &ValidationError{Field: "body", Reason: "is required"}
	}

	existing, err := s.About(ctx)
	if err != nil {
		return nil, err
	}

	var photo models.Image
	if existing != nil {
		photo = existing.Photo
	}
	if in.Image != "" {
		photo, err = replaceImage(ctx, s.media, photo, in.Image, siteFolder)
		if err != nil {
			return nil, err
		}
	}

	set := bson.M{
		"key":       models.SingletonKey,
		"heading":   strings.TrimSpace(in.Heading),
		"body":      in.Body,
		"skills":    in.Skills,
		"photo":     photo,
		"updatedAt": nowUnix(),
	}
	if err := s.abouts.UpsertOne(ctx, singletonFilter(), bson.M{"$set": set}); err != nil {
		return nil, &PersistenceError{Op: "upsert about", Err: err}
	}

	s.rev.Revalidate("/", "/about")
	return s.About(ctx)
}

func (s *Site) Theme(ctx context.Context) (*models.Theme, error) {
	var doc models.Theme
	err := s.themes.FindOne(ctx, singletonFilter(), &doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, &PersistenceError{Op: "find theme", Err: err}
	}
	return &doc, nil
}

type ThemeInput struct {
	Primary    string
	Accent     string
	Background string
	Font       string
}

func (s *Site) UpsertTheme(ctx context.Context, in ThemeInput) (*models.Theme, error) {
	if strings.TrimSpace(in.Primary) == "" {
		return nil, &ValidationError{Field: "primary", Reason: "is required"}
	}

	set := bson.M{
		"key":        models.SingletonKey,
		"primary":    in.Primary,
		"accent":     in.Accent,
		"background": in.Background,
		"font":       in.Font,
		"updatedAt":  nowUnix(),
	}
	if err := s.themes.UpsertOne(ctx, singletonFilter(), bson.M{"$set": set}); err != nil {
		return nil, &PersistenceError{Op: "upsert theme", Err: err}
	}

	s.rev.Revalidate("/")
	return s.Theme(ctx)
}

// ResetTheme deletes the override document; pages fall back to defaults.
// Resetting an already-default theme is a no-op, not an error.
func (s *Site) ResetTheme(ctx context.Context) error {
	if _, err := s.themes.DeleteOne(ctx, singletonFilter()); err != nil {
		return &PersistenceError{Op: "reset theme", Err: err}
	}
	s.rev.Revalidate("/")
	return nil
}
