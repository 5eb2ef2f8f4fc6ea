package actions

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"portfolio/database"
	"portfolio/models"
)

// Education and Experience share the same shape: two labels, a date range
// where a zero end date means "ongoing", and no media assets.

type Educations struct {
	repo repo[models.Education]
	rev  Revalidator
}

func NewEducations(coll database.Collection, rev Revalidator) *Educations {
	return &Educations{
		repo: repo[models.Education]{coll: coll, label: "education", sortKey: "startDate"},
		rev:  rev,
	}
}

type EducationInput struct {
	School      string
	Degree      string
	StartDate   int64
	EndDate     int64 // 0 = ongoing
	Description string
}

func (in *EducationInput) validate() error {
	if strings.TrimSpace(in.School) == "" {
		return &ValidationError{Field: "school", Reason: "is required"}
	}
	if strings.TrimSpace(in.Degree) == "" {
		return &ValidationError{Field: "degree", Reason: "is required"}
	}
	if in.StartDate <= 0 {
		return &ValidationError{Field: "startDate", Reason: "is required"}
	}
	if in.EndDate != 0 && in.EndDate < in.StartDate {
		return &ValidationError{Field: "endDate", Reason: "must not precede startDate"}
	}
	return nil
}

func (e *Educations) Create(ctx context.Context, in EducationInput) (*models.Education, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	now := nowUnix()
	doc := models.Education{
		ID:          primitive.NewObjectID(),
		School:      strings.TrimSpace(in.School),
		Degree:      strings.TrimSpace(in.Degree),
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := e.repo.insert(ctx, doc); err != nil {
		return nil, err
	}

	e.rev.Revalidate("/about")
	return &doc, nil
}

func (e *Educations) Update(ctx context.Context, id primitive.ObjectID, in EducationInput) (*models.Education, error) {
	existing, err := e.repo.byID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	set := bson.M{
		"school":      strings.TrimSpace(in.School),
		"degree":      strings.TrimSpace(in.Degree),
		"startDate":   in.StartDate,
		"endDate":     in.EndDate,
		"description": in.Description,
		"updatedAt":   nowUnix(),
	}
	if err := e.repo.updateByID(ctx, id, set); err != nil {
		return nil, err
	}

	e.rev.Revalidate("/about")
	return e.repo.byID(ctx, id)
}

func (e *Educations) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := e.repo.deleteByID(ctx, id); err != nil {
		return err
	}
	e.rev.Revalidate("/about")
	return nil
}

func (e *Educations) List(ctx context.Context) ([]models.Education, error) {
	return e.repo.list(ctx, Filter{})
}

type Experiences struct {
	repo repo[models.Experience]
	rev  Revalidator
}

func NewExperiences(coll database.Collection, rev Revalidator) *Experiences {
	return &Experiences{
		repo: repo[models.Experience]{coll: coll, label: "experience", sortKey: "startDate"},
		rev:  rev,
	}
}

type ExperienceInput struct {
	Company     string
	Role        string
	StartDate   int64
	EndDate     int64 // 0 = current position
	Description string
}

func (in *ExperienceInput) validate() error {
	if strings.TrimSpace(in.Company) == "" {
		return &ValidationError{Field: "company", Reason: "is required"}
	}
	if strings.TrimSpace(in.Role) == "" {
		return &ValidationError{Field: "role", Reason: "is required"}
	}
	if in.StartDate <= 0 {
		return &ValidationError{Field: "startDate", Reason: "is required"}
	}
	if in.EndDate != 0 && in.EndDate < in.StartDate {
		return &ValidationError{Field: "endDate", Reason: "must not precede startDate"}
	}
	return nil
}

func (e *Experiences) Create(ctx context.Context, in ExperienceInput) (*models.Experience, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	now := nowUnix()
	doc := models.Experience{
		ID:          primitive.NewObjectID(),
		Company:     strings.TrimSpace(in.Company),
		Role:        strings.TrimSpace(in.Role),
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := e.repo.insert(ctx, doc); err != nil {
		return nil, err
	}

	e.rev.Revalidate("/about")
	return &doc, nil
}

func (e *Experiences) Update(ctx context.Context, id primitive.ObjectID, in ExperienceInput) (*models.Experience, error) {
	existing, err := e.repo.byID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	set := bson.M{
		"company":     strings.TrimSpace(in.Company),
		"role":        strings.TrimSpace(in.Role),
		"startDate":   in.StartDate,
		"endDate":     in.EndDate,
		"description": in.Description,
		"updatedAt":   nowUnix(),
	}
	if err := e.repo.updateByID(ctx, id, set); err != nil {
		return nil, err
	}

	e.rev.Revalidate("/about")
	return e.repo.byID(ctx, id)
}

func (e *Experiences) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := e.repo.deleteByID(ctx, id); err != nil {
		return err
	}
	e.rev.Revalidate("/about")
	return nil
}

func (e *Experiences) List(ctx context.Context) ([]models.Experience, error) {
	return e.repo.list(ctx, Filter{})
}
