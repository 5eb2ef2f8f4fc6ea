package actions

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"portfolio/database"
	"portfolio/models"
)

type FAQs struct {
	repo repo[models.FAQ]
	rev  Revalidator
}

func NewFAQs(coll database.Collection, rev Revalidator) *FAQs {
	return &FAQs{
		repo: repo[models.FAQ]{coll: coll, label: "faq", sortKey: "createdAt", search: []string{"question"}},
		rev:  rev,
	}
}

type FAQInput struct {
	Question string
	Answer   string
}

func (in *FAQInput) validate() error {
	if strings.TrimSpace(in.Question) == "" {
		return &ValidationError{Field: "question", Reason: "is required"}
	}
	if strings.TrimSpace(in.Answer) == "" {
		return &ValidationError{Field: "answer", Reason: "is required"}
	}
	return nil
}

func (f *FAQs) Create(ctx context.Context, in FAQInput) (*models.FAQ, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	now := nowUnix()
	doc := models.FAQ{
		ID:        primitive.NewObjectID(),
		Question:  strings.TrimSpace(in.Question),
		Answer:    strings.TrimSpace(in.Answer),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := f.repo.insert(ctx, doc); err != nil {
		return nil, err
	}

	f.rev.Revalidate("/faq")
	return &doc, nil
}

func (f *FAQs) Update(ctx context.Context, id primitive.ObjectID, in FAQInput) (*models.FAQ, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	set := bson.M{
		"question":  strings.TrimSpace(in.Question),
		"answer":    strings.TrimSpace(in.Answer),
		"updatedAt": nowUnix(),
	}
	if err := f.repo.updateByID(ctx, id, set); err != nil {
		return nil, err
	}

	f.rev.Revalidate("/faq")
	return f.repo.byID(ctx, id)
}

func (f *FAQs) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := f.repo.deleteByID(ctx, id); err != nil {
		return err
	}
	f.rev.Revalidate("/faq")
	return nil
}

func (f *FAQs) List(ctx context.Context) ([]models.FAQ, error) {
	return f.repo.list(ctx, Filter{})
}
