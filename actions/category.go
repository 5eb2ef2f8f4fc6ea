package actions

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"portfolio/database"
	"portfolio/models"
)

type Categories struct {
	repo     repo[models.ProjectCategory]
	projects database.Collection
	rev      Revalidator
}

func NewCategories(coll, projects database.Collection, rev Revalidator) *Categories {
	return &Categories{
		repo: repo[models.ProjectCategory]{
			coll:    coll,
			label:   "project category",
			sortKey: "name",
			sortAsc: true,
		},
		projects: projects,
		rev:      rev,
	}
}

func (c *Categories) Create(ctx context.Context, name string) (*models.ProjectCategory, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &ValidationError{Field: "name", Reason: "is required"}
	}

	doc := models.ProjectCategory{
		ID:        primitive.NewObjectID(),
		Name:      name,
		CreatedAt: nowUnix(),
	}
	if err := c.repo.insert(ctx, doc); err != nil {
		return nil, err
	}

	c.rev.Revalidate("/projects")
	return &doc, nil
}

func (c *Categories) List(ctx context.Context) ([]models.ProjectCategory, error) {
	return c.repo.list(ctx, Filter{})
}

// Delete refuses while any project still references the category's name.
// The check lives here: the store knows nothing about the soft reference.
func (c *Categories) Delete(ctx context.Context, id primitive.ObjectID) error {
	cat, err := c.repo.byID(ctx, id)
	if err != nil {
		return err
	}
	if cat == nil {
		return ErrNotFound
	}

	n, err := c.projects.Count(ctx, bson.M{"category": cat.Name})
	if err != nil {
		return &PersistenceError{Op: "count projects in category", Err: err}
	}
	if n > 0 {
		return &ReferentialIntegrityError{
			Message: fmt.Sprintf("category %q is used by %d project(s); reassign them first", cat.Name, n),
		}
	}

	if err := c.repo.deleteByID(ctx, id); err != nil {
		return err
	}
	c.rev.Revalidate("/projects")
	return nil
}
