package actions

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"portfolio/database"
)

// Filter narrows a list call. Query is matched case-insensitively against
// the entity's searchable fields (OR); Category is an exact match.
type Filter struct {
	Query    string
	Category string
}

// repo bundles the per-entity CRUD plumbing shared by every action module:
// collection handle, default sort and searchable fields are configuration,
// not duplicated logic.
type repo[T any] struct {
	coll    database.Collection
	label   string
	sortKey string
	sortAsc bool
	search  []string
}

func (r *repo[T]) byID(ctx context.Context, id primitive.ObjectID) (*T, error) {
	return r.byField(ctx, "_id", id)
}

func (r *repo[T]) bySlug(ctx context.Context, slug string) (*T, error) {
	return r.byField(ctx, "slug", slug)
}

// byField returns (nil, nil) when nothing matches; absence is not an error.
func (r *repo[T]) byField(ctx context.Context, field string, value any) (*T, error) {
	var doc T
	err := r.coll.FindOne(ctx, bson.M{field: value}, &doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, &PersistenceError{Op: "find " + r.label, Err: err}
	}
	return &doc, nil
}

func (r *repo[T]) list(ctx context.Context, f Filter) ([]T, error) {
	filter := bson.M{}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	if q := strings.TrimSpace(f.Query); q != "" && len(r.search) > 0 {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(q), Options: "i"}
		or := make([]bson.M, 0, len(r.search))
		for _, field := range r.search {
			or = append(or, bson.M{field: re})
		}
		filter["$or"] = or
	}
	return r.find(ctx, filter)
}

func (r *repo[T]) find(ctx context.Context, filter bson.M) ([]T, error) {
	dir := -1
	if r.sortAsc {
		dir = 1
	}
	docs := []T{}
	err := r.coll.FindAll(ctx, filter, bson.D{{Key: r.sortKey, Value: dir}}, &docs)
	if err != nil {
		return nil, &PersistenceError{Op: "list " + r.label, Err: err}
	}
	return docs, nil
}

func (r *repo[T]) insert(ctx context.Context, doc any) error {
	if err := r.coll.InsertOne(ctx, doc); err != nil {
		return &PersistenceError{Op: "insert " + r.label, Err: err}
	}
	return nil
}

func (r *repo[T]) updateByID(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	matched, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return &PersistenceError{Op: "update " + r.label, Err: err}
	}
	if matched == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repo[T]) deleteByID(ctx context.Context, id primitive.ObjectID) error {
	deleted, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return &PersistenceError{Op: "delete " + r.label, Err: err}
	}
	if deleted == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repo[T]) count(ctx context.Context, filter bson.M) (int64, error) {
	n, err := r.coll.Count(ctx, filter)
	if err != nil {
		return 0, &PersistenceError{Op: "count " + r.label, Err: err}
	}
	return n, nil
}
