package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection is the slice of the Mongo collection API the action layer uses.
// *mongo.Collection satisfies it through the wrapper below; tests substitute
// an in-memory implementation.
type Collection interface {
	InsertOne(ctx context.Context, doc any) error
	// FindOne decodes the first match into out. Returns mongo.ErrNoDocuments
	// when nothing matches.
	FindOne(ctx context.Context, filter bson.M, out any) error
	// FindAll decodes every match into out (a pointer to a slice), applying
	// sort when non-empty.
	FindAll(ctx context.Context, filter bson.M, sort bson.D, out any) error
	// UpdateOne applies update to the first match and reports how many
	// documents matched.
	UpdateOne(ctx context.Context, filter bson.M, update bson.M) (int64, error)
	// UpsertOne applies update to the first match, inserting when absent.
	UpsertOne(ctx context.Context, filter bson.M, update bson.M) error
	// DeleteOne removes the first match and reports how many were deleted.
	DeleteOne(ctx context.Context, filter bson.M) (int64, error)
	Count(ctx context.Context, filter bson.M) (int64, error)
}

type mongoCollection struct {
	c *mongo.Collection
}

func wrap(c *mongo.Collection) Collection {
	return &mongoCollection{c: c}
}

func (m *mongoCollection) InsertOne(ctx context.Context, doc any) error {
	_, err := m.c.InsertOne(ctx, doc)
	return err
}

func (m *mongoCollection) FindOne(ctx context.Context, filter bson.M, out any) error {
	return m.c.FindOne(ctx, filter).Decode(out)
}

func (m *mongoCollection) FindAll(ctx context.Context, filter bson.M, sort bson.D, out any) error {
	opts := options.Find()
	if len(sort) > 0 {
		opts.SetSort(sort)
	}
	cursor, err := m.c.Find(ctx, filter, opts)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)
	return cursor.All(ctx, out)
}

func (m *mongoCollection) UpdateOne(ctx context.Context, filter bson.M, update bson.M) (int64, error) {
	res, err := m.c.UpdateOne(ctx, filter, update)
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (m *mongoCollection) UpsertOne(ctx context.Context, filter bson.M, update bson.M) error {
	_, err := m.c.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (m *mongoCollection) DeleteOne(ctx context.Context, filter bson.M) (int64, error) {
	res, err := m.c.DeleteOne(ctx, filter)
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (m *mongoCollection) Count(ctx context.Context, filter bson.M) (int64, error) {
	return m.c.CountDocuments(ctx, filter)
}
