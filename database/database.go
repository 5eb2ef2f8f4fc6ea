package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DB holds the shared Mongo client and one handle per content collection.
// The client is created once at startup and reused by every request.
type DB struct {
	client *mongo.Client
	db     *mongo.Database

	Projects     Collection
	Categories   Collection
	Blogs        Collection
	Certificates Collection
	Educations   Collection
	Experiences  Collection
	FAQs         Collection
	Intros       Collection
	Abouts       Collection
	Themes       Collection
	Gallery      Collection
	Messages     Collection
	Views        Collection
	PushSubs     Collection
}

func Connect(ctx context.Context, uri, name string) (*DB, error) {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	db := client.Database(name)
	return &DB{
		client:       client,
		db:           db,
		Projects:     wrap(db.Collection("projects")),
		Categories:   wrap(db.Collection("project_categories")),
		Blogs:        wrap(db.Collection("blogs")),
		Certificates: wrap(db.Collection("certificates")),
		Educations:   wrap(db.Collection("educations")),
		Experiences:  wrap(db.Collection("experiences")),
		FAQs:         wrap(db.Collection("faqs")),
		Intros:       wrap(db.Collection("intros")),
		Abouts:       wrap(db.Collection("abouts")),
		Themes:       wrap(db.Collection("themes")),
		Gallery:      wrap(db.Collection("gallery")),
		Messages:     wrap(db.Collection("messages")),
		Views:        wrap(db.Collection("views")),
		PushSubs:     wrap(db.Collection("push_subscriptions")),
	}, nil
}

// EnsureIndexes creates the unique indexes slug collisions rely on.
func (d *DB) EnsureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)

	for coll, key := range map[string]string{
		"projects":           "slug",
		"blogs":              "slug",
		"project_categories": "name",
	} {
		_, err := d.db.Collection(coll).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: key, Value: 1}},
			Options: unique,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (d *DB) Ping(ctx context.Context) error {
	return d.client.Ping(ctx, nil)
}

func (d *DB) Disconnect(ctx context.Context) error {
	if d.client == nil {
		return nil
	}
	return d.client.Disconnect(ctx)
}
