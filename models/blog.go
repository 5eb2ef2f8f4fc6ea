package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Blog struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title      string             `bson:"title" json:"title"`
	Slug       string             `bson:"slug" json:"slug"`
	Content    string             `bson:"content" json:"content"` // markdown
	Tags       []string           `bson:"tags" json:"tags"`
	CoverImage Image              `bson:"coverImage" json:"coverImage"`
	Views      int64              `bson:"views" json:"views"`
	CreatedAt  int64              `bson:"createdAt" json:"createdAt"`
	UpdatedAt  int64              `bson:"updatedAt" json:"updatedAt"`
}
