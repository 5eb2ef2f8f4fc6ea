package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Project struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Slug        string             `bson:"slug" json:"slug"`
	Description string             `bson:"description" json:"description"` // markdown
	Tags        []string           `bson:"tags" json:"tags"`
	CoverImage  Image              `bson:"coverImage" json:"coverImage"`
	Category    string             `bson:"category,omitempty" json:"category"` // ProjectCategory name
	RepoURL     string             `bson:"repoUrl,omitempty" json:"repoUrl"`
	LiveURL     string             `bson:"liveUrl,omitempty" json:"liveUrl"`
	CreatedAt   int64              `bson:"createdAt" json:"createdAt"`
	UpdatedAt   int64              `bson:"updatedAt" json:"updatedAt"`
}

type ProjectCategory struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	CreatedAt int64              `bson:"createdAt" json:"createdAt"`
}
