package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Certificate struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title         string             `bson:"title" json:"title"`
	Organization  string             `bson:"organization" json:"organization"`
	IssueDate     int64              `bson:"issueDate" json:"issueDate"` // unix seconds
	CredentialURL string             `bson:"credentialUrl,omitempty" json:"credentialUrl"`
	CoverImage    Image              `bson:"coverImage" json:"coverImage"`
	CreatedAt     int64              `bson:"createdAt" json:"createdAt"`
	UpdatedAt     int64              `bson:"updatedAt" json:"updatedAt"`
}
