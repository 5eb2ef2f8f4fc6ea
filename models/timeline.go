package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// EndDate of 0 means current/ongoing.

type Education struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	School      string             `bson:"school" json:"school"`
	Degree      string             `bson:"degree" json:"degree"`
	StartDate   int64              `bson:"startDate" json:"startDate"`
	EndDate     int64              `bson:"endDate,omitempty" json:"endDate"`
	Description string             `bson:"description,omitempty" json:"description"`
	CreatedAt   int64              `bson:"createdAt" json:"createdAt"`
	UpdatedAt   int64              `bson:"updatedAt" json:"updatedAt"`
}

type Experience struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Company     string             `bson:"company" json:"company"`
	Role        string             `bson:"role" json:"role"`
	StartDate   int64              `bson:"startDate" json:"startDate"`
	EndDate     int64              `bson:"endDate,omitempty" json:"endDate"`
	Description string             `bson:"description,omitempty" json:"description"`
	CreatedAt   int64              `bson:"createdAt" json:"createdAt"`
	UpdatedAt   int64              `bson:"updatedAt" json:"updatedAt"`
}
