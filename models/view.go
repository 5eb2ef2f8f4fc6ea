package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// View is one page visit, append-only, used for time-bucketed counts.
type View struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt int64              `bson:"createdAt" json:"createdAt"`
}
