package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Message is a contact-form submission.
type Message struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Subject   string             `bson:"subject" json:"subject"`
	Body      string             `bson:"body" json:"body"`
	Read      bool               `bson:"read" json:"read"`
	CreatedAt int64              `bson:"createdAt" json:"createdAt"`
}
