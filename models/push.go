package models

import (
	"github.com/SherClockHolmes/webpush-go"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PushSubscription is one browser subscribed to owner notifications,
// keyed by its endpoint URL.
type PushSubscription struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Endpoint  string               `bson:"endpoint" json:"endpoint"`
	Sub       webpush.Subscription `bson:"sub" json:"sub"`
	CreatedAt int64                `bson:"createdAt" json:"createdAt"`
}
