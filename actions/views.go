package actions

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"portfolio/database"
	"portfolio/models"
)

// Views records page visits and aggregates them into time buckets.
// Recording is strictly best-effort: a broken analytics pipeline must never
// surface to a visitor.
type Views struct {
	coll database.Collection
}

func NewViews(coll database.Collection) *Views {
	return &Views{coll: coll}
}

func (v *Views) Record(ctx context.Context) {
	bestEffort("record page view", func() error {
		return v.coll.InsertOne(ctx, models.View{
			ID:        primitive.NewObjectID(),
			CreatedAt: time.Now().Unix(),
		})
	})
}

type ViewStats struct {
	Today int64 `json:"today"`
	Week  int64 `json:"week"`
	Month int64 `json:"month"`
	Total int64 `json:"total"`
}

func (v *Views) Stats(ctx context.Context) (*ViewStats, error) {
	now := time.Now()
	stats := &ViewStats{}

	buckets := []struct {
		dest  *int64
		since time.Duration
	}{
		{&stats.Today, 24 * time.Hour},
		{&stats.Week, 7 * 24 * time.Hour},
		{&stats.Month, 30 * 24 * time.Hour},
	}
	for _, b := range buckets {
		n, err := v.coll.Count(ctx, bson.M{"createdAt": bson.M{"$gte": now.Add(-b.since).Unix()}})
		if err != nil {
			return nil, &PersistenceError{Op: "count views", Err: err}
		}
		*b.dest = n
	}

	total, err := v.coll.Count(ctx, bson.M{})
	if err != nil {
		return nil, &PersistenceError{Op: "count views", Err: err}
	}
	stats.Total = total
	return stats, nil
}
