package actions

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"portfolio/database/memstore"
	"portfolio/models"
)

func TestViewsRecordAndStats(t *testing.T) {
	coll := memstore.New()
	views := NewViews(coll)
	ctx := context.Background()

	views.Record(ctx)
	views.Record(ctx)

	// Backdated entries land in the wider buckets only.
	now := time.Now()
	for _, age := range []time.Duration{3 * 24 * time.Hour, 10 * 24 * time.Hour, 60 * 24 * time.Hour} {
		require.NoError(t, coll.InsertOne(ctx, models.View{
			ID:        primitive.NewObjectID(),
			CreatedAt: now.Add(-age).Unix(),
		}))
	}

	stats, err := views.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Today)
	assert.Equal(t, int64(3), stats.Week)  // today's 2 + the 3-day-old one
	assert.Equal(t, int64(4), stats.Month) // + the 10-day-old one
	assert.Equal(t, int64(5), stats.Total)
}

func TestViewsRecordSwallowsFailure(t *testing.T) {
	coll := memstore.New()
	views := NewViews(coll)
	ctx := context.Background()

	coll.FailNext = fmt.Errorf("store down")
	views.Record(ctx) // must not panic or surface the error

	assert.Equal(t, 0, coll.Len())
}

func TestViewsStatsPropagatesFailure(t *testing.T) {
	coll := memstore.New()
	views := NewViews(coll)

	coll.FailNext = fmt.Errorf("store down")
	_, err := views.Stats(context.Background())

	var pe *PersistenceError
	require.ErrorAs(t, err, &pe)
}
