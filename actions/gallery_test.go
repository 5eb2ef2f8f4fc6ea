package actions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/database/memstore"
)

func TestGalleryLifecycle(t *testing.T) {
	coll := memstore.New()
	store := &fakeStore{}
	gallery := NewGallery(coll, store, &recorder{})
	ctx := context.Background()

	doc, err := gallery.Create(ctx, "Sunset", "payload")
	require.NoError(t, err)
	assert.NotEmpty(t, doc.Image.PublicID)

	docs, err := gallery.List(ctx)
	require.NoError(t, err)
	assert.Len(t, docs, 1)

	require.NoError(t, gallery.Delete(ctx, doc.ID))
	assert.Equal(t, []string{doc.Image.PublicID}, store.destroys)
	assert.Equal(t, 0, coll.Len())

	assert.ErrorIs(t, gallery.Delete(ctx, doc.ID), ErrNotFound)
}

func TestGalleryValidation(t *testing.T) {
	gallery := NewGallery(memstore.New(), &fakeStore{}, &recorder{})

	_, err := gallery.Create(context.Background(), "", "payload")
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)

	_, err = gallery.Create(context.Background(), "Sunset", "")
	require.ErrorAs(t, err, &ve)
}
