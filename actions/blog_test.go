package actions

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/database/memstore"
)

func newBlogsFixture() (*Blogs, *memstore.Collection, *fakeStore) {
	coll := memstore.New("slug")
	store := &fakeStore{}
	return NewBlogs(coll, store, &recorder{}), coll, store
}

func TestBlogCreate(t *testing.T) {
	blogs, coll, _ := newBlogsFixture()

	doc, err := blogs.Create(context.Background(), BlogInput{
		Title:   "Hello World",
		Content: "first post",
		Tags:    []string{"meta"},
		Image:   "p",
	})
	require.NoError(t, err)
	assert.Equal(t, "hello-world", doc.Slug)
	assert.Zero(t, doc.Views)
	assert.Equal(t, 1, coll.Len())
}

func TestBlogDuplicateTitle(t *testing.T) {
	blogs, coll, _ := newBlogsFixture()
	ctx := context.Background()

	_, err := blogs.Create(ctx, BlogInput{Title: "Hello World", Content: "c", Image: "p"})
	require.NoError(t, err)

	_, err = blogs.Create(ctx, BlogInput{Title: "Hello World", Content: "other", Image: "p"})
	var pe *PersistenceError
	require.ErrorAs(t, err, &pe)
	assert.True(t, pe.Duplicate())

	// The first post is unaffected.
	assert.Equal(t, 1, coll.Len())
	got, err := blogs.BySlug(ctx, "hello-world")
	require.NoError(t, err)
	assert.Equal(t, "c", got.Content)
}

func TestBlogIncrementViews(t *testing.T) {
	blogs, _, _ := newBlogsFixture()
	ctx := context.Background()

	doc, err := blogs.Create(ctx, BlogInput{Title: "Hello World", Content: "c", Image: "p"})
	require.NoError(t, err)

	blogs.IncrementViews(ctx, doc.Slug)
	blogs.IncrementViews(ctx, doc.Slug)

	got, err := blogs.BySlug(ctx, doc.Slug)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(2), got.Views)
}

func TestBlogIncrementViewsSwallowsFailures(t *testing.T) {
	blogs, coll, _ := newBlogsFixture()
	ctx := context.Background()

	// Unknown slug: logged, not returned.
	blogs.IncrementViews(ctx, "missing")

	// Store outage: same.
	doc, err := blogs.Create(ctx, BlogInput{Title: "Hello World", Content: "c", Image: "p"})
	require.NoError(t, err)
	coll.FailNext = fmt.Errorf("store down")
	blogs.IncrementViews(ctx, doc.Slug)

	got, err := blogs.BySlug(ctx, doc.Slug)
	require.NoError(t, err)
	assert.Zero(t, got.Views)
}

func TestBlogUpdateKeepsViews(t *testing.T) {
	blogs, _, _ := newBlogsFixture()
	ctx := context.Background()

	doc, err := blogs.Create(ctx, BlogInput{Title: "Hello World", Content: "c", Image: "p"})
	require.NoError(t, err)
	blogs.IncrementViews(ctx, doc.Slug)

	updated, err := blogs.Update(ctx, doc.ID, BlogInput{Title: "Hello Again", Content: "c2"})
	require.NoError(t, err)
	assert.Equal(t, "hello-again", updated.Slug)
	assert.Equal(t, int64(1), updated.Views)
}

func TestBlogRelatedByTags(t *testing.T) {
	blogs, _, _ := newBlogsFixture()
	ctx := context.Background()

	for _, in := range []BlogInput{
		{Title: "Go Post", Content: "c", Tags: []string{"go"}, Image: "p"},
		{Title: "Another Go Post", Content: "c", Tags: []string{"go", "testing"}, Image: "p"},
		{Title: "Cooking", Content: "c", Tags: []string{"food"}, Image: "p"},
		{Title: "Untagged", Content: "c", Image: "p"},
	} {
		_, err := blogs.Create(ctx, in)
		require.NoError(t, err)
	}

	docs, err := blogs.Related(ctx, "go-post", 5)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "another-go-post", docs[0].Slug)

	// A post without tags has no relatives.
	docs, err = blogs.Related(ctx, "untagged", 5)
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestBlogDeleteDestroysCover(t *testing.T) {
	blogs, coll, store := newBlogsFixture()
	ctx := context.Background()

	doc, err := blogs.Create(ctx, BlogInput{Title: "Hello World", Content: "c", Image: "p"})
	require.NoError(t, err)

	require.NoError(t, blogs.Delete(ctx, doc.ID))
	assert.Equal(t, 0, coll.Len())
	assert.Equal(t, []string{doc.CoverImage.PublicID}, store.destroys)
}
