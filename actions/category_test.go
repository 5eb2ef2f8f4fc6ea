package actions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/database/memstore"
)

func newCategoriesFixture() (*Categories, *Projects) {
	projectColl := memstore.New("slug")
	store := &fakeStore{}
	rev := &recorder{}
	return NewCategories(memstore.New("name"), projectColl, rev),
		NewProjects(projectColl, store, rev)
}

func TestCategoryCreateAndList(t *testing.T) {
	categories, _ := newCategoriesFixture()
	ctx := context.Background()

	for _, name := range []string{"Web", "Backend", "CLI"} {
		_, err := categories.Create(ctx, name)
		require.NoError(t, err)
	}

	docs, err := categories.List(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 3)

	// Name sort, ascending.
	assert.Equal(t, "Backend", docs[0].Name)
	assert.Equal(t, "CLI", docs[1].Name)
	assert.Equal(t, "Web", docs[2].Name)
}

func TestCategoryDuplicateName(t *testing.T) {
	categories, _ := newCategoriesFixture()
	ctx := context.Background()

	_, err := categories.Create(ctx, "Backend")
	require.NoError(t, err)

	_, err = categories.Create(ctx, "Backend")
	var pe *PersistenceError
	require.ErrorAs(t, err, &pe)
	assert.True(t, pe.Duplicate())
}

func TestCategoryDeleteBlockedWhileReferenced(t *testing.T) {
	categories, projects := newCategoriesFixture()
	ctx := context.Background()

	cat, err := categories.Create(ctx, "Backend")
	require.NoError(t, err)

	_, err = projects.Create(ctx, ProjectInput{
		Title: "My App", Description: "d", Category: "Backend", Image: "p",
	})
	require.NoError(t, err)

	err = categories.Delete(ctx, cat.ID)
	var re *ReferentialIntegrityError
	require.ErrorAs(t, err, &re)
	assert.Contains(t, re.Error(), "Backend")

	// Still listed.
	docs, err := categories.List(ctx)
	require.NoError(t, err)
	assert.Len(t, docs, 1)
}

func TestCategoryDeleteAfterReassignment(t *testing.T) {
	categories, projects := newCategoriesFixture()
	ctx := context.Background()

	cat, err := categories.Create(ctx, "Backend")
	require.NoError(t, err)

	doc, err := projects.Create(ctx, ProjectInput{
		Title: "My App", Description: "d", Category: "Backend", Image: "p",
	})
	require.NoError(t, err)

	_, err = projects.Update(ctx, doc.ID, ProjectInput{
		Title: "My App", Description: "d", Category: "Tools",
	})
	require.NoError(t, err)

	require.NoError(t, categories.Delete(ctx, cat.ID))

	docs, err := categories.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, docs)
}
