package actions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/database/memstore"
)

func newSiteFixture() (*Site, *memstore.Collection, *memstore.Collection, *memstore.Collection, *fakeStore) {
	intros := memstore.New()
	abouts := memstore.New()
	themes := memstore.New()
	store := &fakeStore{}
	return NewSite(intros, abouts, themes, store, &recorder{}), intros, abouts, themes, store
}

func TestIntroSingleton(t *testing.T) {
	site, intros, _, _, _ := newSiteFixture()
	ctx := context.Background()

	// Unset singleton reads as nil, not an error.
	doc, err := site.Intro(ctx)
	require.NoError(t, err)
	assert.Nil(t, doc)

	doc, err = site.UpsertIntro(ctx, IntroInput{Name: "Ada", Headline: "Engineer"})
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Equal(t, "Ada", doc.Name)

	// A second upsert updates in place; there is never a second document.
	doc, err = site.UpsertIntro(ctx, IntroInput{Name: "Ada", Headline: "Staff Engineer"})
	require.NoError(t, err)
	assert.Equal(t, "Staff Engineer", doc.Headline)
	assert.Equal(t, 1, intros.Len())
}

func TestIntroAvatarReplacement(t *testing.T) {
	site, _, _, _, store := newSiteFixture()
	ctx := context.Background()

	doc, err := site.UpsertIntro(ctx, IntroInput{Name: "Ada", Headline: "Engineer", Image: "p"})
	require.NoError(t, err)
	firstAsset := doc.Avatar.PublicID
	require.NotEmpty(t, firstAsset)

	// No payload: avatar untouched.
	doc, err = site.UpsertIntro(ctx, IntroInput{Name: "Ada", Headline: "Engineer"})
	require.NoError(t, err)
	assert.Equal(t, firstAsset, doc.Avatar.PublicID)
	assert.Empty(t, store.destroys)

	// New payload: old avatar destroyed, new one uploaded.
	doc, err = site.UpsertIntro(ctx, IntroInput{Name: "Ada", Headline: "Engineer", Image: "fresh"})
	require.NoError(t, err)
	assert.NotEqual(t, firstAsset, doc.Avatar.PublicID)
	assert.Equal(t, []string{firstAsset}, store.destroys)
}

func TestAboutSingleton(t *testing.T) {
	site, _, abouts, _, _ := newSiteFixture()
	ctx := context.Background()

	_, err := site.UpsertAbout(ctx, AboutInput{Heading: "About me", Body: "I write Go."})
	require.NoError(t, err)
	_, err = site.UpsertAbout(ctx, AboutInput{Heading: "About me", Body: "I still write Go.", Skills: []string{"go"}})
	require.NoError(t, err)

	doc, err := site.About(ctx)
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Equal(t, "I still write Go.", doc.Body)
	assert.Equal(t, []string{"go"}, doc.Skills)
	assert.Equal(t, 1, abouts.Len())
}

func TestThemeResetDeletesOverride(t *testing.T) {
	site, _, _, themes, _ := newSiteFixture()
	ctx := context.Background()

	_, err := site.UpsertTheme(ctx, ThemeInput{Primary: "#222", Accent: "#0af"})
	require.NoError(t, err)
	assert.Equal(t, 1, themes.Len())

	require.NoError(t, site.ResetTheme(ctx))
	assert.Equal(t, 0, themes.Len())

	doc, err := site.Theme(ctx)
	require.NoError(t, err)
	assert.Nil(t, doc)

	// Resetting an already-default theme is a no-op, not an error.
	require.NoError(t, site.ResetTheme(ctx))
}

func TestThemeValidation(t *testing.T) {
	site, _, _, _, _ := newSiteFixture()

	_, err := site.UpsertTheme(context.Background(), ThemeInput{Accent: "#0af"})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
}
