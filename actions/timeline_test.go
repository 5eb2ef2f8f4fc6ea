package actions

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/database/memstore"
)

func TestEducationDateValidation(t *testing.T) {
	educations := NewEducations(memstore.New(), &recorder{})
	ctx := context.Background()
	start := time.Now().Unix()

	_, err := educations.Create(ctx, EducationInput{
		School:    "University",
		Degree:    "BSc",
		StartDate: start,
		EndDate:   start - 86400,
	})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)

	// Zero end date means ongoing and is always valid.
	doc, err := educations.Create(ctx, EducationInput{
		School:    "University",
		Degree:    "BSc",
		StartDate: start,
	})
	require.NoError(t, err)
	assert.Zero(t, doc.EndDate)
}

func TestExperienceListNewestFirst(t *testing.T) {
	experiences := NewExperiences(memstore.New(), &recorder{})
	ctx := context.Background()
	now := time.Now().Unix()

	for _, in := range []ExperienceInput{
		{Company: "Old Corp", Role: "Intern", StartDate: now - 3_000_000, EndDate: now - 2_000_000},
		{Company: "New Corp", Role: "Engineer", StartDate: now - 1_000_000},
	} {
		_, err := experiences.Create(ctx, in)
		require.NoError(t, err)
	}

	docs, err := experiences.List(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "New Corp", docs[0].Company)
	assert.Equal(t, "Old Corp", docs[1].Company)
}

func TestExperienceUpdate(t *testing.T) {
	experiences := NewExperiences(memstore.New(), &recorder{})
	ctx := context.Background()
	start := time.Now().Unix() - 1000

	doc, err := experiences.Create(ctx, ExperienceInput{
		Company: "Corp", Role: "Engineer", StartDate: start,
	})
	require.NoError(t, err)

	updated, err := experiences.Update(ctx, doc.ID, ExperienceInput{
		Company: "Corp", Role: "Senior Engineer", StartDate: start, EndDate: start + 500,
	})
	require.NoError(t, err)
	assert.Equal(t, "Senior Engineer", updated.Role)
	assert.Equal(t, start+500, updated.EndDate)
}
