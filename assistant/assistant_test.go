package assistant

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/models"
)

type stubSource struct{}

func (stubSource) Intro(context.Context) (*models.Intro, error) {
	return &models.Intro{Name: "Ada", Headline: "Engineer", Email: "a@b.com"}, nil
}
func (stubSource) About(context.Context) (*models.About, error) {
	return &models.About{Heading: "About", Body: "I write Go."}, nil
}
func (stubSource) AllProjects(context.Context) ([]models.Project, error) {
	return []models.Project{{Title: "Chat Server", Slug: "chat-server"}}, nil
}
func (stubSource) AllBlogs(context.Context) ([]models.Blog, error) {
	return []models.Blog{{Title: "Hello World"}}, nil
}
func (stubSource) AllCertificates(context.Context) ([]models.Certificate, error) { return nil, nil }
func (stubSource) AllEducations(context.Context) ([]models.Education, error)     { return nil, nil }
func (stubSource) AllExperiences(context.Context) ([]models.Experience, error)   { return nil, nil }
func (stubSource) AllFAQs(context.Context) ([]models.FAQ, error)                 { return nil, nil }

type failingSource struct {
	stubSource
}

func (failingSource) AllProjects(context.Context) ([]models.Project, error) {
	return nil, fmt.Errorf("store down")
}

// stubModel records the request and returns a canned reply.
type stubModel struct {
	last  Request
	reply string
	err   error
}

func (m *stubModel) Generate(_ context.Context, req Request) (string, error) {
	m.last = req
	return m.reply, m.err
}

func TestAnswerGroundsModelInContent(t *testing.T) {
	model := &stubModel{reply: "I built a chat server."}
	a := New(model, stubSource{})

	answer, err := a.Answer(context.Background(), "What have you built?", nil)
	require.NoError(t, err)
	assert.Equal(t, "I built a chat server.", answer)

	// The system prompt carries the content snapshot, not the question.
	assert.Contains(t, model.last.System, "Chat Server")
	assert.Contains(t, model.last.System, "Hello World")
	assert.Contains(t, model.last.System, "Ada")
	assert.Contains(t, model.last.System, "a@b.com")

	// The question arrives as the final user turn.
	require.Len(t, model.last.Turns, 1)
	assert.Equal(t, RoleUser, model.last.Turns[0].Role)
	assert.Equal(t, "What have you built?", model.last.Turns[0].Text)
}

func TestAnswerTrimsHistory(t *testing.T) {
	model := &stubModel{reply: "ok"}
	a := New(model, stubSource{})

	history := make([]Turn, 0, maxHistory+4)
	for i := 0; i < maxHistory+4; i++ {
		history = append(history, Turn{Role: RoleUser, Text: fmt.Sprintf("turn %d", i)})
	}

	_, err := a.Answer(context.Background(), "latest question", history)
	require.NoError(t, err)

	// Oldest turns dropped; question appended last.
	require.Len(t, model.last.Turns, maxHistory+1)
	assert.Equal(t, "turn 4", model.last.Turns[0].Text)
	assert.Equal(t, "latest question", model.last.Turns[maxHistory].Text)
}

func TestAnswerRejectsEmptyQuestion(t *testing.T) {
	a := New(&stubModel{}, stubSource{})

	_, err := a.Answer(context.Background(), "   ", nil)
	require.Error(t, err)
}

func TestAnswerFailsWhenContentUnavailable(t *testing.T) {
	model := &stubModel{reply: "should not be reached"}
	a := New(model, failingSource{})

	_, err := a.Answer(context.Background(), "What have you built?", nil)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "store down"))
}

func TestKeywords(t *testing.T) {
	model := &stubModel{reply: "```json\n[\"go\",\"backend\",\"mongodb\"]\n```"}
	a := New(model, stubSource{})

	keywords, err := a.Keywords(context.Background(), "A Go backend with MongoDB")
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "backend", "mongodb"}, keywords)

	// The instruction rides in the system prompt, the content as a user turn.
	require.Len(t, model.last.Turns, 1)
	assert.Equal(t, "A Go backend with MongoDB", model.last.Turns[0].Text)
}

func TestKeywordsMalformedReply(t *testing.T) {
	model := &stubModel{reply: "here are your keywords: go, backend"}
	a := New(model, stubSource{})

	_, err := a.Keywords(context.Background(), "content")
	require.Error(t, err)
}

func TestKeywordsRejectsEmptyContent(t *testing.T) {
	a := New(&stubModel{}, stubSource{})

	_, err := a.Keywords(context.Background(), "")
	require.Error(t, err)
}
