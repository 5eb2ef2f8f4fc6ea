// Package assistant answers visitor questions from the portfolio's own
// content and extracts SEO keywords for the admin panel.
package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"portfolio/models"
)

const systemInstruction = `You are the portfolio owner's assistant on their personal website.
Answer visitor questions using ONLY the portfolio context provided below.
If the answer is not in the context, say politely that you don't have that information.
Keep answers concise and friendly. Do not invent projects, dates or contact details.`

const keywordInstruction = `Extract SEO keywords from the given text.
Respond with a JSON array of strings and nothing else, for example: ["go","backend"].
Return at most 10 keywords.`

// maxHistory caps how many prior turns are forwarded to the model.
const maxHistory = 10

// Source is the read side of the content collections, satisfied by
// actions.Content.
type Source interface {
	Intro(ctx context.Context) (*models.Intro, error)
	About(ctx context.Context) (*models.About, error)
	AllProjects(ctx context.Context) ([]models.Project, error)
	AllBlogs(ctx context.Context) ([]models.Blog, error)
	AllCertificates(ctx context.Context) ([]models.Certificate, error)
	AllEducations(ctx context.Context) ([]models.Education, error)
	AllExperiences(ctx context.Context) ([]models.Experience, error)
	AllFAQs(ctx context.Context) ([]models.FAQ, error)
}

type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Turn is one prior exchange in the visitor's conversation. History lives in
// the browser for the session; nothing is persisted server-side.
type Turn struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// Request is what a Model receives: a system instruction and the ordered
// conversation turns, the question last.
type Request struct {
	System string
	Turns  []Turn
}

// Model is the hosted language model. GeminiModel implements it; tests use
// a canned stub.
type Model interface {
	Generate(ctx context.Context, req Request) (string, error)
}

type Assistant struct {
	model  Model
	source Source
}

func New(model Model, source Source) *Assistant {
	return &Assistant{model: model, source: source}
}

// snapshot is the single JSON context blob handed to the model.
type snapshot struct {
	Intro        *models.Intro        `json:"intro,omitempty"`
	About        *models.About        `json:"about,omitempty"`
	Projects     []models.Project     `json:"projects"`
	Blogs        []models.Blog        `json:"blogs"`
	Experience   []models.Experience  `json:"experience"`
	Education    []models.Education   `json:"education"`
	Certificates []models.Certificate `json:"certificates"`
	FAQs         []models.FAQ         `json:"faqs"`
}

// buildContext fetches all eight collections concurrently; they have no
// dependency on each other.
func (a *Assistant) buildContext(ctx context.Context) (string, error) {
	var snap snapshot
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) { snap.Intro, err = a.source.Intro(ctx); return })
	g.Go(func() (err error) { snap.About, err = a.source.About(ctx); return })
	g.Go(func() (err error) { snap.Projects, err = a.source.AllProjects(ctx); return })
	g.Go(func() (err error) { snap.Blogs, err = a.source.AllBlogs(ctx); return })
	g.Go(func() (err error) { snap.Experience, err = a.source.AllExperiences(ctx); return })
	g.Go(func() (err error) { snap.Education, err = a.source.AllEducations(ctx); return })
	g.Go(func() (err error) { snap.Certificates, err = a.source.AllCertificates(ctx); return })
	g.Go(func() (err error) { snap.FAQs, err = a.source.AllFAQs(ctx); return })

	if err := g.Wait(); err != nil {
		return "", fmt.Errorf("assembling assistant context: %w", err)
	}

	blob, err := json.Marshal(snap)
	if err != nil {
		return "", fmt.Errorf("marshaling assistant context: %w", err)
	}
	return string(blob), nil
}

// Answer responds to one visitor question given a short prior-turn history.
func (a *Assistant) Answer(ctx context.Context, question string, history []Turn) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", fmt.Errorf("question is empty")
	}

	blob, err := a.buildContext(ctx)
	if err != nil {
		return "", err
	}

	if len(history) > maxHistory {
		history = history[len(history)-maxHistory:]
	}
	turns := make([]Turn, 0, len(history)+1)
	turns = append(turns, history...)
	turns = append(turns, Turn{Role: RoleUser, Text: question})

	return a.model.Generate(ctx, Request{
		System: systemInstruction + "\n\nPORTFOLIO CONTEXT:\n" + blob,
		Turns:  turns,
	})
}

// Keywords asks the model for SEO keywords describing the given content.
func (a *Assistant) Keywords(ctx context.Context, content string) ([]string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("content is empty")
	}

	raw, err := a.model.Generate(ctx, Request{
		System: keywordInstruction,
		Turns:  []Turn{{Role: RoleUser, Text: content}},
	})
	if err != nil {
		return nil, err
	}

	var keywords []string
	if err := json.Unmarshal([]byte(stripFences(raw)), &keywords); err != nil {
		return nil, fmt.Errorf("model returned malformed keyword list: %w", err)
	}
	return keywords, nil
}

// stripFences removes a markdown code fence the model sometimes wraps JSON in.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(s, "```")
	}
	return strings.TrimSpace(s)
}
