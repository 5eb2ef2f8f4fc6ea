package assistant

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GeminiModel calls the Gemini API through the official client.
type GeminiModel struct {
	client *genai.Client
	model  string
}

func NewGeminiModel(ctx context.Context, apiKey, model string) (*GeminiModel, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiModel{client: client, model: model}, nil
}

// toContents maps conversation turns onto the wire format. Unknown roles
// fall back to user; the model role is the only other one we emit.
func toContents(turns []Turn) []*genai.Content {
	contents := make([]*genai.Content, 0, len(turns))
	for _, t := range turns {
		var role genai.Role = genai.RoleUser
		if t.Role == RoleModel {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(t.Text, role))
	}
	return contents
}

func (g *GeminiModel) Generate(ctx context.Context, req Request) (string, error) {
	contents := toContents(req.Turns)

	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0.4),
	}
	if req.System != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("Gemini call failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("Gemini returned an empty response")
	}
	return text, nil
}
