package assistant

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestToContentsRoleMapping(t *testing.T) {
	contents := toContents([]Turn{
		{Role: RoleUser, Text: "hello"},
		{Role: RoleModel, Text: "hi there"},
		{Role: Role("weird"), Text: "fallback"},
	})
	require.Len(t, contents, 3)

	assert.Equal(t, string(genai.RoleUser), contents[0].Role)
	assert.Equal(t, string(genai.RoleModel), contents[1].Role)
	// Anything unrecognized is treated as the visitor speaking.
	assert.Equal(t, string(genai.RoleUser), contents[2].Role)

	require.Len(t, contents[1].Parts, 1)
	assert.Equal(t, "hi there", contents[1].Parts[0].Text)
}

func TestNewGeminiModelRequiresKey(t *testing.T) {
	_, err := NewGeminiModel(context.Background(), "", "gemini-2.0-flash")
	require.Error(t, err)
}
