package slugify

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"My App", "my-app"},
		{"Hello World", "hello-world"},
		{"  Leading and trailing  ", "leading-and-trailing"},
		{"Tabs\tand\nnewlines", "tabs-and-newlines"},
		{"C++ & Go: A Story!", "c-go-a-story"},
		{"already-a-slug", "already-a-slug"},
		{"UPPER CASE 123", "upper-case-123"},
		{"émigré café", "migr-caf"},
		{"---hyphens---", "hyphens"},
		{"a - b -- c", "a-b-c"},
		{"snake_case_title", "snakecasetitle"},
		{"!!!", ""},
		{"", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Make(tc.title), "title %q", tc.title)
	}
}

func TestMakeShape(t *testing.T) {
	valid := regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

	titles := []string{
		"My App", "a  b   c", "Mixed CASE With 42 Numbers",
		"punctuation, everywhere. (really)", "x",
	}
	for _, title := range titles {
		s := Make(title)
		if s == "" {
			continue
		}
		assert.Regexp(t, valid, s, "title %q", title)
		// Deterministic.
		assert.Equal(t, s, Make(title))
	}
}
