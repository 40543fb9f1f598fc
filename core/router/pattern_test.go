package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompilePattern(t *testing.T) {
	t.Parallel()

	t.Run("invalid_patterns_panic", func(t *testing.T) {
		t.Parallel()

		for _, raw := range []string{
			"",
			"static",
			"/static*",
			"/*/tail",
			"/a/*/b",
			"/users/{}",
			"/users/{id}/posts/{id}",
		} {
			assert.Panics(t, func() { compilePattern(raw) }, "pattern %q", raw)
		}
	})

	t.Run("valid_patterns_compile", func(t *testing.T) {
		t.Parallel()

		for _, raw := range []string{"/", "/healthz", "/static/*", "/*", "/users/{id}", "/users/{id}/posts/{post}"} {
			assert.NotPanics(t, func() { compilePattern(raw) }, "pattern %q", raw)
		}
	})
}

func TestPatternMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pattern string
		path    string
		match   bool
		params  map[string]string
	}{
		{pattern: "/healthz", path: "/healthz", match: true},
		{pattern: "/healthz", path: "/healthz/", match: false},
		{pattern: "/healthz", path: "/other", match: false},
		{pattern: "/", path: "/", match: true},

		{pattern: "/static/*", path: "/static/foo", match: true},
		{pattern: "/static/*", path: "/static/a/b/c", match: true},
		{pattern: "/static/*", path: "/static/", match: true},
		{pattern: "/static/*", path: "/static", match: true},
		{pattern: "/static/*", path: "/statics/foo", match: false},
		{pattern: "/*", path: "/anything/at/all", match: true},

		{pattern: "/users/{id}", path: "/users/42", match: true, params: map[string]string{"id": "42"}},
		{pattern: "/users/{id}", path: "/users/", match: false},
		{pattern: "/users/{id}", path: "/users/42/posts", match: false},
		{
			pattern: "/users/{id}/posts/{post}",
			path:    "/users/42/posts/7",
			match:   true,
			params:  map[string]string{"id": "42", "post": "7"},
		},
	}

	for _, tt := range tests {
		p := compilePattern(tt.pattern)
		params, ok := p.match(tt.path)
		require.Equal(t, tt.match, ok, "pattern %q path %q", tt.pattern, tt.path)
		if tt.params != nil {
			assert.Equal(t, tt.params, params, "pattern %q path %q", tt.pattern, tt.path)
		}
	}
}
