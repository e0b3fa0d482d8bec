package route

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePath(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"/", "/"},
		{"", "/"},
		{"/users/", "/users"},
		{"//a//b/", "/a/b"},
		{"/a///b", "/a/b"},
		{"/users/42", "/users/42"},
		{"  /users/  ", "/users"},
	}

	for _, c := range cases {
		assert.Equal(t, c.expected, NormalizePath(c.input), "input: %q", c.input)
	}
}

func TestMatchPattern(t *testing.T) {
	cases := []struct {
		pattern string
		path    string
		match   bool
	}{
		{"/users", "/users", true},
		{"/users/", "/users", true},
		{"/users", "/orders", false},
		{"/users/{id}", "/users/42", true},
		{"/users/{id}", "/users/42/posts", false},
		{"/users/{id}/posts/{post}", "/users/42/posts/7", true},
		{"/users/{id}/posts", "/users/42/orders", false},
		{"/{a}/{b}", "/x/y", true},
		{"/users/{id}", "/users", false},
	}

	for _, c := range cases {
		assert.Equal(t, c.match, MatchPattern(c.pattern, c.path), "pattern: %q path: %q", c.pattern, c.path)
	}
}
