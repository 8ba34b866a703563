package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := map[string]struct {
		in     string
		maxLen int
		want   string
	}{
		"diacritics":   {in: "Café au Lait!", want: "cafe-au-lait"},
		"collapse":     {in: "  Go -- and   SQL ", want: "go-and-sql"},
		"truncate":     {in: "Hello World", maxLen: 6, want: "hello"},
		"empty result": {in: "!!!", want: "post"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, Slugify(tc.in, tc.maxLen))
		})
	}
}

func TestIsSlug(t *testing.T) {
	assert.True(t, IsSlug("hello-world-2"))
	assert.False(t, IsSlug("Hello"))
	assert.False(t, IsSlug("-edge"))
	assert.False(t, IsSlug(""))
}
