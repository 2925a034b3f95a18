package seed

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_Load(t *testing.T) {
	reader := strings.NewReader(`
- id: "7a9f1c2e-0b1d-4a2f-9c3e-5d6f7a8b9c0d"
  title: "On Paging"
  author: "J. Writer"
  language: "english"
  url: "https://example.com/on-paging"
  createdAt: 2024-03-01T10:00:00Z
- title: "Untimed Note"
`)
	loader := NewLoader(reader)

	articles, err := loader.Load()

	require.NoError(t, err)
	require.Len(t, articles, 2)

	assert.Equal(t, uuid.MustParse("7a9f1c2e-0b1d-4a2f-9c3e-5d6f7a8b9c0d"), articles[0].ID)
	assert.Equal(t, "On Paging", articles[0].Title)
	assert.Equal(t, "J. Writer", articles[0].Author)
	assert.Equal(t, 2024, articles[0].CreatedAt.Year())

	assert.NotEqual(t, uuid.Nil, articles[1].ID)
	assert.Equal(t, "english", articles[1].Language)
	assert.False(t, articles[1].CreatedAt.IsZero())
}

func TestLoader_Load_MissingTitle(t *testing.T) {
	loader := NewLoader(strings.NewReader(`
- author: "nameless"
`))

	articles, err := loader.Load()

	assert.ErrorContains(t, err, "title is required")
	assert.Nil(t, articles)
}

func TestLoader_Load_InvalidID(t *testing.T) {
	loader := NewLoader(strings.NewReader(`
- id: "not-a-uuid"
  title: "Broken"
`))

	articles, err := loader.Load()

	assert.ErrorContains(t, err, "invalid id")
	assert.Nil(t, articles)
}

func TestLoader_Load_NotYAML(t *testing.T) {
	loader := NewLoader(strings.NewReader(`{{{`))

	_, err := loader.Load()

	assert.ErrorContains(t, err, "failed to decode seed file")
}
