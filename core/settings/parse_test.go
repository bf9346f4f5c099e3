package settings

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullDocument = `
server:
  name: Syntaxia
  description: A place to talk
  icon_url: https://cdn.example.com/icon.png
  categories:
    Text:
      description: Talk here
      nsfw: false
      channels:
        general:
          name: general
          topic: Say hi
          nsfw: false
          position: 2
          parent_category: Text
        memes:
          name: memes-and-more
    Empty:
      channels: {}
`

func TestParse_FullDocument(t *testing.T) {
	cfg, err := Parse([]byte(fullDocument))
	require.NoError(t, err)

	s := cfg.Server
	assert.Equal(t, "Syntaxia", s.Name)
	require.NotNil(t, s.Description)
	assert.Equal(t, "A place to talk", *s.Description)
	require.NotNil(t, s.IconURL)
	assert.Equal(t, "https://cdn.example.com/icon.png", *s.IconURL)
	assert.Equal(t, []string{"Empty", "Text"}, s.CategoryNames())
	assert.Equal(t, 2, s.ChannelCount())

	text := s.Categories["Text"]
	require.NotNil(t, text.NSFW)
	assert.False(t, *text.NSFW, "explicit false must be kept distinct from unset")
	assert.Equal(t, []string{"general", "memes"}, text.ChannelKeys())

	general := text.Channels["general"]
	require.NotNil(t, general.Position)
	assert.Equal(t, uint32(2), *general.Position)
	require.NotNil(t, general.ParentCategory)
	assert.Equal(t, "Text", *general.ParentCategory)

	memes := text.Channels["memes"]
	assert.Equal(t, "memes-and-more", memes.Name)
	assert.Nil(t, memes.Topic)
	assert.Nil(t, memes.NSFW)
	assert.Nil(t, memes.Position)

	empty := s.Categories["Empty"]
	assert.Nil(t, empty.Description)
	assert.Empty(t, empty.Channels)
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
		field string
	}{
		{"empty document", "", ""},
		{"not yaml", "server: [unclosed", ""},
		{"wrong shape", "server: hello", ""},
		{"negative position", "server:\n  name: a\n  categories:\n    c:\n      channels:\n        x:\n          name: x\n          position: -1\n", ""},
		{"missing name", "server:\n  categories: {}\n", "server.name"},
		{"missing categories", "server:\n  name: a\n", "server.categories"},
		{"missing channels", "server:\n  name: a\n  categories:\n    c:\n      nsfw: true\n", "server.categories.c.channels"},
		{"missing channel name", "server:\n  name: a\n  categories:\n    c:\n      channels:\n        x:\n          topic: t\n", "server.categories.c.channels.x.name"},
		{"two documents", "server:\n  name: a\n  categories: {}\n---\nserver:\n  name: b\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.input))
			assert.Nil(t, cfg)
			require.Error(t, err)

			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.field, vErr.Field)
		})
	}
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Field: "server.name", Message: "is required"}
	assert.Equal(t, "invalid config: server.name: is required", err.Error())

	err = &ValidationError{Message: "document is empty"}
	assert.Equal(t, "invalid config: document is empty", err.Error())
}
