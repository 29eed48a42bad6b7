package openai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/fabula/internal/infrastructure/config"
)

func TestNewClient(t *testing.T) {
	t.Run("requires an API key", func(t *testing.T) {
		_, err := NewClient(config.LLMConfig{})
		assert.ErrorContains(t, err, "API key is required")
	})

	t.Run("defaults the model", func(t *testing.T) {
		client, err := NewClient(config.LLMConfig{APIKey: "sk-test"})
		require.NoError(t, err)
		assert.Equal(t, "gpt-4o-mini", client.model)
	})

	t.Run("honors a configured model", func(t *testing.T) {
		client, err := NewClient(config.LLMConfig{APIKey: "sk-test", Model: "gpt-4o"})
		require.NoError(t, err)
		assert.Equal(t, "gpt-4o", client.model)
	})
}

func TestCleanResponse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "The Whispering Door", "The Whispering Door"},
		{"surrounding whitespace", "  The Whispering Door\n", "The Whispering Door"},
		{"straight quotes", `"The Whispering Door"`, "The Whispering Door"},
		{"curly quotes", "“The Whispering Door”", "The Whispering Door"},
		{"quotes then whitespace", `" The Whispering Door "`, "The Whispering Door"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanResponse(tt.in))
		})
	}
}
