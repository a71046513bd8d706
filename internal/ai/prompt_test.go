package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/v0xg/devhub-listing/internal/pages"
	"github.com/v0xg/devhub-listing/internal/plan"
)

func TestParseSteps(t *testing.T) {
	t.Run("bare array", func(t *testing.T) {
		steps, err := parseSteps(`[{"action":"edit_support_info"},{"action":"type_support_email","text":"a@b.example"},{"action":"save"}]`)
		require.NoError(t, err)
		assert.Equal(t, []plan.Step{
			{Action: plan.EditSupportInfo},
			{Action: plan.TypeSupportEmail, Text: "a@b.example"},
			{Action: plan.Save},
		}, steps)
	})

	t.Run("wrapped in prose", func(t *testing.T) {
		steps, err := parseSteps("Here you go:\n```json\n[{\"action\":\"edit_basic_info\"},{\"action\":\"type_summary\",\"text\":\"Blocks [fast] \\\"fun\\\"\"},{\"action\":\"save\"}]\n```\nDone.")
		require.NoError(t, err)
		require.Len(t, steps, 3)
		assert.Equal(t, `Blocks [fast] "fun"`, steps[1].Text)
	})

	t.Run("empty plan", func(t *testing.T) {
		steps, err := parseSteps("[]")
		require.NoError(t, err)
		assert.Empty(t, steps)
	})

	t.Run("no array", func(t *testing.T) {
		_, err := parseSteps("I cannot help with that.")
		assert.ErrorContains(t, err, "no JSON array")
	})

	t.Run("unbalanced", func(t *testing.T) {
		_, err := parseSteps(`steps: [{"action":"save"}`)
		assert.ErrorContains(t, err, "no JSON array")
	})

	t.Run("unknown action", func(t *testing.T) {
		_, err := parseSteps(`[{"action":"click","selector":"#x"}]`)
		assert.ErrorIs(t, err, plan.ErrUnknownAction)
	})
}

func TestBuildUserPrompt(t *testing.T) {
	prompt, err := buildUserPrompt(pages.Snapshot{Name: "Tiny Tetris", Categories: []string{"Games"}}, "rename it to Huge Tetris")
	require.NoError(t, err)
	assert.Contains(t, prompt, `"name": "Tiny Tetris"`)
	assert.Contains(t, prompt, `"categories": [`)
	assert.Contains(t, prompt, "User request: rename it to Huge Tetris")
}

func TestNewProvider(t *testing.T) {
	_, err := NewProvider("gemini", "")
	assert.ErrorContains(t, err, "unknown provider")

	t.Setenv("DEVHUB_ANTHROPIC_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")
	_, err = NewProvider("claude", "")
	assert.ErrorContains(t, err, "ANTHROPIC_API_KEY")

	t.Setenv("DEVHUB_OPENAI_KEY", "test-key")
	p, err := NewProvider("openai", "")
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", p.(*OpenAIProvider).model)
}
