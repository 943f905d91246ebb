package generation_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/phrazzld/studybuddy-api/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptBuilderDefaultTemplate(t *testing.T) {
	t.Parallel()

	b, err := generation.NewPromptBuilder("")
	require.NoError(t, err)

	prompt, err := b.Build("Chemistry", "Water is H2O & <salt> is NaCl")
	require.NoError(t, err)

	assert.Contains(t, prompt, "Based on the following Chemistry notes")
	assert.Contains(t, prompt, "Notes: Water is H2O & <salt> is NaCl", "notes must not be escaped")
	assert.Contains(t, prompt, "Q1: [Question]")
	assert.Contains(t, prompt, "A: [Answer]")
}

func TestPromptBuilderCustomTemplate(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "prompt.tmpl")
	require.NoError(t, os.WriteFile(path, []byte("{{.Subject}}|{{.Notes}}"), 0o600))

	b, err := generation.NewPromptBuilder(path)
	require.NoError(t, err)

	prompt, err := b.Build("History", "1066")
	require.NoError(t, err)
	assert.Equal(t, "History|1066", prompt)
}

func TestPromptBuilderErrors(t *testing.T) {
	t.Parallel()

	t.Run("missing file", func(t *testing.T) {
		_, err := generation.NewPromptBuilder(filepath.Join(t.TempDir(), "missing.tmpl"))

		assert.ErrorIs(t, err, generation.ErrInvalidConfig)
	})

	t.Run("unparsable template", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.tmpl")
		require.NoError(t, os.WriteFile(path, []byte("{{.Subject"), 0o600))

		_, err := generation.NewPromptBuilder(path)

		assert.ErrorIs(t, err, generation.ErrInvalidConfig)
	})

	t.Run("unknown field", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "unknown.tmpl")
		require.NoError(t, os.WriteFile(path, []byte("{{.Topic}}"), 0o600))

		b, err := generation.NewPromptBuilder(path)
		require.NoError(t, err)

		_, err = b.Build("s", "n")
		assert.Error(t, err)
	})
}
