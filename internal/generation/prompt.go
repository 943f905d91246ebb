package generation

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"text/template"
)

//go:embed templates/flashcards.tmpl
var defaultPromptTemplate string

// promptData is the data made available to prompt templates.
type promptData struct {
	Subject string
	Notes   string
}

// PromptBuilder renders generation prompts. Subject and notes are embedded
// verbatim, without any escaping.
type PromptBuilder struct {
	tmpl *template.Template
}

// NewPromptBuilder parses the prompt template at path, or the embedded
// default template when path is empty.
func NewPromptBuilder(path string) (*PromptBuilder, error) {
	content := defaultPromptTemplate
	name := "flashcards"

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to read prompt template from %s: %v",
				ErrInvalidConfig, path, err)
		}
		content = string(raw)
		name = path
	}

	tmpl, err := template.New(name).Parse(content)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse prompt template: %v", ErrInvalidConfig, err)
	}

	return &PromptBuilder{tmpl: tmpl}, nil
}

// Build renders the prompt for subject and notes.
func (b *PromptBuilder) Build(subject, notes string) (string, error) {
	var buf bytes.Buffer
	if err := b.tmpl.Execute(&buf, promptData{Subject: subject, Notes: notes}); err != nil {
		return "", fmt.Errorf("failed to execute prompt template: %w", err)
	}
	return buf.String(), nil
}
