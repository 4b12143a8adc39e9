package generation

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"text/template"

	"github.com/cardforge/cardforge/internal/domain"
)

// defaultPromptTemplate is the built-in flashcard prompt. It embeds the
// study text verbatim, states the literal card count, and instructs the
// model to answer with a bare JSON array so the decoder has as little
// cleanup to do as possible.
//
//go:embed prompt.tmpl
var defaultPromptTemplate string

// promptData is the data passed to the prompt template.
type promptData struct {
	SourceText string
	CardCount  int
}

// PromptBuilder renders generation requests into prompt strings.
// text/template is used rather than html/template so the source text is
// embedded without any escaping.
type PromptBuilder struct {
	tmpl *template.Template
}

// NewPromptBuilder creates a PromptBuilder using the built-in template.
func NewPromptBuilder() *PromptBuilder {
	// The embedded template is compiled into the binary; parsing it cannot
	// fail at runtime, so Must is safe here.
	return &PromptBuilder{
		tmpl: template.Must(template.New("flashcard").Parse(defaultPromptTemplate)),
	}
}

// NewPromptBuilderFromFile creates a PromptBuilder from a template file.
// The template receives .SourceText and .CardCount.
func NewPromptBuilderFromFile(path string) (*PromptBuilder, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read prompt template from %s: %v",
			ErrInvalidConfig, path, err)
	}

	tmpl, err := template.New("flashcard").Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse prompt template: %v",
			ErrInvalidConfig, err)
	}

	return &PromptBuilder{tmpl: tmpl}, nil
}

// Build renders the prompt for the given request. The source text appears
// verbatim and the card count appears as its literal decimal string.
func (b *PromptBuilder) Build(req domain.GenerationRequest) (string, error) {
	if req.SourceText == "" {
		return "", ErrEmptyPrompt
	}

	data := promptData{
		SourceText: req.SourceText,
		CardCount:  req.CardCount,
	}

	var buf bytes.Buffer
	if err := b.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute prompt template: %w", err)
	}

	return buf.String(), nil
}
