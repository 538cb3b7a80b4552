package fill

import (
	"fmt"
	"strings"
	"text/template"
)

// Generator renders prompts through text/template, for prompts that need
// more than plain substitution: conditionals, loops, and the rest of the
// template action set. Variables are referenced as {{.name}}.
//
// Compiled templates are cached by template text, so rendering the same
// prompt repeatedly with different variables parses it once.
//
// Missing variables are an error (missingkey=error), matching the strict
// default of FillPrompt.
type Generator struct {
	compiled map[string]*template.Template
}

// NewGenerator returns a Generator with an empty template cache.
func NewGenerator() *Generator {
	return &Generator{compiled: make(map[string]*template.Template)}
}

// compile returns the cached template for text, parsing it on first use.
func (g *Generator) compile(text string) (*template.Template, error) {
	if tmpl, ok := g.compiled[text]; ok {
		return tmpl, nil
	}
	tmpl, err := template.New("prompt").Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse prompt template: %w", err)
	}
	g.compiled[text] = tmpl
	return tmpl, nil
}

// Render executes the prompt template with the given variables.
func (g *Generator) Render(text string, variables map[string]string) (string, error) {
	tmpl, err := g.compile(text)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, variables); err != nil {
		return "", fmt.Errorf("failed to render prompt template: %w", err)
	}
	return b.String(), nil
}
