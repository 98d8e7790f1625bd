package templates

import (
	"fmt"

	"github.com/osteele/liquid"
)

// Renderer substitutes {{variable}} placeholders in email template parts.
// Placeholders with no matching variable render as empty strings.
type Renderer struct {
	engine *liquid.Engine
}

// NewRenderer creates a new template renderer
func NewRenderer() *Renderer {
	return &Renderer{
		engine: liquid.NewEngine(),
	}
}

// Render substitutes variables into a single template string.
func (r *Renderer) Render(template string, variables map[string]interface{}) (string, error) {
	if template == "" {
		return "", nil
	}
	out, err := r.engine.ParseAndRenderString(template, variables)
	if err != nil {
		return "", fmt.Errorf("failed to render template: %w", err)
	}
	return out, nil
}

// RenderParts renders subject, HTML and text bodies independently with the
// same variable set. A failure in one part fails the whole render.
func (r *Renderer) RenderParts(subject, html, text string, variables map[string]interface{}) (renderedSubject, renderedHTML, renderedText string, err error) {
	renderedSubject, err = r.Render(subject, variables)
	if err != nil {
		return "", "", "", fmt.Errorf("subject: %w", err)
	}
	renderedHTML, err = r.Render(html, variables)
	if err != nil {
		return "", "", "", fmt.Errorf("html body: %w", err)
	}
	renderedText, err = r.Render(text, variables)
	if err != nil {
		return "", "", "", fmt.Errorf("text body: %w", err)
	}
	return renderedSubject, renderedHTML, renderedText, nil
}
