package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	r := NewRenderer()

	t.Run("substitutes known variables", func(t *testing.T) {
		out, err := r.Render("{{name}}", map[string]interface{}{"name": "Ada"})
		require.NoError(t, err)
		assert.Equal(t, "Ada", out)
		assert.NotContains(t, out, "{{")
	})

	t.Run("unknown variables render empty", func(t *testing.T) {
		out, err := r.Render("Hello {{missing}}!", map[string]interface{}{})
		require.NoError(t, err)
		assert.Equal(t, "Hello !", out)
	})

	t.Run("empty template", func(t *testing.T) {
		out, err := r.Render("", map[string]interface{}{"name": "Ada"})
		require.NoError(t, err)
		assert.Equal(t, "", out)
	})

	t.Run("multiple occurrences", func(t *testing.T) {
		out, err := r.Render("{{name}} and {{name}}", map[string]interface{}{"name": "Ada"})
		require.NoError(t, err)
		assert.Equal(t, "Ada and Ada", out)
	})

	t.Run("no html escaping", func(t *testing.T) {
		out, err := r.Render("{{link}}", map[string]interface{}{"link": "<a href=\"x\">x</a>"})
		require.NoError(t, err)
		assert.Equal(t, "<a href=\"x\">x</a>", out)
	})
}

func TestRenderParts(t *testing.T) {
	r := NewRenderer()

	vars := map[string]interface{}{
		"name":  "Ada",
		"email": "ada@example.com",
	}

	subject, html, text, err := r.RenderParts(
		"Welcome {{name}}",
		"<p>Hi {{name}}, your email is {{email}}</p>",
		"Hi {{name}}",
		vars,
	)
	require.NoError(t, err)
	assert.Equal(t, "Welcome Ada", subject)
	assert.Equal(t, "<p>Hi Ada, your email is ada@example.com</p>", html)
	assert.Equal(t, "Hi Ada", text)
}
