package email

import (
	"bytes"
	"fmt"
	"html/template"
)

// HTMLRenderer holds parsed templates keyed by name.
type HTMLRenderer struct {
	templates map[string]*template.Template
}

func NewHTMLRenderer() *HTMLRenderer {
	r := &HTMLRenderer{templates: make(map[string]*template.Template)}
	for name, body := range builtinTemplates {
		// Built-ins are static strings; parse errors are programmer
		// mistakes caught by the tests.
		r.templates[name] = template.Must(template.New(name).Parse(body))
	}
	return r
}

func (r *HTMLRenderer) Render(templateName string, data TemplateData) (string, error) {
	tmpl, ok := r.templates[templateName]
	if !ok {
		return "", fmt.Errorf("unknown email template: %s", templateName)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", templateName, err)
	}
	return buf.String(), nil
}

var builtinTemplates = map[string]string{
	"verification": `
<html><body>
<h2>Welcome, {{.Username}}!</h2>
<p>Confirm your email address to activate your account:</p>
<p><a href="{{.Link}}">Verify email</a></p>
<p>If you did not sign up, ignore this message.</p>
</body></html>`,

	"password_reset": `
<html><body>
<h2>Password reset</h2>
<p>Someone requested a password reset for your account.</p>
<p><a href="{{.Link}}">Reset password</a></p>
<p>The link expires in one hour. If this was not you, ignore this message.</p>
</body></html>`,
}
