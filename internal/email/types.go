package email

// Email is one outbound message.
type Email struct {
	From     string
	To       []string
	Subject  string
	TextBody string
	HTMLBody string
}

// TemplateData feeds the HTML templates.
type TemplateData map[string]any
