package email

// Provider is the delivery boundary. The platform treats email as
// fire-and-forget; providers must not block request handling for long.
type Provider interface {
	Send(email *Email) error
	SendVerification(to, token string) error
	SendPasswordReset(to, token string) error
	Validate() error
	Close() error
}

// TemplateRenderer renders a named template with data.
type TemplateRenderer interface {
	Render(templateName string, data TemplateData) (string, error)
}
