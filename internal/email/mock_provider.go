package email

import "sync"

// MockProvider records messages instead of sending them. Wired by
// default in development and tests.
type MockProvider struct {
	mu   sync.Mutex
	Sent []Email
}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (p *MockProvider) Send(email *Email) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Sent = append(p.Sent, *email)
	return nil
}

func (p *MockProvider) SendVerification(to, token string) error {
	return p.Send(&Email{
		To:      []string{to},
		Subject: "Verify your email",
		TextBody: token,
	})
}

func (p *MockProvider) SendPasswordReset(to, token string) error {
	return p.Send(&Email{
		To:      []string{to},
		Subject: "Reset your password",
		TextBody: token,
	})
}

func (p *MockProvider) Validate() error { return nil }
func (p *MockProvider) Close() error    { return nil }

// LastTo returns the recipient of the most recent message, for tests.
func (p *MockProvider) LastTo() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.Sent) == 0 {
		return ""
	}
	last := p.Sent[len(p.Sent)-1]
	if len(last.To) == 0 {
		return ""
	}
	return last.To[0]
}
