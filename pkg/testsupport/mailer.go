package testsupport

import (
	"context"
	"sync"

	"github.com/goliatone/go-brief/pkg/notify"
)

// FakeMailer records sent messages. Errs are returned in order, one per
// Send call; a nil entry or an exhausted list means success.
type FakeMailer struct {
	mu   sync.Mutex
	Errs []error
	Sent []notify.Message
	// Attempts counts every Send call, failed ones included.
	Attempts int
}

var _ notify.Mailer = (*FakeMailer)(nil)

// Send implements notify.Mailer.
func (m *FakeMailer) Send(_ context.Context, msg notify.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := m.Attempts
	m.Attempts++
	if idx < len(m.Errs) && m.Errs[idx] != nil {
		return m.Errs[idx]
	}
	m.Sent = append(m.Sent, msg)
	return nil
}

// Messages returns a copy of the successfully sent messages.
func (m *FakeMailer) Messages() []notify.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]notify.Message(nil), m.Sent...)
}

// Factory returns a MailerFactory that always yields m and records the
// config it was built with.
func (m *FakeMailer) Factory(seen *notify.Config) notify.MailerFactory {
	return func(_ context.Context, cfg notify.Config) (notify.Mailer, error) {
		if seen != nil {
			*seen = cfg
		}
		return m, nil
	}
}

// TestConfig returns a configured notify.Config with fake credentials.
func TestConfig() notify.Config {
	return notify.Config{
		AccessKeyID:     "AKIDEXAMPLE",
		SecretAccessKey: "secret",
		Region:          notify.DefaultRegion,
		FromAddress:     notify.DefaultFromAddress,
		ToAddress:       notify.DefaultToAddress,
	}
}
