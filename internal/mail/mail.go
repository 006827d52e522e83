// Package mail sends HTML email through a configurable transport.
package mail

import (
	"context"
	"errors"
	"fmt"
	netmail "net/mail"

	"github.com/janisto/inquiry-relay/internal/config"
)

var (
	// ErrMissingCredentials is returned when a transport is built without the secrets it needs.
	ErrMissingCredentials = errors.New("mail credentials are not configured")
	// ErrUnknownTransport is returned for an unsupported transport name.
	ErrUnknownTransport = errors.New("unknown mail transport")
	// ErrNoRecipient is returned when a message has no recipient address.
	ErrNoRecipient = errors.New("message has no recipient")
)

// Address is a mailbox with an optional display name.
type Address struct {
	Name  string
	Email string
}

// String formats the address for a From or To header.
func (a Address) String() string {
	if a.Name == "" {
		return a.Email
	}
	return (&netmail.Address{Name: a.Name, Address: a.Email}).String()
}

// Attachment is a file carried with a message. A non-empty ContentID marks it
// as an inline part referenced from the HTML body as cid:<ContentID>.
type Attachment struct {
	Filename    string
	ContentType string
	ContentID   string
	Data        []byte
}

// Inline reports whether the attachment is referenced from the body.
func (a Attachment) Inline() bool {
	return a.ContentID != ""
}

// Message is a single-recipient HTML email.
type Message struct {
	From        Address
	To          Address
	Subject     string
	HTML        string
	Text        string
	Attachments []Attachment
}

func (m Message) validate() error {
	if m.To.Email == "" {
		return ErrNoRecipient
	}
	return nil
}

// Sender delivers one message. Implementations honor ctx cancellation where the
// underlying client allows it.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Factory builds a Sender. It is called once per relayed inquiry so configuration
// problems surface on the request that hits them.
type Factory func() (Sender, error)

// NewFactory returns a Factory for the configured transport.
func NewFactory(cfg config.Mail) Factory {
	return func() (Sender, error) {
		return New(cfg)
	}
}

// StaticFactory always returns s.
func StaticFactory(s Sender) Factory {
	return func() (Sender, error) {
		return s, nil
	}
}

// New builds the transport selected by cfg.Transport.
func New(cfg config.Mail) (Sender, error) {
	switch cfg.Transport {
	case config.TransportSMTP, "":
		return NewSMTPSender(cfg)
	case config.TransportMailerSend:
		return NewMailerSendSender(cfg)
	case config.TransportSMTP2GO:
		return NewSMTP2GOSender(cfg)
	case config.TransportLog:
		return NewLogSender(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTransport, cfg.Transport)
	}
}

// senderAddress fills in the account address when the caller only set a display name.
func senderAddress(from Address, account string) Address {
	if from.Email == "" {
		from.Email = account
	}
	return from
}
