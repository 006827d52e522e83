package mail

import (
	"bytes"
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"

	"github.com/janisto/inquiry-relay/internal/config"
)

const implicitTLSPort = 465

// SMTPSender delivers through an authenticated SMTP submission server (Gmail by default).
type SMTPSender struct {
	client  *gomail.Client
	account string
}

// NewSMTPSender requires the account user and password.
func NewSMTPSender(cfg config.Mail) (*SMTPSender, error) {
	if cfg.User == "" || cfg.Password == "" {
		return nil, fmt.Errorf("smtp: %w", ErrMissingCredentials)
	}
	opts := []gomail.Option{
		gomail.WithPort(cfg.SMTPPort),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(cfg.User),
		gomail.WithPassword(cfg.Password),
		gomail.WithTLSPolicy(gomail.TLSMandatory),
	}
	if cfg.SMTPPort == implicitTLSPort {
		opts = append(opts, gomail.WithSSL())
	}
	client, err := gomail.NewClient(cfg.SMTPHost, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp: %w", err)
	}
	return &SMTPSender{client: client, account: cfg.User}, nil
}

// Send dials, delivers and closes the connection.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	m, err := s.build(msg)
	if err != nil {
		return err
	}
	if err := s.client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("smtp: %w", err)
	}
	return nil
}

func (s *SMTPSender) build(msg Message) (*gomail.Msg, error) {
	if err := msg.validate(); err != nil {
		return nil, err
	}
	from := senderAddress(msg.From, s.account)

	m := gomail.NewMsg()
	if err := m.FromFormat(from.Name, from.Email); err != nil {
		return nil, fmt.Errorf("smtp: from: %w", err)
	}
	if err := m.AddToFormat(msg.To.Name, msg.To.Email); err != nil {
		return nil, fmt.Errorf("smtp: to: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(gomail.TypeTextHTML, msg.HTML)
	if msg.Text != "" {
		m.AddAlternativeString(gomail.TypeTextPlain, msg.Text)
	}
	for _, a := range msg.Attachments {
		opts := []gomail.FileOption{gomail.WithFileContentType(gomail.ContentType(a.ContentType))}
		if a.Inline() {
			opts = append(opts, gomail.WithFileContentID(a.ContentID))
			if err := m.EmbedReader(a.Filename, bytes.NewReader(a.Data), opts...); err != nil {
				return nil, fmt.Errorf("smtp: embed %s: %w", a.Filename, err)
			}
			continue
		}
		if err := m.AttachReader(a.Filename, bytes.NewReader(a.Data), opts...); err != nil {
			return nil, fmt.Errorf("smtp: attach %s: %w", a.Filename, err)
		}
	}
	return m, nil
}
