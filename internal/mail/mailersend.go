package mail

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/mailersend/mailersend-go"

	"github.com/janisto/inquiry-relay/internal/config"
)

// MailerSendSender delivers through the MailerSend HTTP API. The sending
// address must belong to a domain verified in MailerSend.
type MailerSendSender struct {
	client  *mailersend.Mailersend
	account string
}

// NewMailerSendSender requires MAIL_API_KEY and the sending address.
func NewMailerSendSender(cfg config.Mail) (*MailerSendSender, error) {
	if cfg.APIKey == "" || cfg.User == "" {
		return nil, fmt.Errorf("mailersend: %w", ErrMissingCredentials)
	}
	return &MailerSendSender{client: mailersend.NewMailersend(cfg.APIKey), account: cfg.User}, nil
}

func (s *MailerSendSender) Send(ctx context.Context, msg Message) error {
	m, err := s.build(msg)
	if err != nil {
		return err
	}
	if _, err := s.client.Email.Send(ctx, m); err != nil {
		return fmt.Errorf("mailersend: %w", err)
	}
	return nil
}

func (s *MailerSendSender) build(msg Message) (*mailersend.Message, error) {
	if err := msg.validate(); err != nil {
		return nil, err
	}
	from := senderAddress(msg.From, s.account)

	m := s.client.Email.NewMessage()
	m.SetFrom(mailersend.From{Name: from.Name, Email: from.Email})
	m.SetRecipients([]mailersend.Recipient{{Name: msg.To.Name, Email: msg.To.Email}})
	m.SetSubject(msg.Subject)
	m.SetHTML(msg.HTML)
	if msg.Text != "" {
		m.SetText(msg.Text)
	}
	for _, a := range msg.Attachments {
		att := mailersend.Attachment{
			Content:     base64.StdEncoding.EncodeToString(a.Data),
			Filename:    a.Filename,
			Disposition: "attachment",
		}
		if a.Inline() {
			att.Disposition = "inline"
			att.ID = a.ContentID
		}
		m.AddAttachment(att)
	}
	return m, nil
}
