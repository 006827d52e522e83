package mail

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/smtp2go-oss/smtp2go-go"

	"github.com/janisto/inquiry-relay/internal/config"
)

// smtp2goKeyEnv is where the smtp2go client reads its API key from.
const smtp2goKeyEnv = "SMTP2GO_API_KEY"

// SMTP2GOSender delivers through the SMTP2GO HTTP API.
type SMTP2GOSender struct {
	account string
	send    func(*smtp2go.Email) error
}

// NewSMTP2GOSender requires the sending address and an API key, either MAIL_API_KEY
// or SMTP2GO_API_KEY. MAIL_API_KEY is exported to the client when set.
func NewSMTP2GOSender(cfg config.Mail) (*SMTP2GOSender, error) {
	if cfg.APIKey != "" {
		if err := os.Setenv(smtp2goKeyEnv, cfg.APIKey); err != nil {
			return nil, fmt.Errorf("smtp2go: %w", err)
		}
	}
	if cfg.User == "" || os.Getenv(smtp2goKeyEnv) == "" {
		return nil, fmt.Errorf("smtp2go: %w", ErrMissingCredentials)
	}
	return &SMTP2GOSender{
		account: cfg.User,
		send: func(e *smtp2go.Email) error {
			_, err := smtp2go.Send(e)
			return err
		},
	}, nil
}

// Send blocks until the API call returns or ctx is done. The client has no
// cancellation, so an abandoned call finishes in the background.
func (s *SMTP2GOSender) Send(ctx context.Context, msg Message) error {
	email, err := s.build(msg)
	if err != nil {
		return err
	}
	done := make(chan error, 1)
	go func() {
		done <- s.send(email)
	}()
	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("smtp2go: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("smtp2go: %w", ctx.Err())
	}
}

func (s *SMTP2GOSender) build(msg Message) (*smtp2go.Email, error) {
	if err := msg.validate(); err != nil {
		return nil, err
	}
	from := senderAddress(msg.From, s.account)
	html := msg.HTML

	email := &smtp2go.Email{
		From:     from.String(),
		To:       []string{msg.To.String()},
		Subject:  msg.Subject,
		TextBody: msg.Text,
	}
	for _, a := range msg.Attachments {
		data := &smtp2go.EmailBinaryData{
			Filename: a.Filename,
			Fileblob: base64.StdEncoding.EncodeToString(a.Data),
			MimeType: a.ContentType,
		}
		if a.Inline() {
			// SMTP2GO addresses inline parts by filename.
			html = strings.ReplaceAll(html, "cid:"+a.ContentID, "cid:"+a.Filename)
			email.Inlines = append(email.Inlines, data)
			continue
		}
		email.Attachments = append(email.Attachments, data)
	}
	email.HtmlBody = html
	return email, nil
}
