package inquiry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/janisto/inquiry-relay/internal/inquiry"
	"github.com/janisto/inquiry-relay/internal/mail"
	applog "github.com/janisto/inquiry-relay/internal/platform/logging"
)

const (
	inlineContentID    = "attached-image"
	attachmentMIMEType = "image/png"
	auditActor         = "website-form"
	defaultSendTimeout = 30 * time.Second
)

// Settings are the fixed parts of both emails.
type Settings struct {
	// OperatorEmail receives the notification.
	OperatorEmail string
	// OperatorPersona is the display name the acknowledgment is sent under.
	OperatorPersona string
	// SenderName is the display name of the operator notification.
	SenderName string
	// SendTimeout bounds each send. Zero means 30s.
	SendTimeout time.Duration
}

// Relay sends the operator notification and then the acknowledgment.
type Relay struct {
	factory  mail.Factory
	settings Settings
	now      func() time.Time
}

// Option configures a Relay.
type Option func(*Relay)

// WithClock overrides the receipt timestamp source.
func WithClock(now func() time.Time) Option {
	return func(r *Relay) {
		r.now = now
	}
}

// NewRelay builds a Relay. factory is called once per Submit.
func NewRelay(factory mail.Factory, settings Settings, opts ...Option) *Relay {
	if settings.SendTimeout <= 0 {
		settings.SendTimeout = defaultSendTimeout
	}
	r := &Relay{factory: factory, settings: settings, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Submit delivers both emails in order and returns nil only if both were sent.
// Sends are not cancelled when ctx is; each is bounded by SendTimeout instead.
func (r *Relay) Submit(ctx context.Context, inq inquiry.Inquiry) error {
	inq = inq.Normalize()
	err := r.submit(ctx, inq)

	result := applog.AuditSuccess
	details := map[string]any{"attachment": inq.HasAttachment()}
	if err != nil {
		result = applog.AuditFailure
		details["error"] = err.Error()
		var de *DeliveryError
		if errors.As(err, &de) {
			details["stage"] = string(de.Stage)
		}
	}
	applog.LogAuditEvent(ctx, "relay", auditActor, "inquiry", middleware.GetReqID(ctx), result, details)
	return err
}

func (r *Relay) submit(ctx context.Context, inq inquiry.Inquiry) error {
	sender, err := r.factory()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}
	if r.settings.OperatorEmail == "" {
		return ErrNoOperator
	}

	var attachments []mail.Attachment
	if inq.HasAttachment() {
		data, err := inquiry.DecodeAttachment(*inq.Attachment)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrAttachment, err)
		}
		attachments = append(attachments, mail.Attachment{
			Filename:    inq.AttachmentName(),
			ContentType: attachmentMIMEType,
			ContentID:   inlineContentID,
			Data:        data,
		})
	}

	operatorHTML, err := renderOperator(inq, r.now(), inlineContentID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRender, err)
	}
	ackHTML, err := renderAcknowledgment(inq, r.settings.OperatorPersona)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRender, err)
	}

	operator := mail.Message{
		From:        mail.Address{Name: r.settings.SenderName},
		To:          mail.Address{Email: r.settings.OperatorEmail},
		Subject:     "新しいお問い合わせ: " + inq.Name,
		HTML:        operatorHTML,
		Attachments: attachments,
	}
	if err := r.send(ctx, sender, StageOperator, operator); err != nil {
		return err
	}

	ack := mail.Message{
		From:    mail.Address{Name: r.settings.OperatorPersona},
		To:      mail.Address{Email: inq.Email},
		Subject: "お問い合わせありがとうございます",
		HTML:    ackHTML,
	}
	return r.send(ctx, sender, StageAcknowledgment, ack)
}

func (r *Relay) send(ctx context.Context, sender mail.Sender, stage Stage, msg mail.Message) error {
	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.settings.SendTimeout)
	defer cancel()

	start := time.Now()
	if err := sender.Send(sendCtx, msg); err != nil {
		return &DeliveryError{Stage: stage, cause: err}
	}
	applog.LogInfo(ctx, "email sent",
		zap.String("stage", string(stage)),
		zap.Int("attachments", len(msg.Attachments)),
		zap.Duration("duration", time.Since(start)),
	)
	return nil
}

// Compile-time interface check
var _ Service = (*Relay)(nil)
