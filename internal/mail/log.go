package mail

import (
	"context"

	"go.uber.org/zap"

	applog "github.com/janisto/inquiry-relay/internal/platform/logging"
)

// LogSender writes message metadata to the request logger instead of delivering it.
// It is meant for local development.
type LogSender struct{}

func NewLogSender() *LogSender {
	return &LogSender{}
}

func (LogSender) Send(ctx context.Context, msg Message) error {
	if err := msg.validate(); err != nil {
		return err
	}
	names := make([]string, 0, len(msg.Attachments))
	for _, a := range msg.Attachments {
		names = append(names, a.Filename)
	}
	applog.LogInfo(ctx, "mail not delivered (log transport)",
		zap.String("from", msg.From.String()),
		zap.String("to", msg.To.String()),
		zap.String("subject", msg.Subject),
		zap.Int("htmlBytes", len(msg.HTML)),
		zap.Strings("attachments", names),
	)
	return nil
}
