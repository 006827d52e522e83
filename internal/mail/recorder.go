package mail

import (
	"context"
	"sync"
)

// RecordingSender captures messages for tests. Errs are returned in order, one per
// Send call; calls past the end of Errs succeed. A failed send is still recorded.
type RecordingSender struct {
	mu   sync.Mutex
	sent []Message
	Errs []error
}

func (r *RecordingSender) Send(ctx context.Context, msg Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	idx := len(r.sent)
	r.sent = append(r.sent, msg)
	if err := ctx.Err(); err != nil {
		return err
	}
	if idx < len(r.Errs) {
		return r.Errs[idx]
	}
	return nil
}

// Sent returns a copy of the recorded messages in send order.
func (r *RecordingSender) Sent() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Message, len(r.sent))
	copy(out, r.sent)
	return out
}

var _ Sender = (*RecordingSender)(nil)
