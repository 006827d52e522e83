package inquiry

import (
	"context"
	"errors"
	"fmt"

	"github.com/janisto/inquiry-relay/internal/inquiry"
)

// Service errors
var (
	ErrTransport  = errors.New("mail transport unavailable")
	ErrAttachment = errors.New("attachment could not be decoded")
	ErrRender     = errors.New("email could not be rendered")
	ErrNoOperator = errors.New("operator address is not configured")
)

// Stage identifies which of the two emails a delivery failure belongs to.
type Stage string

const (
	StageOperator       Stage = "operator"
	StageAcknowledgment Stage = "acknowledgment"
)

// DeliveryError is returned when a send fails. A failed acknowledgment means the
// operator email was already delivered.
type DeliveryError struct {
	Stage Stage
	cause error
}

func (e *DeliveryError) Error() string {
	if e == nil {
		return "email delivery failed"
	}
	return fmt.Sprintf("%s email: %v", e.Stage, e.cause)
}

// Unwrap enables errors.Is/As against transport errors.
func (e *DeliveryError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// Service relays an inquiry to the operator and acknowledges it to the submitter.
type Service interface {
	Submit(ctx context.Context, inq inquiry.Inquiry) error
}
