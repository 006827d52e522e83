package inquiry

import "github.com/janisto/inquiry-relay/internal/api"

// SendEmailOutput for POST /api/send-email
type SendEmailOutput struct {
	Body api.SendEmailResult
}
