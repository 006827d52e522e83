package api

// SendEmailPath is the route the inquiry form posts to.
const SendEmailPath = "/api/send-email"

// SendEmailResult is the 200 body of the send-email endpoint.
type SendEmailResult struct {
	Success bool `json:"success" doc:"True once both emails were sent"`
}

// ErrorBody is the body of every non-2xx response.
// Clients read Message; Details is populated for request validation failures only.
type ErrorBody struct {
	Message string       `json:"message"`
	Details []FieldIssue `json:"details,omitempty"`
}

// FieldIssue gives field-level or contextual error information.
type FieldIssue struct {
	Field string `json:"field,omitempty"`
	Issue string `json:"issue"`
}

// NewErrorBody clones details so callers may reuse their slice.
func NewErrorBody(msg string, details []FieldIssue) ErrorBody {
	var cloned []FieldIssue
	if len(details) > 0 {
		cloned = make([]FieldIssue, len(details))
		copy(cloned, details)
	}
	return ErrorBody{Message: msg, Details: cloned}
}
