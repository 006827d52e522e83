package inquiry

import (
	"bytes"
	"embed"
	"html/template"
	"time"

	"github.com/janisto/inquiry-relay/internal/inquiry"
	"github.com/janisto/inquiry-relay/internal/platform/timeutil"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type operatorView struct {
	inquiry.Inquiry
	ReceivedAt     string
	AttachmentName string
	ContentID      string
}

type acknowledgmentView struct {
	inquiry.Inquiry
	Persona string
}

func renderOperator(inq inquiry.Inquiry, receivedAt time.Time, contentID string) (string, error) {
	view := operatorView{
		Inquiry:    inq,
		ReceivedAt: timeutil.FormatReceived(receivedAt),
	}
	if inq.HasAttachment() {
		view.AttachmentName = inq.AttachmentName()
		view.ContentID = contentID
	}
	return execute("operator.html", view)
}

func renderAcknowledgment(inq inquiry.Inquiry, persona string) (string, error) {
	return execute("acknowledgment.html", acknowledgmentView{Inquiry: inq, Persona: persona})
}

func execute(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
