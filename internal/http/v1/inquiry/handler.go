package inquiry

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/janisto/inquiry-relay/internal/api"
	"github.com/janisto/inquiry-relay/internal/inquiry"
	"github.com/janisto/inquiry-relay/internal/platform/respond"
	inquirysvc "github.com/janisto/inquiry-relay/internal/service/inquiry"
)

// fallbackMessage is sent when a failure carries no text of its own.
const fallbackMessage = "Error sending email"

// Register registers the send-email endpoint. maxBodyBytes bounds the request
// including the base64 attachment.
func Register(humaAPI huma.API, svc inquirysvc.Service, maxBodyBytes int64) {
	huma.Register(humaAPI, huma.Operation{
		OperationID:  "send-email",
		Method:       http.MethodPost,
		Path:         api.SendEmailPath,
		Summary:      "Relay an inquiry by email",
		Description:  "Sends the inquiry to the operator with the optional image inline, then sends the submitter an acknowledgment. Succeeds only if both emails were sent.",
		Tags:         []string{"Inquiry"},
		MaxBodyBytes: maxBodyBytes,
		Errors:       []int{http.StatusBadRequest, http.StatusUnprocessableEntity, http.StatusInternalServerError},
	}, func(ctx context.Context, input *SendEmailInput) (*SendEmailOutput, error) {
		if err := svc.Submit(ctx, toInquiry(input)); err != nil {
			msg := err.Error()
			if msg == "" {
				msg = fallbackMessage
			}
			return nil, respond.Error(ctx, http.StatusInternalServerError, msg, nil, err)
		}
		return &SendEmailOutput{Body: api.SendEmailResult{Success: true}}, nil
	})
}

func toInquiry(input *SendEmailInput) inquiry.Inquiry {
	b := input.Body
	return inquiry.Inquiry{
		Name:                      b.Name,
		Email:                     b.Email,
		Phone:                     b.Phone,
		PhonePermission:           inquiry.PhonePermission(b.PhonePermission),
		UsageType:                 inquiry.UsageType(b.UsageType),
		InvoiceRegistration:       inquiry.InvoiceRegistration(b.InvoiceRegistration),
		ProvideRegistrationNumber: inquiry.RegistrationNumber(b.ProvideRegistrationNumber),
		City:                      inquiry.City(b.City),
		ProductInfo:               b.ProductInfo,
		InquirySource:             inquiry.Source(b.InquirySource),
		ProductDetails:            b.ProductDetails,
		ProductCondition:          inquiry.Condition(b.ProductCondition),
		AdditionalNotes:           b.AdditionalNotes,
		Attachment:                b.Attachment,
		FileName:                  b.FileName,
	}
}
