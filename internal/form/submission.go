package form

import "github.com/janisto/inquiry-relay/internal/inquiry"

// Submission is the JSON body posted to the send-email endpoint. The image is
// carried as attachment; State.Image itself is never sent.
type Submission struct {
	Name                      string  `json:"name"`
	Email                     string  `json:"email"`
	Phone                     string  `json:"phone"`
	PhonePermission           string  `json:"phonePermission"`
	UsageType                 string  `json:"usageType"`
	InvoiceRegistration       string  `json:"invoiceRegistration"`
	ProvideRegistrationNumber string  `json:"provideRegistrationNumber"`
	City                      string  `json:"city"`
	ProductInfo               string  `json:"product_info"`
	InquirySource             string  `json:"inquiry_source"`
	ProductDetails            string  `json:"product_details"`
	ProductCondition          string  `json:"product_condition"`
	AdditionalNotes           string  `json:"additional_notes"`
	Attachment                *string `json:"attachment"`
	FileName                  string  `json:"fileName"`
}

// NewSubmission builds the wire payload from s. An empty image becomes null and
// FileName defaults to "attachment".
func NewSubmission(s State) Submission {
	sub := Submission{
		Name:                      s.Name,
		Email:                     s.Email,
		Phone:                     s.Phone,
		PhonePermission:           s.PhonePermission,
		UsageType:                 s.UsageType,
		InvoiceRegistration:       s.InvoiceRegistration,
		ProvideRegistrationNumber: s.ProvideRegistrationNumber,
		City:                      s.City,
		ProductInfo:               s.ProductInfo,
		InquirySource:             s.InquirySource,
		ProductDetails:            s.ProductDetails,
		ProductCondition:          s.ProductCondition,
		AdditionalNotes:           s.AdditionalNotes,
		FileName:                  s.FileName,
	}
	if s.Image != nil && *s.Image != "" {
		image := *s.Image
		sub.Attachment = &image
	}
	if sub.FileName == "" {
		sub.FileName = inquiry.DefaultFileName
	}
	return sub
}
