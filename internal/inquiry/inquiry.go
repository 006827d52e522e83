// Package inquiry defines the buy-back inquiry submitted through the website form
// and the Japanese display labels used when it is rendered into email.
package inquiry

import "strings"

// DefaultFileName names the attachment when the submitter did not.
const DefaultFileName = "attachment"

// Inquiry is one form submission. Enumerated fields are kept as free strings so
// unrecognized values still render; see the Label methods.
type Inquiry struct {
	Name                      string              `json:"name"`
	Email                     string              `json:"email"`
	Phone                     string              `json:"phone"`
	PhonePermission           PhonePermission     `json:"phonePermission"`
	UsageType                 UsageType           `json:"usageType"`
	InvoiceRegistration       InvoiceRegistration `json:"invoiceRegistration"`
	ProvideRegistrationNumber RegistrationNumber  `json:"provideRegistrationNumber"`
	City                      City                `json:"city"`
	ProductInfo               string              `json:"product_info"`
	InquirySource             Source              `json:"inquiry_source"`
	ProductDetails            string              `json:"product_details"`
	ProductCondition          Condition           `json:"product_condition"`
	AdditionalNotes           string              `json:"additional_notes"`
	// Attachment is a data URI (data:image/png;base64,...). Nil or empty means none.
	Attachment *string `json:"attachment"`
	FileName   string  `json:"fileName"`
}

// Normalize returns a copy with surrounding whitespace removed from identifying
// fields and FileName defaulted.
func (i Inquiry) Normalize() Inquiry {
	i.Name = strings.TrimSpace(i.Name)
	i.Email = strings.TrimSpace(i.Email)
	i.Phone = strings.TrimSpace(i.Phone)
	i.FileName = strings.TrimSpace(i.FileName)
	if i.FileName == "" {
		i.FileName = DefaultFileName
	}
	if i.Attachment != nil && strings.TrimSpace(*i.Attachment) == "" {
		i.Attachment = nil
	}
	return i
}

// HasAttachment reports whether an attachment value was supplied.
func (i Inquiry) HasAttachment() bool {
	return i.Attachment != nil && *i.Attachment != ""
}

// AttachmentName is the filename the inline image is delivered under.
func (i Inquiry) AttachmentName() string {
	name := i.FileName
	if name == "" {
		name = DefaultFileName
	}
	return name + ".png"
}
