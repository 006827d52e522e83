package inquiry

import (
	"net/mail"
	"strings"

	"github.com/danielgtaylor/huma/v2"
)

// SendEmailInput is the body posted by the inquiry form. Only name and email are
// required; every other field is rendered as sent. Unknown properties are ignored.
type SendEmailInput struct {
	Body struct {
		_                         struct{} `json:"-" additionalProperties:"true"`
		Name                      string   `json:"name"                                minLength:"1" maxLength:"200"  doc:"Submitter name"                          example:"山田 太郎"`
		Email                     string   `json:"email"                               format:"email" maxLength:"254" doc:"Submitter email, receives the acknowledgment" example:"taro@example.jp"`
		Phone                     string   `json:"phone,omitempty"                     maxLength:"50"                 doc:"Phone number"                            example:"090-1234-5678"`
		PhonePermission           string   `json:"phonePermission,omitempty"           doc:"allow_phone_call or disallow_phone_call" example:"allow_phone_call"`
		UsageType                 string   `json:"usageType,omitempty"                 doc:"business or personal"                    example:"business"`
		InvoiceRegistration       string   `json:"invoiceRegistration,omitempty"       doc:"registered or not_registered"            example:"registered"`
		ProvideRegistrationNumber string   `json:"provideRegistrationNumber,omitempty" doc:"will_provide or will_not_provide"        example:"will_provide"`
		City                      string   `json:"city,omitempty"                      doc:"not_selected, tokyo or osaka"            example:"tokyo"`
		ProductInfo               string   `json:"product_info,omitempty"              maxLength:"2000"               doc:"Product information"                     example:"電動工具"`
		InquirySource             string   `json:"inquiry_source,omitempty"            doc:"none, web or ad"                         example:"web"`
		ProductDetails            string   `json:"product_details,omitempty"           maxLength:"2000"               doc:"Maker and model"                         example:"リョービ電ノコ(ASK-1000)"`
		ProductCondition          string   `json:"product_condition,omitempty"         doc:"scrap, used or new"                      example:"used"`
		AdditionalNotes           string   `json:"additional_notes,omitempty"          maxLength:"5000"               doc:"Free-form notes"`
		Attachment                *string  `json:"attachment,omitempty"                nullable:"true"                doc:"Image as a data URI (data:image/png;base64,...)"`
		FileName                  string   `json:"fileName,omitempty"                  maxLength:"200"                doc:"Attachment name without extension" example:"drill"`
	}
}

// Resolve rejects values the schema accepts but delivery cannot use: a name that
// is blank once trimmed, and an email carrying a display name or comments.
func (i *SendEmailInput) Resolve(_ huma.Context) []error {
	var errs []error
	if strings.TrimSpace(i.Body.Name) == "" {
		errs = append(errs, &huma.ErrorDetail{
			Location: "body.name",
			Message:  "name must not be blank",
			Value:    i.Body.Name,
		})
	}
	if !bareAddress(i.Body.Email) {
		errs = append(errs, &huma.ErrorDetail{
			Location: "body.email",
			Message:  "email must be a bare address",
			Value:    i.Body.Email,
		})
	}
	return errs
}

// bareAddress reports whether s is exactly one addr-spec with no display name.
func bareAddress(s string) bool {
	trimmed := strings.TrimSpace(s)
	addr, err := mail.ParseAddress(trimmed)
	if err != nil {
		return false
	}
	return addr.Name == "" && addr.Address == trimmed
}
