// Package form is the client half of the inquiry form: it holds field values,
// guards against double submission and reports the outcome through a Notifier.
package form

import (
	"encoding/base64"
	"errors"
	"fmt"
)

// ErrUnknownField is returned by UpdateField for a name the form does not have.
var ErrUnknownField = errors.New("unknown form field")

// State holds every field as the user entered it. The zero value is the initial state.
type State struct {
	Name                      string `json:"name"                      validate:"required"`
	Email                     string `json:"email"                     validate:"required,email"`
	Phone                     string `json:"phone"                     validate:"required"`
	PhonePermission           string `json:"phonePermission"           validate:"required"`
	UsageType                 string `json:"usageType"                 validate:"required"`
	InvoiceRegistration       string `json:"invoiceRegistration"`
	ProvideRegistrationNumber string `json:"provideRegistrationNumber"`
	City                      string `json:"city"                      validate:"required,ne=not_selected"`
	ProductInfo               string `json:"product_info"              validate:"required"`
	InquirySource             string `json:"inquiry_source"`
	ProductDetails            string `json:"product_details"           validate:"required"`
	ProductCondition          string `json:"product_condition"`
	AdditionalNotes           string `json:"additional_notes"          validate:"required"`
	FileName                  string `json:"fileName"`
	// Image is the selected picture as a data URI, nil when none.
	Image *string `json:"-"`
}

// field returns a pointer to the text field with the given wire name.
func (s *State) field(name string) (*string, error) {
	switch name {
	case "name":
		return &s.Name, nil
	case "email":
		return &s.Email, nil
	case "phone":
		return &s.Phone, nil
	case "phonePermission":
		return &s.PhonePermission, nil
	case "usageType":
		return &s.UsageType, nil
	case "invoiceRegistration":
		return &s.InvoiceRegistration, nil
	case "provideRegistrationNumber":
		return &s.ProvideRegistrationNumber, nil
	case "city":
		return &s.City, nil
	case "product_info":
		return &s.ProductInfo, nil
	case "inquiry_source":
		return &s.InquirySource, nil
	case "product_details":
		return &s.ProductDetails, nil
	case "product_condition":
		return &s.ProductCondition, nil
	case "additional_notes":
		return &s.AdditionalNotes, nil
	case "fileName":
		return &s.FileName, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
}

// DataURI encodes image bytes the way the form's image picker does.
func DataURI(contentType string, data []byte) string {
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
