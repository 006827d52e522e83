package inquiry

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMalformedAttachment is returned for a value with no data URI payload separator.
	ErrMalformedAttachment = errors.New("attachment is not a data URI")
	// ErrEmptyAttachment is returned when the data URI carries no bytes.
	ErrEmptyAttachment = errors.New("attachment is empty")
)

// DecodeAttachment base64-decodes the portion of a data URI after the first comma.
// Unpadded payloads are accepted.
func DecodeAttachment(dataURI string) ([]byte, error) {
	_, payload, ok := strings.Cut(dataURI, ",")
	if !ok {
		return nil, ErrMalformedAttachment
	}
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return nil, ErrEmptyAttachment
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		raw, rawErr := base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "="))
		if rawErr != nil {
			return nil, fmt.Errorf("decode attachment: %w", err)
		}
		data = raw
	}
	return data, nil
}
