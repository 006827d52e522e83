package form

import (
	"errors"
	"strings"
	"testing"
)

func validState() State {
	return State{
		Name:            "山田 太郎",
		Email:           "taro@example.jp",
		Phone:           "090-1234-5678",
		PhonePermission: "allow_phone_call",
		UsageType:       "personal",
		City:            "osaka",
		ProductInfo:     "電動工具",
		ProductDetails:  "マキタ インパクトドライバー",
		AdditionalNotes: "なし",
	}
}

func TestNewSubmission(t *testing.T) {
	s := validState()
	image := DataURI("image/png", []byte{1, 2, 3})
	s.Image = &image

	sub := NewSubmission(s)
	if sub.Attachment == nil || *sub.Attachment != image {
		t.Fatalf("expected attachment to carry the image")
	}
	if sub.FileName != "attachment" {
		t.Fatalf("expected default file name, got %q", sub.FileName)
	}

	*s.Image = "changed"
	if *sub.Attachment == "changed" {
		t.Fatal("expected submission to own its attachment")
	}
}

func TestNewSubmissionWithoutImage(t *testing.T) {
	s := validState()
	s.FileName = "drill"
	empty := ""
	s.Image = &empty

	sub := NewSubmission(s)
	if sub.Attachment != nil {
		t.Fatal("expected null attachment")
	}
	if sub.FileName != "drill" {
		t.Fatalf("expected file name to be kept, got %q", sub.FileName)
	}
}

func TestDataURI(t *testing.T) {
	if got := DataURI("image/png", []byte("hi")); got != "data:image/png;base64,aGk=" {
		t.Fatalf("unexpected data URI %q", got)
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(validState()); err != nil {
		t.Fatalf("expected valid state, got %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*State)
		field  string
		tag    string
	}{
		{"missing name", func(s *State) { s.Name = "" }, "name", "required"},
		{"bad email", func(s *State) { s.Email = "taro" }, "email", "email"},
		{"city not selected", func(s *State) { s.City = "not_selected" }, "city", "ne"},
		{"missing notes", func(s *State) { s.AdditionalNotes = "" }, "additional_notes", "required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validState()
			tt.mutate(&s)
			err := Validate(s)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Fields[tt.field] != tt.tag {
				t.Fatalf("expected %s=%s, got %v", tt.field, tt.tag, verr.Fields)
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Fatalf("expected field in message, got %q", err.Error())
			}
		})
	}
}

func TestValidateOptionalFields(t *testing.T) {
	s := validState()
	s.InvoiceRegistration = ""
	s.ProvideRegistrationNumber = ""
	s.ProductCondition = ""
	s.InquirySource = ""
	if err := Validate(s); err != nil {
		t.Fatalf("expected optional fields to be optional, got %v", err)
	}
}

func TestFailureMessage(t *testing.T) {
	if got := FailureMessage(errors.New("")); got != "送信中にエラーが発生しました: Unknown error" {
		t.Fatalf("unexpected message %q", got)
	}
	if got := FailureMessage(nil); got != "送信中にエラーが発生しました: Unknown error" {
		t.Fatalf("unexpected message %q", got)
	}
}
