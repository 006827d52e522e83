package sendemail

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestServeSendEmailWithLogTransport(t *testing.T) {
	t.Setenv("MAIL_TRANSPORT", "log")
	t.Setenv("OPERATOR_EMAIL", "owner@example.jp")
	t.Setenv("CONFIG_FILE", "")

	body := `{"name":"山田 太郎","email":"taro@example.jp","city":"tokyo"}`
	req := httptest.NewRequest(http.MethodPost, "/api/send-email", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	serve(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
	var out struct {
		Success bool `json:"success"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !out.Success {
		t.Fatal("expected success true")
	}
}
