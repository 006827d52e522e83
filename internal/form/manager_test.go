package form

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/janisto/inquiry-relay/internal/api"
)

type captureNotifier struct {
	mu        sync.Mutex
	successes []string
	failures  []string
}

func (n *captureNotifier) Success(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, msg)
}

func (n *captureNotifier) Failure(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.failures = append(n.failures, msg)
}

func (n *captureNotifier) counts() (int, int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.successes), len(n.failures)
}

type submitterFunc func(context.Context, Submission) error

func (f submitterFunc) Submit(ctx context.Context, sub Submission) error {
	return f(ctx, sub)
}

func fillForm(t *testing.T, m *Manager) {
	t.Helper()
	values := map[string]string{
		"name":              "山田 太郎",
		"email":             "taro@example.jp",
		"phone":             "090-1234-5678",
		"phonePermission":   "allow_phone_call",
		"usageType":         "business",
		"city":              "tokyo",
		"product_info":      "電動工具",
		"product_details":   "リョービ電ノコ(ASK-1000)",
		"product_condition": "used",
		"additional_notes":  "週末の連絡を希望",
	}
	for name, value := range values {
		if err := m.UpdateField(name, value); err != nil {
			t.Fatalf("update %s: %v", name, err)
		}
	}
	image := DataURI("image/png", []byte("png"))
	m.UpdateImage(&image)
}

func TestUpdateFieldUnknownName(t *testing.T) {
	m := NewManager(nil, &captureNotifier{})
	if err := m.UpdateField("image", "x"); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
}

func TestUpdateImageClears(t *testing.T) {
	m := NewManager(nil, &captureNotifier{})
	image := DataURI("image/png", []byte("png"))
	m.UpdateImage(&image)
	if m.State().Image == nil {
		t.Fatal("expected image to be set")
	}
	m.UpdateImage(nil)
	if m.State().Image != nil {
		t.Fatal("expected image to be cleared")
	}
}

func TestSubmitSuccessResetsState(t *testing.T) {
	notifier := &captureNotifier{}
	var got Submission
	m := NewManager(submitterFunc(func(_ context.Context, sub Submission) error {
		got = sub
		return nil
	}), notifier)
	fillForm(t, m)

	if r := m.Submit(context.Background()); r != ResultSucceeded {
		t.Fatalf("expected succeeded, got %s", r)
	}
	if m.State() != (State{}) {
		t.Fatalf("expected initial state, got %+v", m.State())
	}
	if m.Submitting() {
		t.Fatal("expected in-flight flag to be cleared")
	}
	if notifier.successes[0] != SuccessMessage || len(notifier.failures) != 0 {
		t.Fatalf("unexpected notifications %+v", notifier)
	}
	if got.Attachment == nil || got.FileName != "attachment" || got.Name != "山田 太郎" {
		t.Fatalf("unexpected submission %+v", got)
	}
}

func TestSubmitFailurePreservesState(t *testing.T) {
	notifier := &captureNotifier{}
	m := NewManager(submitterFunc(func(context.Context, Submission) error {
		return &ServerError{Status: http.StatusInternalServerError, Message: "operator email: timeout"}
	}), notifier)
	fillForm(t, m)
	before := m.State()

	if r := m.Submit(context.Background()); r != ResultFailed {
		t.Fatalf("expected failed, got %s", r)
	}
	after := m.State()
	if after.Name != before.Name || after.City != before.City || after.Image == nil || *after.Image != *before.Image {
		t.Fatalf("expected state to be preserved, got %+v", after)
	}
	if m.Submitting() {
		t.Fatal("expected in-flight flag to be cleared")
	}
	successes, failures := notifier.counts()
	if successes != 0 || failures != 1 {
		t.Fatalf("expected exactly one failure, got %d/%d", successes, failures)
	}
	if notifier.failures[0] != "送信中にエラーが発生しました: operator email: timeout" {
		t.Fatalf("unexpected failure message %q", notifier.failures[0])
	}
}

func TestSubmitConcurrentSecondCallIsSkipped(t *testing.T) {
	notifier := &captureNotifier{}
	started := make(chan struct{})
	release := make(chan struct{})
	var calls int
	var mu sync.Mutex
	m := NewManager(submitterFunc(func(context.Context, Submission) error {
		mu.Lock()
		calls++
		mu.Unlock()
		close(started)
		<-release
		return nil
	}), notifier)
	fillForm(t, m)

	first := make(chan Result, 1)
	go func() {
		first <- m.Submit(context.Background())
	}()
	<-started

	if !m.Submitting() {
		t.Fatal("expected in-flight flag during submission")
	}
	if r := m.Submit(context.Background()); r != ResultSkipped {
		t.Fatalf("expected second call to be skipped, got %s", r)
	}
	close(release)

	select {
	case r := <-first:
		if r != ResultSucceeded {
			t.Fatalf("expected first call to succeed, got %s", r)
		}
	case <-time.After(time.Second):
		t.Fatal("first submission did not finish")
	}
	mu.Lock()
	defer mu.Unlock()
	if calls != 1 {
		t.Fatalf("expected one network call, got %d", calls)
	}
	if successes, failures := notifier.counts(); successes != 1 || failures != 0 {
		t.Fatalf("expected one success notification, got %d/%d", successes, failures)
	}
}

func TestSubmitAllowsResubmitAfterFailure(t *testing.T) {
	notifier := &captureNotifier{}
	fail := true
	m := NewManager(submitterFunc(func(context.Context, Submission) error {
		if fail {
			return errors.New("connection refused")
		}
		return nil
	}), notifier)
	fillForm(t, m)

	if r := m.Submit(context.Background()); r != ResultFailed {
		t.Fatalf("expected failed, got %s", r)
	}
	fail = false
	if r := m.Submit(context.Background()); r != ResultSucceeded {
		t.Fatalf("expected succeeded, got %s", r)
	}
}

func TestSubmitThroughHTTP(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantResult  Result
		wantFailure string
	}{
		{"success", http.StatusOK, `{"success":true}`, ResultSucceeded, ""},
		{"server message", http.StatusInternalServerError, `{"message":"acknowledgment email: mailbox unavailable"}`, ResultFailed, "送信中にエラーが発生しました: acknowledgment email: mailbox unavailable"},
		{"no message", http.StatusInternalServerError, `{}`, ResultFailed, "送信中にエラーが発生しました: Email sending failed"},
		{"not json", http.StatusBadGateway, `<html>bad gateway</html>`, ResultFailed, "送信中にエラーが発生しました: Email sending failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var received map[string]any
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPost || r.URL.Path != api.SendEmailPath {
					t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
				}
				if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
					t.Errorf("decode request: %v", err)
				}
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			notifier := &captureNotifier{}
			m := NewManager(NewHTTPSubmitter(WithBaseURL(srv.URL), WithHTTPClient(srv.Client())), notifier)
			fillForm(t, m)

			if r := m.Submit(context.Background()); r != tt.wantResult {
				t.Fatalf("expected %s, got %s", tt.wantResult, r)
			}
			if _, ok := received["image"]; ok {
				t.Error("image must not be sent")
			}
			if _, ok := received["attachment"].(string); !ok {
				t.Errorf("expected attachment string, got %v", received["attachment"])
			}
			if tt.wantFailure != "" {
				if len(notifier.failures) != 1 || notifier.failures[0] != tt.wantFailure {
					t.Fatalf("unexpected failures %v", notifier.failures)
				}
			}
		})
	}
}

func TestSubmitNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	notifier := &captureNotifier{}
	m := NewManager(NewHTTPSubmitter(WithBaseURL(url)), notifier)
	fillForm(t, m)

	if r := m.Submit(context.Background()); r != ResultFailed {
		t.Fatalf("expected failed, got %s", r)
	}
	if _, failures := notifier.counts(); failures != 1 {
		t.Fatalf("expected one failure notification, got %d", failures)
	}
	if m.State().Name == "" {
		t.Fatal("expected state to be preserved")
	}
}
