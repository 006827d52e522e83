package form

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/janisto/inquiry-relay/internal/api"
)

const (
	defaultBaseURL = "http://localhost:8080"
	// fallbackMessage is used when an error response has no readable message.
	fallbackMessage = "Email sending failed"
	maxErrorBody    = 64 << 10
)

// Submitter delivers a submission to the server.
type Submitter interface {
	Submit(ctx context.Context, sub Submission) error
}

// ServerError is a non-2xx response from the endpoint.
type ServerError struct {
	Status  int
	Message string
}

// Error is the server-provided message so it can be shown to the user as is.
func (e *ServerError) Error() string {
	return e.Message
}

// HTTPSubmitter posts submissions as JSON.
type HTTPSubmitter struct {
	httpClient *http.Client
	baseURL    string
}

// Option configures an HTTPSubmitter.
type Option func(*HTTPSubmitter)

// WithBaseURL sets the server origin, e.g. https://example.jp.
func WithBaseURL(url string) Option {
	return func(s *HTTPSubmitter) {
		s.baseURL = strings.TrimRight(url, "/")
	}
}

// WithHTTPClient replaces the default client, which gives up after 90s.
func WithHTTPClient(c *http.Client) Option {
	return func(s *HTTPSubmitter) {
		s.httpClient = c
	}
}

func NewHTTPSubmitter(opts ...Option) *HTTPSubmitter {
	s := &HTTPSubmitter{
		httpClient: &http.Client{Timeout: 90 * time.Second},
		baseURL:    defaultBaseURL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *HTTPSubmitter) Submit(ctx context.Context, sub Submission) error {
	payload, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("encode submission: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+api.SendEmailPath, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &ServerError{Status: resp.StatusCode, Message: errorMessage(resp.Body)}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func errorMessage(body io.Reader) string {
	var eb api.ErrorBody
	if err := json.NewDecoder(io.LimitReader(body, maxErrorBody)).Decode(&eb); err != nil || eb.Message == "" {
		return fallbackMessage
	}
	return eb.Message
}
