package inquiry

import (
	"context"
	"sync"

	"github.com/janisto/inquiry-relay/internal/inquiry"
)

// MockService implements Service for handler tests. It records every submission
// and returns Err.
type MockService struct {
	mu        sync.Mutex
	submitted []inquiry.Inquiry
	Err       error
}

func NewMockService() *MockService {
	return &MockService{}
}

func (m *MockService) Submit(_ context.Context, inq inquiry.Inquiry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.submitted = append(m.submitted, inq)
	return m.Err
}

// Submitted returns a copy of the received inquiries.
func (m *MockService) Submitted() []inquiry.Inquiry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]inquiry.Inquiry, len(m.submitted))
	copy(out, m.submitted)
	return out
}

// Compile-time interface check
var _ Service = (*MockService)(nil)
