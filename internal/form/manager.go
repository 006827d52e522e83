package form

import (
	"context"
	"sync"
	"sync/atomic"
)

// Result is the outcome of one Submit call.
type Result int

const (
	// ResultSkipped means another submission was already in flight.
	ResultSkipped Result = iota
	ResultSucceeded
	ResultFailed
)

func (r Result) String() string {
	switch r {
	case ResultSkipped:
		return "skipped"
	case ResultSucceeded:
		return "succeeded"
	case ResultFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Manager owns the form state and the in-flight flag.
// It is safe for concurrent use.
type Manager struct {
	mu         sync.Mutex
	state      State
	submitting atomic.Bool
	submitter  Submitter
	notifier   Notifier
}

func NewManager(submitter Submitter, notifier Notifier) *Manager {
	return &Manager{submitter: submitter, notifier: notifier}
}

// State returns a copy of the current field values.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.state
	if s.Image != nil {
		image := *s.Image
		s.Image = &image
	}
	return s
}

// Submitting reports whether a submission is in flight.
func (m *Manager) Submitting() bool {
	return m.submitting.Load()
}

// UpdateField sets one field by its wire name. Values are not validated.
func (m *Manager) UpdateField(name, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	f, err := m.state.field(name)
	if err != nil {
		return err
	}
	*f = value
	return nil
}

// UpdateImage replaces the image; nil clears it.
func (m *Manager) UpdateImage(dataURI *string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if dataURI == nil {
		m.state.Image = nil
		return
	}
	image := *dataURI
	m.state.Image = &image
}

// Submit posts the current state. It returns ResultSkipped without side effects
// while another Submit is running. Otherwise exactly one notification is sent:
// on success the state is reset, on failure it is left as is.
func (m *Manager) Submit(ctx context.Context) Result {
	if !m.submitting.CompareAndSwap(false, true) {
		return ResultSkipped
	}
	defer m.submitting.Store(false)

	if err := m.submitter.Submit(ctx, NewSubmission(m.State())); err != nil {
		m.notifier.Failure(FailureMessage(err))
		return ResultFailed
	}

	m.mu.Lock()
	m.state = State{}
	m.mu.Unlock()
	m.notifier.Success(SuccessMessage)
	return ResultSucceeded
}
