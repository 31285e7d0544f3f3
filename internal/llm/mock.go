package llm

import (
	"context"
	"sync"
)

// MockResponse is a canned response for the MockProvider.
type MockResponse struct {
	// Text is the full response for Generate. When Fragments is empty,
	// GenerateStream emits Text as a single fragment.
	Text string

	// Fragments scripts the exact fragment sequence for GenerateStream.
	Fragments []string

	// Err makes Generate fail, or GenerateStream emit an error fragment
	// after any scripted fragments.
	Err error

	// ConnectErr makes GenerateStream fail before a stream is established.
	ConnectErr error

	Usage Usage
}

// MockProvider is a deterministic Provider for testing.
// It returns canned responses in FIFO order and records all requests.
type MockProvider struct {
	mu        sync.Mutex
	responses []MockResponse
	Calls     []Request
}

// NewMockProvider creates a MockProvider with the given canned responses.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{responses: responses}
}

// Generate returns the next canned response or ErrProviderUnavailable if
// the queue is empty.
func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	resp, err := m.next(req)
	if err != nil {
		return nil, err
	}

	if resp.Err != nil {
		return nil, resp.Err
	}

	text := resp.Text
	if text == "" {
		for _, f := range resp.Fragments {
			text += f
		}
	}

	return &Response{
		Text:       text,
		Usage:      resp.Usage,
		Model:      "mock",
		StopReason: "end",
	}, nil
}

// GenerateStream emits the next canned response's fragments in order,
// terminated by a Done fragment, or by an error fragment when Err is set.
func (m *MockProvider) GenerateStream(ctx context.Context, req Request) (<-chan Fragment, error) {
	resp, err := m.next(req)
	if err != nil {
		return nil, err
	}

	if resp.ConnectErr != nil {
		return nil, resp.ConnectErr
	}

	fragments := resp.Fragments
	if len(fragments) == 0 && resp.Text != "" {
		fragments = []string{resp.Text}
	}

	ch := make(chan Fragment, len(fragments)+1)
	go func() {
		defer close(ch)
		for _, f := range fragments {
			if !emit(ctx, ch, Fragment{Text: f}) {
				return
			}
		}
		if resp.Err != nil {
			emit(ctx, ch, Fragment{Err: resp.Err})
			return
		}
		emit(ctx, ch, Fragment{Done: true})
	}()

	return ch, nil
}

// ModelID returns "mock".
func (m *MockProvider) ModelID() string {
	return "mock"
}

// AddResponse appends a canned response to the queue.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

// CallCount returns the number of Generate and GenerateStream calls made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

func (m *MockProvider) next(req Request) (MockResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if len(m.responses) == 0 {
		return MockResponse{}, &ErrProviderUnavailable{Err: nil}
	}

	resp := m.responses[0]
	m.responses = m.responses[1:]
	return resp, nil
}
