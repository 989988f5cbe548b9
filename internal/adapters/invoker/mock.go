package invoker

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// Call records a single invocation made through MockInvoker
type Call struct {
	FunctionName string
	Payload      []byte
}

type mockReply struct {
	payload []byte
	err     error
}

// MockInvoker is an in-memory implementation of Invoker for testing and
// local development. Functions without a scripted reply echo their input.
type MockInvoker struct {
	mu      sync.RWMutex
	calls   []Call
	replies map[string]mockReply
}

// NewMockInvoker creates a new MockInvoker instance
func NewMockInvoker() *MockInvoker {
	return &MockInvoker{
		replies: make(map[string]mockReply),
	}
}

// SetResponse scripts the reply payload for a function
func (m *MockInvoker) SetResponse(functionName string, payload []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.replies[functionName] = mockReply{payload: payload}
}

// SetError scripts an invocation failure for a function
func (m *MockInvoker) SetError(functionName string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.replies[functionName] = mockReply{err: err}
}

// Invoke implements Invoker.Invoke
func (m *MockInvoker) Invoke(ctx context.Context, functionName string, payload []byte) ([]byte, error) {
	if functionName == "" {
		return nil, NewInvocationError("Invoke", "", ErrInvalidFunction)
	}

	select {
	case <-ctx.Done():
		return nil, NewInvocationError("Invoke", functionName, ctx.Err())
	default:
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	recorded := make([]byte, len(payload))
	copy(recorded, payload)
	m.calls = append(m.calls, Call{FunctionName: functionName, Payload: recorded})

	reply, ok := m.replies[functionName]
	if !ok {
		return echoReply(functionName, payload)
	}
	if reply.err != nil {
		return nil, reply.err
	}
	return reply.payload, nil
}

// Calls returns every recorded invocation in order
func (m *MockInvoker) Calls() []Call {
	m.mu.RLock()
	defer m.mu.RUnlock()

	calls := make([]Call, len(m.calls))
	copy(calls, m.calls)
	return calls
}

// LastCall returns the most recent invocation
func (m *MockInvoker) LastCall() (Call, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(m.calls) == 0 {
		return Call{}, false
	}
	return m.calls[len(m.calls)-1], true
}

// Reset clears recorded calls and scripted replies
func (m *MockInvoker) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = nil
	m.replies = make(map[string]mockReply)
}

func echoReply(functionName string, payload []byte) ([]byte, error) {
	var input interface{}
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &input); err != nil {
			return nil, NewInvocationError("Invoke", functionName, fmt.Errorf("invalid payload: %w", err))
		}
	}

	return json.Marshal(map[string]interface{}{
		"function": functionName,
		"payload":  input,
	})
}
