package scoring

import (
	"context"
	"sync"

	"github.com/offerscope/offerscope/internal/model"
)

// MockAnalyst implements Analyst for testing. It records calls and returns
// a configurable response or error.
type MockAnalyst struct {
	Err      error
	Response string
	Delay    func(ctx context.Context) error
	calls    int
	mu       sync.Mutex
}

// GenerateAnalysis returns the configured response or error.
func (m *MockAnalyst) GenerateAnalysis(ctx context.Context, _ model.Product, _ model.FactorScores) (string, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()

	if m.Delay != nil {
		if err := m.Delay(ctx); err != nil {
			return "", err
		}
	}

	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}

// Calls returns how many times GenerateAnalysis was invoked.
func (m *MockAnalyst) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}
