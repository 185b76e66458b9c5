package engine

import (
	"time"
)

// MockTimeProvider drives the selector debounce deterministically
type MockTimeProvider struct {
	now time.Time
}

func NewMockTimeProvider() *MockTimeProvider {
	return &MockTimeProvider{now: time.Unix(1000, 0)}
}

func (p *MockTimeProvider) Now() time.Time {
	return p.now
}

func (p *MockTimeProvider) Advance(d time.Duration) {
	p.now = p.now.Add(d)
}
