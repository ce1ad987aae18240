package engine

import "sync"

// Manager holds the live engine instance and swaps it out wholesale on
// reset. Handlers fetch the current engine per request, so a reset never
// mutates state an in-flight operation is reading.
type Manager struct {
	mu     sync.RWMutex
	engine *Engine
}

// NewManager starts managing the given engine.
func NewManager(e *Engine) *Manager {
	return &Manager{engine: e}
}

// Current returns the live engine.
func (m *Manager) Current() *Engine {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.engine
}

// Reset replaces the live engine with a freshly seeded one and returns it.
func (m *Manager) Reset() (*Engine, error) {
	fresh, err := NewSeeded()
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	m.engine = fresh
	m.mu.Unlock()
	return fresh, nil
}
