package setting

import (
	"maps"
	"sync"
)

// Memory is an in-process Repository for tests and for running before the
// settings table exists.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
	fault  error
}

// NewMemory returns a Memory holding a copy of defaults.
func NewMemory(defaults map[string]string) *Memory {
	values := make(map[string]string, len(defaults))
	maps.Copy(values, defaults)

	return &Memory{values: values}
}

// Fail makes every following call return err as a storage fault. A nil err heals the store.
func (m *Memory) Fail(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.fault = err
}

// Get implements Repository.
func (m *Memory) Get(name string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.fault != nil {
		return "", unavailable(m.fault)
	}

	if name == "" {
		return "", ErrSettingNameEmpty
	}

	v, ok := m.values[name]
	if !ok {
		return "", ErrSettingNotFound
	}

	return v, nil
}

// Set implements Repository.
func (m *Memory) Set(name string, value any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.fault != nil {
		return unavailable(m.fault)
	}

	if name == "" {
		return ErrSettingNameEmpty
	}

	m.values[name] = Stringify(value)

	return nil
}

// All implements Repository.
func (m *Memory) All() (map[string]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.fault != nil {
		return nil, unavailable(m.fault)
	}

	return maps.Clone(m.values), nil
}
