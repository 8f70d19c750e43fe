package store

// Memory is an in-process Store for tests. SetErr, when non-nil, is
// returned by every Set without touching the data - handy for checking
// that a failed write leaves the previous state observable.
type Memory struct {
	data   map[string]string
	SetErr error
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, bool) {
	v, ok := m.data[key]
	return v, ok
}

func (m *Memory) Set(key, value string) error {
	if m.SetErr != nil {
		return m.SetErr
	}
	m.data[key] = value
	return nil
}

func (m *Memory) Delete(key string) error {
	delete(m.data, key)
	return nil
}
