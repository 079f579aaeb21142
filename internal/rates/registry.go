package rates

import "sync"

var (
	defaultTable = Default()
	cache        sync.Map
)

// Resolve returns the table stored at path, loading and validating it once
// per process. An empty path yields the built-in default table.
// Callers must treat the returned table as read-only.
func Resolve(path string) (*Table, error) {
	if path == "" {
		return defaultTable, nil
	}
	if t, ok := cache.Load(path); ok {
		return t.(*Table), nil
	}

	t, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	actual, _ := cache.LoadOrStore(path, t)
	return actual.(*Table), nil
}
