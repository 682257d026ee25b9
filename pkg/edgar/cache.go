package edgar

import (
	"sync"

	"go.uber.org/zap"
)

// DirectoryCache holds a previously fetched ticker directory so repeated
// searches in one process skip the directory download.
type DirectoryCache interface {
	// Lookup returns the cached directory, if populated.
	Lookup() (Directory, bool)

	// Populate stores a freshly fetched directory.
	Populate(dir Directory)
}

// MemoryCache is an in-process DirectoryCache. It holds at most one
// directory and never expires it; the process is short-lived.
type MemoryCache struct {
	mu  sync.RWMutex
	dir Directory
	ok  bool
}

// NewMemoryCache creates an empty in-memory directory cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{}
}

func (m *MemoryCache) Lookup() (Directory, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.ok {
		return nil, false
	}
	zap.L().Debug("directory cache hit", zap.Int("entries", len(m.dir)))
	return m.dir, true
}

func (m *MemoryCache) Populate(dir Directory) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dir = dir
	m.ok = true
}
