package analysis

import "sync"

// DefaultHistorySize is the number of analyses kept when no size is given.
const DefaultHistorySize = 5

// History is a bounded, concurrency-safe record of recent analyses.
type History struct {
	mu    sync.RWMutex
	size  int
	items []*Analysis // oldest first
}

// NewHistory returns a history keeping the most recent size analyses.
func NewHistory(size int) *History {
	if size <= 0 {
		size = DefaultHistorySize
	}
	return &History{size: size}
}

// Add records a, evicting the oldest entry when full.
func (h *History) Add(a *Analysis) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.items = append(h.items, a)
	if over := len(h.items) - h.size; over > 0 {
		h.items = append([]*Analysis(nil), h.items[over:]...)
	}
}

// Latest returns the most recent analysis.
func (h *History) Latest() (*Analysis, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if len(h.items) == 0 {
		return nil, false
	}
	return h.items[len(h.items)-1], true
}

// List returns the recorded analyses, newest first.
func (h *History) List() []*Analysis {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]*Analysis, 0, len(h.items))
	for i := len(h.items) - 1; i >= 0; i-- {
		out = append(out, h.items[i])
	}
	return out
}

// Get finds an analysis by ID.
func (h *History) Get(id string) (*Analysis, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, a := range h.items {
		if a.ID == id {
			return a, true
		}
	}
	return nil, false
}
