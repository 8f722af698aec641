package cozyui

import "sync"

// Cleanable is implemented by stores that need frame-based cleanup.
// Each frame, stale entries (not accessed this frame) are removed.
type Cleanable interface {
	Cleanup(currentFrame uint64) int
}

// Global registry for automatic cleanup of all FrameStores.
var (
	registeredStores []Cleanable
	registryMu       sync.Mutex
	currentFrame     uint64
)

func registerStore(store Cleanable) {
	registryMu.Lock()
	registeredStores = append(registeredStores, store)
	registryMu.Unlock()
}

// NextFrame advances the frame counter and cleans all registered stores.
// Context.Reset calls it once per frame.
func NextFrame() {
	currentFrame++
	registryMu.Lock()
	stores := registeredStores
	registryMu.Unlock()

	removed := 0
	for _, store := range stores {
		removed += store.Cleanup(currentFrame)
	}
	if removed > 0 {
		guiLogger.Debug("frame store cleanup", "frame", currentFrame, "removed", removed)
	}
}

// CurrentFrameCount returns the current frame counter.
func CurrentFrameCount() uint64 {
	return currentFrame
}

type stateEntry[T any] struct {
	value     T
	lastFrame uint64
}

// FrameStore is a type-safe store for per-widget state that forgets entries
// whose widget was not drawn in the previous frame. Animation timers, slider
// gestures and collapsing headers keep their state here.
//
// Create one store per state type at package level:
//
//	var knobStore = cozyui.NewFrameStore[knobState]()
type FrameStore[T any] struct {
	states map[ID]*stateEntry[T]
	mu     sync.RWMutex
}

// NewFrameStore creates a store and registers it for automatic cleanup.
func NewFrameStore[T any]() *FrameStore[T] {
	store := &FrameStore[T]{
		states: make(map[ID]*stateEntry[T]),
	}
	registerStore(store)
	return store
}

// Get retrieves state for the given ID, or creates it with defaultVal if not
// found. The returned pointer stays valid until the entry is cleaned up.
// The entry is marked as used this frame.
func (s *FrameStore[T]) Get(id ID, defaultVal T) *T {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.states[id]; ok {
		entry.lastFrame = currentFrame
		return &entry.value
	}

	entry := &stateEntry[T]{
		value:     defaultVal,
		lastFrame: currentFrame,
	}
	s.states[id] = entry
	return &entry.value
}

// GetIfExists retrieves state only if it already exists.
// It does not mark the entry as used.
func (s *FrameStore[T]) GetIfExists(id ID) *T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if entry, ok := s.states[id]; ok {
		return &entry.value
	}
	return nil
}

// Set creates or replaces the state for id and marks it as used.
func (s *FrameStore[T]) Set(id ID, value T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.states[id]; ok {
		entry.value = value
		entry.lastFrame = currentFrame
		return
	}
	s.states[id] = &stateEntry[T]{value: value, lastFrame: currentFrame}
}

// Delete removes the state for id.
func (s *FrameStore[T]) Delete(id ID) {
	s.mu.Lock()
	delete(s.states, id)
	s.mu.Unlock()
}

// Cleanup removes entries not accessed in the previous frame and returns how
// many were removed. NextFrame calls it.
func (s *FrameStore[T]) Cleanup(frame uint64) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	// frame-1 because NextFrame has already advanced the counter.
	threshold := frame - 1
	removed := 0
	for id, entry := range s.states {
		if entry.lastFrame < threshold {
			delete(s.states, id)
			removed++
		}
	}
	return removed
}

// Len returns the number of stored entries.
func (s *FrameStore[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.states)
}

// Clear removes all entries immediately.
func (s *FrameStore[T]) Clear() {
	s.mu.Lock()
	s.states = make(map[ID]*stateEntry[T])
	s.mu.Unlock()
}
