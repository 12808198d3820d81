package ui

import "sync"

// Cleanable is implemented by stores that need frame-based cleanup.
// Each frame, stale entries (not accessed this frame) are removed.
type Cleanable interface {
	Cleanup(currentFrame uint64)
}

// Global registry for automatic cleanup of all FrameStores.
// Uses a mutex for thread-safety during registration.
var (
	registeredStores []Cleanable
	registryMu       sync.Mutex
	currentFrame     uint64
)

// registerStore adds a store to the global cleanup registry.
// Called automatically by NewFrameStore.
func registerStore(store Cleanable) {
	registryMu.Lock()
	registeredStores = append(registeredStores, store)
	registryMu.Unlock()
}

// NextFrame advances the frame counter and cleans all registered stores.
// Call this once at the start of each UI frame (typically in Context.Reset).
// Stale entries (not accessed in the previous frame) are removed automatically.
func NextFrame() {
	currentFrame++
	registryMu.Lock()
	stores := registeredStores
	registryMu.Unlock()

	for _, store := range stores {
		store.Cleanup(currentFrame)
	}
}

// CurrentFrameCount returns the current frame counter.
func CurrentFrameCount() uint64 {
	return currentFrame
}

// stateEntry wraps a state value with frame tracking for staleness detection.
type stateEntry[T any] struct {
	value     T
	lastFrame uint64
}

// FrameStore is a type-safe store for retained widget state that
// automatically cleans up unused entries each frame. A spawner that
// stops drawing (unmounts) loses its entry on the next frame, which is
// how per-spawner menu state gets its "destroyed when the spawner
// unmounts" lifecycle in an immediate-mode world.
//
// Usage:
//
//	// At package level - one store per state type
//	var dropdownStore = ui.NewFrameStore[DropdownState](nil)
//
//	// In widget code
//	state := dropdownStore.Get(id, DropdownState{})
type FrameStore[T any] struct {
	states map[ID]*stateEntry[T]
	mu     sync.RWMutex

	// evict runs on entries removed by Cleanup. Stores holding state
	// with external resources (dismissal listeners, open overlays) use
	// it to tear those down when the owning spawner unmounts; leaking
	// a listener past its overlay's lifetime is a correctness bug.
	evict func(*T)
}

// NewFrameStore creates a type-safe state store and registers it for
// automatic cleanup. evict, if non-nil, is invoked for every entry the
// cleanup pass removes, before the entry is dropped.
//
// Call this at package initialization time (package-level var).
func NewFrameStore[T any](evict func(*T)) *FrameStore[T] {
	store := &FrameStore[T]{
		states: make(map[ID]*stateEntry[T]),
		evict:  evict,
	}
	registerStore(store)
	return store
}

// Get retrieves state for the given ID, or creates it with defaultVal if
// not found. Returns a pointer to the state, allowing direct modification.
// The state is marked as "used this frame" to prevent cleanup.
func (s *FrameStore[T]) Get(id ID, defaultVal T) *T {
	s.mu.RLock()
	entry, ok := s.states[id]
	s.mu.RUnlock()

	if ok {
		s.mu.Lock()
		entry.lastFrame = currentFrame
		s.mu.Unlock()
		return &entry.value
	}

	s.mu.Lock()
	// Double-check after acquiring the write lock
	if entry, ok = s.states[id]; ok {
		entry.lastFrame = currentFrame
		s.mu.Unlock()
		return &entry.value
	}

	entry = &stateEntry[T]{
		value:     defaultVal,
		lastFrame: currentFrame,
	}
	s.states[id] = entry
	s.mu.Unlock()
	return &entry.value
}

// GetIfExists retrieves state only if it already exists.
// Returns nil if no state exists for this ID.
// Does NOT create default state or mark it as used.
func (s *FrameStore[T]) GetIfExists(id ID) *T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if entry, ok := s.states[id]; ok {
		return &entry.value
	}
	return nil
}

// Set explicitly sets state for an ID.
func (s *FrameStore[T]) Set(id ID, value T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.states[id]; ok {
		entry.value = value
		entry.lastFrame = currentFrame
	} else {
		s.states[id] = &stateEntry[T]{
			value:     value,
			lastFrame: currentFrame,
		}
	}
}

// Delete explicitly removes state for an ID without running the evict
// hook. Use this when the caller already tore the state down.
func (s *FrameStore[T]) Delete(id ID) {
	s.mu.Lock()
	delete(s.states, id)
	s.mu.Unlock()
}

// Cleanup removes all entries that weren't accessed in the previous frame.
// Called automatically by NextFrame() - don't call it manually.
func (s *FrameStore[T]) Cleanup(frame uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// frame-1 because NextFrame just incremented
	threshold := frame - 1
	for id, entry := range s.states {
		if entry.lastFrame < threshold {
			if s.evict != nil {
				s.evict(&entry.value)
			}
			delete(s.states, id)
		}
	}
}

// Len returns the number of stored entries.
func (s *FrameStore[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.states)
}

// Clear removes all entries immediately, running the evict hook on each.
func (s *FrameStore[T]) Clear() {
	s.mu.Lock()
	if s.evict != nil {
		for _, entry := range s.states {
			s.evict(&entry.value)
		}
	}
	s.states = make(map[ID]*stateEntry[T])
	s.mu.Unlock()
}
