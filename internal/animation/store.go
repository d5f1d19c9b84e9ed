package animation

// Store is the persistence abstraction for registered animations.
// Implementations can be in-memory or SQLite-backed.
// The Repository uses Store for all reads and writes and serialises access to
// it; a Store need not be safe for concurrent use on its own.
type Store interface {
	Get(id AnimationID) (Animation, bool, error)
	Put(a Animation) error
	Delete(id AnimationID) (bool, error)
	List() ([]AnimationID, error)
}

// InMemoryStore is an in-memory implementation of Store.
type InMemoryStore struct {
	animations map[AnimationID]Animation
}

// NewInMemoryStore returns a new empty in-memory store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		animations: make(map[AnimationID]Animation),
	}
}

// Get implements Store.Get.
func (s *InMemoryStore) Get(id AnimationID) (Animation, bool, error) {
	a, ok := s.animations[id]
	return a, ok, nil
}

// Put implements Store.Put. An existing animation with the same ID is replaced.
func (s *InMemoryStore) Put(a Animation) error {
	s.animations[a.ID] = a
	return nil
}

// Delete implements Store.Delete.
func (s *InMemoryStore) Delete(id AnimationID) (bool, error) {
	if _, ok := s.animations[id]; !ok {
		return false, nil
	}
	delete(s.animations, id)
	return true, nil
}

// List implements Store.List.
func (s *InMemoryStore) List() ([]AnimationID, error) {
	ids := make([]AnimationID, 0, len(s.animations))
	for id := range s.animations {
		ids = append(ids, id)
	}
	return ids, nil
}
