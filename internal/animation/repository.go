package animation

import (
	"errors"
	"sync"
)

// Repository defines the concurrency-safe contract for accessing and mutating
// registered animations.
type Repository interface {
	// Create stores a new animation. If an animation with the same ID already
	// exists, ErrAnimationExists is returned and the stored one is untouched.
	Create(a Animation) error

	// Get returns the animation with the given ID. The ok return is false if
	// no such animation exists.
	Get(id AnimationID) (a Animation, ok bool, err error)

	// Delete removes an animation. Deleting an unknown ID returns
	// ErrAnimationNotFound.
	Delete(id AnimationID) error

	// Count returns the number of registered animations.
	// Used for metrics.
	Count() (int, error)
}

var (
	// ErrAnimationExists is returned when registering an ID that is already taken.
	ErrAnimationExists = errors.New("animation already exists")

	// ErrAnimationNotFound is returned when an animation ID is not registered.
	ErrAnimationNotFound = errors.New("animation not found")
)

// StoreRepository is a concurrency-safe implementation of Repository.
// It uses a Store for persistence; by default that is an InMemoryStore.
type StoreRepository struct {
	mu    sync.RWMutex
	store Store
}

// NewInMemoryRepository constructs a new repository with a default in-memory store.
func NewInMemoryRepository() *StoreRepository {
	return NewRepositoryWithStore(NewInMemoryStore())
}

// NewRepositoryWithStore constructs a repository that uses the given Store.
func NewRepositoryWithStore(store Store) *StoreRepository {
	return &StoreRepository{store: store}
}

// Create implements Repository.Create.
func (r *StoreRepository) Create(a Animation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, exists, err := r.store.Get(a.ID)
	if err != nil {
		return err
	}
	if exists {
		return ErrAnimationExists
	}
	return r.store.Put(a)
}

// Get implements Repository.Get.
func (r *StoreRepository) Get(id AnimationID) (Animation, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.store.Get(id)
}

// Delete implements Repository.Delete.
func (r *StoreRepository) Delete(id AnimationID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	deleted, err := r.store.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrAnimationNotFound
	}
	return nil
}

// Count implements Repository.Count.
func (r *StoreRepository) Count() (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids, err := r.store.List()
	if err != nil {
		return 0, err
	}
	return len(ids), nil
}
