package animation

import (
	"errors"
	"fmt"
	"sync"
	"testing"
)

func TestStoreRepository_Create(t *testing.T) {
	repo := NewInMemoryRepository()
	a := testAnimation(t, "a1", "assets/frame_001.jpg", 10)

	t.Run("success", func(t *testing.T) {
		if err := repo.Create(a); err != nil {
			t.Fatalf("Create: %v", err)
		}
		got, ok, err := repo.Get("a1")
		if err != nil || !ok {
			t.Fatalf("Get: ok=%v err=%v", ok, err)
		}
		if got.Descriptor != a.Descriptor {
			t.Errorf("Get: got %+v", got)
		}
	})

	t.Run("duplicate_rejected", func(t *testing.T) {
		other := testAnimation(t, "a1", "other/run_01.png", 2)
		if err := repo.Create(other); !errors.Is(err, ErrAnimationExists) {
			t.Fatalf("expected ErrAnimationExists, got %v", err)
		}
		got, _, _ := repo.Get("a1")
		if got.FramePath != a.FramePath {
			t.Errorf("duplicate create should not replace, got %q", got.FramePath)
		}
	})
}

func TestStoreRepository_Delete(t *testing.T) {
	repo := NewInMemoryRepository()
	_ = repo.Create(testAnimation(t, "a1", "assets/frame_001.jpg", 10))

	if err := repo.Delete("a1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := repo.Get("a1"); ok {
		t.Error("animation should be gone after Delete")
	}
	if err := repo.Delete("a1"); !errors.Is(err, ErrAnimationNotFound) {
		t.Errorf("second Delete: expected ErrAnimationNotFound, got %v", err)
	}
}

func TestStoreRepository_Count(t *testing.T) {
	repo := NewInMemoryRepository()
	if n, _ := repo.Count(); n != 0 {
		t.Errorf("expected 0, got %d", n)
	}
	_ = repo.Create(testAnimation(t, "a", "a/f_01.png", 2))
	_ = repo.Create(testAnimation(t, "b", "b/f_01.png", 2))
	if n, _ := repo.Count(); n != 2 {
		t.Errorf("expected 2, got %d", n)
	}
}

func TestStoreRepository_concurrent_create(t *testing.T) {
	repo := NewInMemoryRepository()
	shared := testAnimation(t, "shared", "assets/frame_001.jpg", 10)
	own := make([]Animation, 20)
	for i := range own {
		own[i] = testAnimation(t, AnimationID(fmt.Sprintf("own-%d", i)), "a/f_01.png", 2)
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	created := 0
	for i := range own {
		wg.Add(1)
		go func(a Animation) {
			defer wg.Done()
			if err := repo.Create(shared); err == nil {
				mu.Lock()
				created++
				mu.Unlock()
			}
			_ = repo.Create(a)
		}(own[i])
	}
	wg.Wait()

	if created != 1 {
		t.Errorf("expected exactly one successful create of shared id, got %d", created)
	}
	if n, _ := repo.Count(); n != 21 {
		t.Errorf("expected 21 animations, got %d", n)
	}
}

func TestNewRepositoryWithStore(t *testing.T) {
	store := NewInMemoryStore()
	repo := NewRepositoryWithStore(store)

	if err := repo.Create(testAnimation(t, "a1", "assets/frame_001.jpg", 10)); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, ok, _ := store.Get("a1"); !ok {
		t.Error("injected store should contain animation after Create")
	}
}
