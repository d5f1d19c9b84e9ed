package animation

import (
	"errors"
	"fmt"
	"time"

	"frame-sequencer/internal/sequence"

	"github.com/google/uuid"
)

// IDGenerator produces identifiers for animations registered without one.
type IDGenerator func() string

// UUIDv7 returns an IDGenerator producing time-sortable RFC 9562 UUID v7 strings.
func UUIDv7() IDGenerator {
	return func() string {
		return uuid.Must(uuid.NewV7()).String()
	}
}

// DefaultMaxFrameCount is the largest frame count Register accepts unless
// overridden with WithMaxFrameCount.
const DefaultMaxFrameCount = 10_000

// ErrFrameCountTooLarge is returned when a registration asks for more frames
// than the service is configured to serve.
var ErrFrameCountTooLarge = errors.New("frame count too large")

// Service parses frame sequences and delegates storage to Repository.
type Service struct {
	repo          Repository
	newID         IDGenerator
	now           func() time.Time
	maxFrameCount int
}

// Option customises a Service.
type Option func(*Service)

// WithMaxFrameCount caps the frame count of registered animations.
// n <= 0 keeps DefaultMaxFrameCount.
func WithMaxFrameCount(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxFrameCount = n
		}
	}
}

// NewService returns a Service backed by repo. If newID is nil, UUIDv7 is used.
func NewService(repo Repository, newID IDGenerator, opts ...Option) *Service {
	if newID == nil {
		newID = UUIDv7()
	}
	s := &Service{repo: repo, newID: newID, now: time.Now, maxFrameCount: DefaultMaxFrameCount}
	for _, o := range opts {
		o(s)
	}
	return s
}

// MaxFrameCount returns the largest frame count Register accepts.
func (s *Service) MaxFrameCount() int {
	return s.maxFrameCount
}

// Parse validates a frame path and count without registering anything.
func (s *Service) Parse(framePath string, frameCount int) (sequence.Descriptor, error) {
	return sequence.Parse(framePath, frameCount)
}

// Register parses req and stores the resulting animation. Parse errors are
// returned wrapped, so errors.Is still matches the sequence sentinels.
// Counts above MaxFrameCount fail with ErrFrameCountTooLarge.
func (s *Service) Register(req RegisterRequest) (Animation, error) {
	d, err := sequence.Parse(req.FramePath, req.FrameCount)
	if err != nil {
		return Animation{}, fmt.Errorf("register animation: %w", err)
	}
	if d.FrameCount > s.maxFrameCount {
		return Animation{}, fmt.Errorf("register animation: %w: %d frames, limit is %d",
			ErrFrameCountTooLarge, d.FrameCount, s.maxFrameCount)
	}

	id := req.ID
	if id == "" {
		id = AnimationID(s.newID())
	}

	a := Animation{
		ID:         id,
		FramePath:  req.FramePath,
		Descriptor: d,
		CreatedAt:  s.now().UTC(),
	}
	if err := s.repo.Create(a); err != nil {
		return Animation{}, err
	}
	return a, nil
}

// Get returns the animation with the given ID or ErrAnimationNotFound.
func (s *Service) Get(id AnimationID) (Animation, error) {
	a, ok, err := s.repo.Get(id)
	if err != nil {
		return Animation{}, err
	}
	if !ok {
		return Animation{}, ErrAnimationNotFound
	}
	return a, nil
}

// Frames returns the full path of every frame of the animation, in order.
func (s *Service) Frames(id AnimationID) ([]string, error) {
	a, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	return a.Descriptor.FrameNames(), nil
}

// Frame returns the full path of frame index (0-based) of the animation.
func (s *Service) Frame(id AnimationID, index int) (string, error) {
	a, err := s.Get(id)
	if err != nil {
		return "", err
	}
	return a.Descriptor.Frame(index)
}

// Manifest returns the plain-text frame manifest of the animation.
func (s *Service) Manifest(id AnimationID) (string, error) {
	a, err := s.Get(id)
	if err != nil {
		return "", err
	}
	return BuildManifest(a.Descriptor), nil
}

// Delete removes the animation.
func (s *Service) Delete(id AnimationID) error {
	return s.repo.Delete(id)
}

// Count returns the number of registered animations.
func (s *Service) Count() (int, error) {
	return s.repo.Count()
}

// Preload registers reqs in order and returns how many were added. Requests
// whose ID is already registered are skipped, so a persistent store can be
// preloaded on every start. The first other error aborts the preload.
func (s *Service) Preload(reqs []RegisterRequest) (int, error) {
	n := 0
	for _, req := range reqs {
		_, err := s.Register(req)
		switch {
		case err == nil:
			n++
		case errors.Is(err, ErrAnimationExists):
		default:
			return n, fmt.Errorf("preload %s: %w", req.ID, err)
		}
	}
	return n, nil
}
