package animation

import (
	"time"

	"frame-sequencer/internal/sequence"
)

// AnimationID uniquely identifies a registered animation.
type AnimationID string

// Animation is a registered frame sequence.
type Animation struct {
	ID         AnimationID         `json:"id"`
	FramePath  string              `json:"frame_path"`
	Descriptor sequence.Descriptor `json:"descriptor"`

	// Metadata managed by the registry.
	CreatedAt time.Time `json:"created_at"`
}

// RegisterRequest is the input JSON payload for registering an animation.
// An empty ID asks the service to generate one.
type RegisterRequest struct {
	ID         AnimationID `json:"id"`
	FramePath  string      `json:"frame_path"`
	FrameCount int         `json:"frame_count"`
}
