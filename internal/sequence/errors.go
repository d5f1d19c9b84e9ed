package sequence

import "errors"

var (
	// ErrMissingField is returned when the frame path or frame count is not set.
	ErrMissingField = errors.New("missing field")

	// ErrUnsupportedExtension is returned when the example frame is not a jpg, jpeg or png.
	ErrUnsupportedExtension = errors.New("unsupported extension")

	// ErrBadSequenceFormat is returned when the file name has no digit run of
	// at least two characters.
	ErrBadSequenceFormat = errors.New("bad image sequence format")

	// ErrInsufficientPadding is returned when the frame count needs more digits
	// than the example's digit run provides.
	ErrInsufficientPadding = errors.New("insufficient padding")

	// ErrFrameOutOfRange is returned by Descriptor.Frame for an index outside [0, FrameCount).
	ErrFrameOutOfRange = errors.New("frame index out of range")
)

// Kind returns a stable, machine-readable name for an error produced by this
// package, or "" when err is nil or foreign.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingField):
		return "missing_field"
	case errors.Is(err, ErrUnsupportedExtension):
		return "unsupported_extension"
	case errors.Is(err, ErrBadSequenceFormat):
		return "bad_sequence_format"
	case errors.Is(err, ErrInsufficientPadding):
		return "insufficient_padding"
	case errors.Is(err, ErrFrameOutOfRange):
		return "frame_out_of_range"
	default:
		return ""
	}
}
