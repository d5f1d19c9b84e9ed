package sequence

import (
	"fmt"
	"strings"
)

// Descriptor is the parsed naming pattern of a frame sequence.
//
// Suffix still contains the extension text: it is everything after the digit
// run, so Prefix + padded number + Suffix rebuilds a file name on its own.
// Extension is reported separately for diagnostics.
type Descriptor struct {
	BasePath      string `json:"base_path"`
	Prefix        string `json:"prefix"`
	SequenceStart int    `json:"sequence_start"`
	PadWidth      int    `json:"pad_width"`
	Suffix        string `json:"suffix"`
	Extension     string `json:"extension"`
	FrameCount    int    `json:"frame_count"`
}

// FileName returns the file name of frame i, counted from the first frame,
// without the base path. i is not range checked.
func (d Descriptor) FileName(i int) string {
	return d.Prefix + fmt.Sprintf("%0*d", d.PadWidth, d.SequenceStart+i) + d.Suffix
}

// FrameName returns the full path of frame i. i is not range checked.
func (d Descriptor) FrameName(i int) string {
	return d.BasePath + d.FileName(i)
}

// Frame returns the full path of frame i, or ErrFrameOutOfRange.
func (d Descriptor) Frame(i int) (string, error) {
	if i < 0 || i >= d.FrameCount {
		return "", fmt.Errorf("%w: %d not in [0, %d)", ErrFrameOutOfRange, i, d.FrameCount)
	}
	return d.FrameName(i), nil
}

// FrameNames returns the full paths of all frames in order.
func (d Descriptor) FrameNames() []string {
	if d.FrameCount <= 0 {
		return nil
	}
	names := make([]string, d.FrameCount)
	for i := range names {
		names[i] = d.FrameName(i)
	}
	return names
}

// Pattern returns a printf-style pattern such as "assets/frame_%03d.jpg".
func (d Descriptor) Pattern() string {
	esc := strings.NewReplacer("%", "%%")
	return esc.Replace(d.BasePath+d.Prefix) + fmt.Sprintf("%%0%dd", d.PadWidth) + esc.Replace(d.Suffix)
}
