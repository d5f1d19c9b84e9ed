// Package sequence infers a numbered image-frame naming pattern from the path
// of the first frame of a sprite-style animation.
//
// The digit run that numbers a frame is always the LAST run of ASCII digits in
// the file name and must be at least two characters wide. Names carrying a
// second, later digit run (e.g. "frame_01_v2.png") are numbered by that later
// run; no attempt is made to guess intent.
package sequence

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var digitRunRE = regexp.MustCompile(`[0-9]+`)

// supportedExtensions lists accepted extensions, matched case-sensitively.
var supportedExtensions = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
}

// Parse builds a Descriptor from the path of the first frame and the total
// number of frames. A zero Descriptor is returned with any error.
func Parse(framePath string, frameCount int) (Descriptor, error) {
	if framePath == "" {
		return Descriptor{}, fmt.Errorf("%w: frame path is not defined", ErrMissingField)
	}
	if frameCount <= 0 {
		return Descriptor{}, fmt.Errorf("%w: frame count is not defined", ErrMissingField)
	}

	basePath, name := splitPath(framePath)

	ext, err := imageExtension(name)
	if err != nil {
		return Descriptor{}, err
	}

	start, end, err := sequenceRun(name)
	if err != nil {
		return Descriptor{}, err
	}
	digits := name[start:end]

	if len(strconv.Itoa(frameCount)) > len(digits) {
		return Descriptor{}, fmt.Errorf(
			"%w: frame count %d needs more than the %d digits of %q; add leading zeros to the first frame",
			ErrInsufficientPadding, frameCount, len(digits), digits)
	}

	value, err := strconv.Atoi(digits)
	if err != nil {
		return Descriptor{}, fmt.Errorf("%w: sequence %q: %v", ErrBadSequenceFormat, digits, err)
	}
	if value > math.MaxInt-(frameCount-1) {
		return Descriptor{}, fmt.Errorf("%w: last frame number %q + %d overflows", ErrBadSequenceFormat, digits, frameCount-1)
	}

	return Descriptor{
		BasePath:      basePath,
		Prefix:        name[:start],
		SequenceStart: value,
		PadWidth:      len(digits),
		Suffix:        name[end:],
		Extension:     ext,
		FrameCount:    frameCount,
	}, nil
}

// splitPath pops the last "/" segment off p. The remaining segments joined by
// "/" with a trailing "/" form the base path, so a bare file name yields "/".
func splitPath(p string) (basePath, name string) {
	i := strings.LastIndex(p, "/")
	if i < 0 {
		return "/", p
	}
	return p[:i+1], p[i+1:]
}

func imageExtension(name string) (string, error) {
	ext := name
	if i := strings.LastIndex(name, "."); i >= 0 {
		ext = name[i+1:]
	}
	if !supportedExtensions[ext] {
		return "", fmt.Errorf("%w: image with extension [%q] is not supported", ErrUnsupportedExtension, ext)
	}
	return "." + ext, nil
}

// sequenceRun returns the byte offsets of the last maximal digit run in name.
func sequenceRun(name string) (start, end int, err error) {
	runs := digitRunRE.FindAllStringIndex(name, -1)
	if len(runs) == 0 {
		return 0, 0, fmt.Errorf("%w: no frame number in %q, expected e.g. \"frame_01.jpg\"", ErrBadSequenceFormat, name)
	}
	last := runs[len(runs)-1]
	if last[1]-last[0] < 2 {
		return 0, 0, fmt.Errorf("%w: frame number %q in %q must be at least 2 digits, e.g. \"frame_01.jpg\"",
			ErrBadSequenceFormat, name[last[0]:last[1]], name)
	}
	return last[0], last[1], nil
}
