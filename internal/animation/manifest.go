package animation

import (
	"fmt"
	"strings"

	"frame-sequencer/internal/sequence"
)

// BuildManifest renders a plain-text frame manifest: a #FRAMESEQ header block
// describing the pattern, one frame path per line, then #END.
func BuildManifest(d sequence.Descriptor) string {
	var b strings.Builder

	b.WriteString("#FRAMESEQ\n")
	b.WriteString(fmt.Sprintf("#BASE-PATH:%s\n", d.BasePath))
	b.WriteString(fmt.Sprintf("#PATTERN:%s\n", d.Pattern()))
	b.WriteString(fmt.Sprintf("#PAD-WIDTH:%d\n", d.PadWidth))
	b.WriteString(fmt.Sprintf("#SEQUENCE-START:%d\n", d.SequenceStart))
	b.WriteString(fmt.Sprintf("#FRAME-COUNT:%d\n\n", d.FrameCount))

	for _, name := range d.FrameNames() {
		b.WriteString(name)
		b.WriteString("\n")
	}

	b.WriteString("#END\n")
	return b.String()
}
