package sequence

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name       string
		framePath  string
		frameCount int
		want       Descriptor
	}{
		{
			name: "directory and padded sequence", framePath: "assets/frame_001.jpg", frameCount: 10,
			want: Descriptor{BasePath: "assets/", Prefix: "frame_", SequenceStart: 1, PadWidth: 3, Suffix: ".jpg", Extension: ".jpg", FrameCount: 10},
		},
		{
			name: "pad width from digit run not value", framePath: "frame_007.jpg", frameCount: 5,
			want: Descriptor{BasePath: "/", Prefix: "frame_", SequenceStart: 7, PadWidth: 3, Suffix: ".jpg", Extension: ".jpg", FrameCount: 5},
		},
		{
			name: "last digit run wins", framePath: "img/v2_frame_010.png", frameCount: 3,
			want: Descriptor{BasePath: "img/", Prefix: "v2_frame_", SequenceStart: 10, PadWidth: 3, Suffix: ".png", Extension: ".png", FrameCount: 3},
		},
		{
			name: "suffix keeps text after run", framePath: "a/b/c/walk-0042-hd.jpeg", frameCount: 120,
			want: Descriptor{BasePath: "a/b/c/", Prefix: "walk-", SequenceStart: 42, PadWidth: 4, Suffix: "-hd.jpeg", Extension: ".jpeg", FrameCount: 120},
		},
		{
			name: "absolute path", framePath: "/srv/sprites/00.png", frameCount: 9,
			want: Descriptor{BasePath: "/srv/sprites/", Prefix: "", SequenceStart: 0, PadWidth: 2, Suffix: ".png", Extension: ".png", FrameCount: 9},
		},
		{
			name: "url path", framePath: "https://cdn.example.com/anim/run_01.png", frameCount: 12,
			want: Descriptor{BasePath: "https://cdn.example.com/anim/", Prefix: "run_", SequenceStart: 1, PadWidth: 2, Suffix: ".png", Extension: ".png", FrameCount: 12},
		},
		{
			name: "count width equals pad width", framePath: "img/shot_05.jpg", frameCount: 99,
			want: Descriptor{BasePath: "img/", Prefix: "shot_", SequenceStart: 5, PadWidth: 2, Suffix: ".jpg", Extension: ".jpg", FrameCount: 99},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.framePath, tc.frameCount)
			if err != nil {
				t.Fatalf("Parse(%q, %d): %v", tc.framePath, tc.frameCount, err)
			}
			if got != tc.want {
				t.Errorf("Parse(%q, %d)\n got  %+v\n want %+v", tc.framePath, tc.frameCount, got, tc.want)
			}
		})
	}
}

func TestParse_errors(t *testing.T) {
	cases := []struct {
		name       string
		framePath  string
		frameCount int
		want       error
		wantInMsg  string
	}{
		{name: "empty path", framePath: "", frameCount: 4, want: ErrMissingField, wantInMsg: "frame path is not defined"},
		{name: "zero count", framePath: "a/frame_01.png", frameCount: 0, want: ErrMissingField, wantInMsg: "frame count is not defined"},
		{name: "negative count", framePath: "a/frame_01.png", frameCount: -3, want: ErrMissingField},
		{name: "single digit run", framePath: "frame1.png", frameCount: 5, want: ErrBadSequenceFormat},
		{name: "no digits", framePath: "img/frame.png", frameCount: 5, want: ErrBadSequenceFormat},
		{name: "last run too short", framePath: "img/frame_010_v2.png", frameCount: 5, want: ErrBadSequenceFormat, wantInMsg: `"2"`},
		{name: "gif", framePath: "img/shot_05.gif", frameCount: 3, want: ErrUnsupportedExtension, wantInMsg: "gif"},
		{name: "uppercase JPG", framePath: "img/shot_05.JPG", frameCount: 3, want: ErrUnsupportedExtension, wantInMsg: "JPG"},
		{name: "no extension", framePath: "img/shot_05", frameCount: 3, want: ErrUnsupportedExtension},
		{name: "trailing slash", framePath: "img/", frameCount: 3, want: ErrUnsupportedExtension},
		{name: "count wider than padding", framePath: "img/shot_05.jpg", frameCount: 200, want: ErrInsufficientPadding},
		{name: "count one digit too wide", framePath: "img/shot_05.jpg", frameCount: 100, want: ErrInsufficientPadding},
		{name: "extension checked before sequence", framePath: "img/shot1.gif", frameCount: 3, want: ErrUnsupportedExtension},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.framePath, tc.frameCount)
			if !errors.Is(err, tc.want) {
				t.Fatalf("Parse(%q, %d): expected %v, got %v", tc.framePath, tc.frameCount, tc.want, err)
			}
			if got != (Descriptor{}) {
				t.Errorf("expected zero descriptor on error, got %+v", got)
			}
			if tc.wantInMsg != "" && !strings.Contains(err.Error(), tc.wantInMsg) {
				t.Errorf("error %q should mention %q", err.Error(), tc.wantInMsg)
			}
		})
	}
}

func TestParse_deterministic(t *testing.T) {
	a, errA := Parse("assets/frame_001.jpg", 10)
	b, errB := Parse("assets/frame_001.jpg", 10)
	if errA != nil || errB != nil {
		t.Fatalf("Parse: %v, %v", errA, errB)
	}
	if a != b {
		t.Errorf("identical input gave different descriptors: %+v vs %+v", a, b)
	}
}

func TestParse_round_trip(t *testing.T) {
	paths := []string{
		"assets/frame_001.jpg",
		"frame_007.jpg",
		"img/v2_frame_010.png",
		"a/b/walk-0042-hd.jpeg",
		"00.png",
	}
	for _, p := range paths {
		d, err := Parse(p, 1)
		if err != nil {
			t.Fatalf("Parse(%q): %v", p, err)
		}
		name := p[strings.LastIndex(p, "/")+1:]
		if got := d.FileName(0); got != name {
			t.Errorf("FileName(0) for %q: got %q want %q", p, got, name)
		}
	}
}

func TestParse_suffix_embeds_extension(t *testing.T) {
	d, err := Parse("assets/frame_001.jpg", 10)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !strings.HasSuffix(d.Suffix, d.Extension) {
		t.Errorf("suffix %q should end with extension %q", d.Suffix, d.Extension)
	}
}

func TestKind(t *testing.T) {
	_, err := Parse("img/shot_05.gif", 3)
	if got := Kind(err); got != "unsupported_extension" {
		t.Errorf("Kind: got %q", got)
	}
	if got := Kind(nil); got != "" {
		t.Errorf("Kind(nil): got %q", got)
	}
	if got := Kind(errors.New("other")); got != "" {
		t.Errorf("Kind(foreign): got %q", got)
	}
}

func TestParse_sequence_number_limits(t *testing.T) {
	top := strconv.Itoa(math.MaxInt)

	t.Run("run_too_long_for_int", func(t *testing.T) {
		if _, err := Parse("a/f_"+top+"0.png", 2); !errors.Is(err, ErrBadSequenceFormat) {
			t.Errorf("expected ErrBadSequenceFormat, got %v", err)
		}
	})

	t.Run("last_frame_overflows", func(t *testing.T) {
		if _, err := Parse("a/f_"+top+".png", 2); !errors.Is(err, ErrBadSequenceFormat) {
			t.Errorf("expected ErrBadSequenceFormat, got %v", err)
		}
	})

	t.Run("single_frame_at_max", func(t *testing.T) {
		d, err := Parse("a/f_"+top+".png", 1)
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}
		if got := d.FrameName(0); got != "a/f_"+top+".png" {
			t.Errorf("FrameName(0): got %q", got)
		}
	})

	t.Run("last_frame_exactly_max", func(t *testing.T) {
		start := strconv.Itoa(math.MaxInt - 9)
		d, err := Parse("a/f_"+start+".png", 10)
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}
		if got := d.FrameName(9); got != "a/f_"+top+".png" {
			t.Errorf("FrameName(9): got %q", got)
		}
	})
}
