package tpp

import "strings"

// Attr is a set of emphasis attributes applied to literal text.
type Attr uint8

const (
	AttrBold Attr = 1 << iota
	AttrUnderline
	AttrReverse

	// AttrNone is the empty attribute set.
	AttrNone Attr = 0
)

// Has reports whether every attribute in a is set.
func (s Attr) Has(a Attr) bool { return s&a == a && a != 0 }

// With returns s with a set or cleared.
func (s Attr) With(a Attr, on bool) Attr {
	if on {
		return s | a
	}
	return s &^ a
}

func (s Attr) String() string {
	if s == AttrNone {
		return "none"
	}
	var parts []string
	if s.Has(AttrBold) {
		parts = append(parts, "bold")
	}
	if s.Has(AttrUnderline) {
		parts = append(parts, "underline")
	}
	if s.Has(AttrReverse) {
		parts = append(parts, "reverse")
	}
	return strings.Join(parts, "|")
}

// Align is the horizontal placement of a line.
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// CaptureMode is the interpreter's output capture state.
type CaptureMode uint8

const (
	CaptureIdle CaptureMode = iota
	CaptureCommandOutput
	CaptureShellOutput
)

func (m CaptureMode) String() string {
	switch m {
	case CaptureCommandOutput:
		return "output"
	case CaptureShellOutput:
		return "shelloutput"
	default:
		return "idle"
	}
}

// Direction names the edge a slide transition starts from.
type Direction uint8

const (
	SlideLeft Direction = iota
	SlideRight
	SlideTop
	SlideBottom
)
