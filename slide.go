package tpp

import (
	"errors"
	"fmt"
	"slices"
)

// ErrCursorBounds is matched by CursorBoundsError.
var ErrCursorBounds = errors.New("cursor: no lines remaining")

// CursorBoundsError reports a Next call on an exhausted cursor. It is a
// driver bug, not an input problem.
type CursorBoundsError struct {
	Title    string
	Position int
	Len      int
}

func (e *CursorBoundsError) Error() string {
	return fmt.Sprintf("cursor: %q: position %d out of range (%d lines)", e.Title, e.Position, e.Len)
}

// Is reports whether target is ErrCursorBounds.
func (e *CursorBoundsError) Is(target error) bool { return target == ErrCursorBounds }

// Slide is a named, ordered block of source lines.
type Slide struct {
	Title   string
	Content []string
}

func (s Slide) clone() Slide {
	return Slide{Title: s.Title, Content: slices.Clone(s.Content)}
}

// Len returns the number of content lines.
func (s Slide) Len() int { return len(s.Content) }

// Document is the parsed presentation. It always holds at least one slide.
type Document struct {
	slides []Slide
}

// Len returns the number of slides.
func (d *Document) Len() int { return len(d.slides) }

// Slide returns a copy of slide i.
func (d *Document) Slide(i int) Slide { return d.slides[i].clone() }

// Slides returns a copy of all slides.
func (d *Document) Slides() []Slide {
	out := make([]Slide, len(d.slides))
	for i, s := range d.slides {
		out[i] = s.clone()
	}
	return out
}

// Cursor walks the lines of one slide, forward only.
type Cursor struct {
	slide Slide
	pos   int
	eos   bool
}

// NewCursor returns a cursor at the first line of s. For a slide without
// content the end-of-slide flag is already set.
func NewCursor(s Slide) *Cursor {
	c := &Cursor{slide: s}
	c.Reset()
	return c
}

// Next returns the current line and advances. The end-of-slide flag is set
// once the last line has been returned.
func (c *Cursor) Next() (string, error) {
	if c.pos >= len(c.slide.Content) {
		return "", &CursorBoundsError{Title: c.slide.Title, Position: c.pos, Len: len(c.slide.Content)}
	}
	line := c.slide.Content[c.pos]
	c.pos++
	if c.pos >= len(c.slide.Content) {
		c.eos = true
	}
	return line, nil
}

// EndOfSlide reports whether every line has been returned.
func (c *Cursor) EndOfSlide() bool { return c.eos }

// Position returns the index of the next line.
func (c *Cursor) Position() int { return c.pos }

// Reset rewinds to the first line. Replaying a slide only gives the same
// result if the renderer is driven from scratch for it.
func (c *Cursor) Reset() {
	c.pos = 0
	c.eos = len(c.slide.Content) == 0
}
