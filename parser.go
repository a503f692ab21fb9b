package tpp

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	commentMarker    = "--##"
	slideBreakMarker = "--newpage"
)

// Parse reads presentation source from r and splits it into slides.
func Parse(r io.Reader, opts ...ParseOption) (*Document, error) {
	if r == nil {
		return nil, fmt.Errorf("parse: reader is nil")
	}
	p := newSlideParser(opts)
	br := bufio.NewReaderSize(r, 4096)
	n := 0
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			n++
			line = trimLineEnding(line)
			if verr := ValidateLine(line); verr != nil {
				return nil, &ParseError{Line: n, Err: verr}
			}
			p.add(line)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("parse: read: %w", err)
		}
	}
	return p.finish(), nil
}

// ParseLines splits already separated lines into slides. Trailing line
// endings are stripped; lines are not validated.
func ParseLines(lines []string, opts ...ParseOption) *Document {
	p := newSlideParser(opts)
	for _, line := range lines {
		p.add(trimLineEnding(line))
	}
	return p.finish()
}

type slideParser struct {
	cfg    parseConfig
	slides []Slide
	cur    Slide
	breaks int
}

func newSlideParser(opts []ParseOption) *slideParser {
	p := &slideParser{}
	for _, opt := range opts {
		if opt != nil {
			opt(&p.cfg)
		}
	}
	p.cur = Slide{Title: defaultTitle(0)}
	return p
}

func (p *slideParser) add(line string) {
	switch {
	case strings.HasPrefix(line, commentMarker):
	case strings.HasPrefix(line, slideBreakMarker):
		p.slides = append(p.slides, p.cur)
		p.breaks++
		title := strings.TrimSpace(line[len(slideBreakMarker):])
		if title == "" {
			title = defaultTitle(p.breaks)
		}
		p.cur = Slide{Title: title}
	default:
		p.cur.Content = append(p.cur.Content, line)
	}
}

// finish seals the parse. A non-empty trailing slide is dropped unless
// WithTrailingSlide is set; empty input still yields one slide.
func (p *slideParser) finish() *Document {
	if p.cfg.keepTrailing || len(p.cur.Content) == 0 {
		p.slides = append(p.slides, p.cur)
	}
	if len(p.slides) == 0 {
		p.slides = append(p.slides, Slide{Title: defaultTitle(0)})
	}
	return &Document{slides: p.slides}
}

func defaultTitle(breaks int) string {
	return "slide " + strconv.Itoa(breaks+1)
}

func trimLineEnding(line string) string {
	return strings.TrimRight(line, "\r\n")
}
