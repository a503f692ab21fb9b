package text

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/muesli/reflow/ansi"
	"pkt.systems/tpp"
)

const (
	slideSeparator = "--------------------------------------------"
	headingRule    = "~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~"
	horizontalRule = "********************************************"
	blockRule      = "---------------------------"
	blockPrefix    = "| "

	sgrBold      = "\x1b[1m"
	sgrUnderline = "\x1b[4m"
	sgrReverse   = "\x1b[7m"
	sgrReset     = "\x1b[0m"
)

// Renderer writes a text handout to an io.Writer. The first write error is
// kept and returned by Close; later output is dropped.
type Renderer struct {
	tpp.NopRenderer

	w      io.Writer
	cfg    Config
	log    *slog.Logger
	err    error
	slides int

	title, author, date bool
}

var (
	_ tpp.Renderer = (*Renderer)(nil)
	_ tpp.Sizer    = (*Renderer)(nil)
)

// New returns a Renderer writing to w.
func New(w io.Writer, cfg Config) *Renderer {
	if cfg.Width <= 0 {
		cfg.Width = DefaultConfig().Width
	}
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Renderer{w: w, cfg: cfg, log: log}
}

// Width returns the configured line width.
func (r *Renderer) Width() int { return r.cfg.Width }

// Err returns the first write error, if any.
func (r *Renderer) Err() error { return r.err }

func (r *Renderer) NewSlide(info tpp.SlideInfo) {
	if r.slides > 0 {
		r.writeln(slideSeparator)
	}
	r.slides++
	r.log.Debug("slide", "index", info.Index+1, "count", info.Count, "title", info.Title)
}

func (r *Renderer) LiteralLine(text string, attr tpp.Attr) {
	for _, l := range r.align(text, r.cfg.Width, tpp.AlignLeft, attr) {
		r.writeln(l)
	}
}

func (r *Renderer) Heading(text string) {
	r.writeln("")
	for _, l := range tpp.Wrap(text, r.cfg.Width) {
		r.writeln(r.style(l, tpp.AttrBold))
	}
	r.writeln(headingRule)
}

func (r *Renderer) HorizontalRule() { r.writeln(horizontalRule) }

func (r *Renderer) Center(text string, attr tpp.Attr) {
	for _, l := range r.align(text, r.cfg.Width, tpp.AlignCenter, attr) {
		r.writeln(l)
	}
}

func (r *Renderer) Right(text string, attr tpp.Attr) {
	for _, l := range r.align(text, r.cfg.Width, tpp.AlignRight, attr) {
		r.writeln(l)
	}
}

func (r *Renderer) EndOutput(b tpp.Block) { r.block(b) }

func (r *Renderer) EndShellOutput(b tpp.Block) { r.block(b) }

func (r *Renderer) Title(text string) {
	r.writeln("Title: " + text)
	r.title = true
	r.headerDone()
}

func (r *Renderer) Author(text string) {
	r.writeln("Author: " + text)
	r.author = true
	r.headerDone()
}

func (r *Renderer) Date(text string) {
	r.writeln("Date: " + text)
	r.date = true
	r.headerDone()
}

// Close writes the final separator and reports the first write error.
func (r *Renderer) Close() error {
	if r.slides > 0 {
		r.writeln(slideSeparator)
	}
	return r.err
}

// headerDone separates the title page from the slides once title, author
// and date have all been written.
func (r *Renderer) headerDone() {
	if r.title && r.author && r.date {
		r.writeln("")
		r.writeln("")
		r.title, r.author, r.date = false, false, false
	}
}

func (r *Renderer) block(b tpp.Block) {
	inner := r.cfg.Width - len(blockPrefix)
	if inner < 1 {
		inner = 1
	}
	r.writeln(blockRule)
	for _, bl := range b.Lines {
		for _, l := range r.align(bl.Text, inner, bl.Align, bl.Attr) {
			r.writeln(blockPrefix + l)
		}
	}
	r.writeln(blockRule)
}

func (r *Renderer) style(s string, attr tpp.Attr) string {
	if !r.cfg.ANSI || attr == tpp.AttrNone || s == "" {
		return s
	}
	var b strings.Builder
	if attr.Has(tpp.AttrBold) {
		b.WriteString(sgrBold)
	}
	if attr.Has(tpp.AttrUnderline) {
		b.WriteString(sgrUnderline)
	}
	if attr.Has(tpp.AttrReverse) {
		b.WriteString(sgrReverse)
	}
	b.WriteString(s)
	b.WriteString(sgrReset)
	return b.String()
}

func (r *Renderer) writeln(s string) {
	if r.err != nil {
		return
	}
	if _, err := fmt.Fprintln(r.w, s); err != nil {
		r.err = fmt.Errorf("text: write: %w", err)
		r.log.Warn("handout write failed", "err", err)
	}
}

// align wraps text to width, styles each line and pads it for the requested
// placement. Padding stays outside the styled text. Empty text yields one
// empty line.
func (r *Renderer) align(text string, width int, a tpp.Align, attr tpp.Attr) []string {
	lines := tpp.Wrap(text, width)
	if len(lines) == 0 {
		return []string{""}
	}
	for i, l := range lines {
		pad := 0
		switch a {
		case tpp.AlignCenter:
			pad = (width - ansi.PrintableRuneWidth(l)) / 2
		case tpp.AlignRight:
			pad = width - ansi.PrintableRuneWidth(l)
		}
		lines[i] = r.style(l, attr)
		if pad > 0 {
			lines[i] = strings.Repeat(" ", pad) + lines[i]
		}
	}
	return lines
}
