package tpp

import (
	"context"
	"fmt"
	"slices"
	"time"
)

const (
	defaultHugeFont = "standard"
	defaultWidth    = 80
	dateLayout      = "02 Jan 2006"

	// blockInset is the width taken by a capture block's border.
	blockInset = 2
)

// CommandRunner runs a shell command line and returns its stdout lines.
type CommandRunner interface {
	Command(ctx context.Context, cmdline string) ([]string, error)
}

// BannerRenderer renders text in a large ASCII font.
type BannerRenderer interface {
	Banner(ctx context.Context, font string, width int, text string) ([]string, error)
}

// ExternalProcessError wraps a failure reported by a CommandRunner or
// BannerRenderer.
type ExternalProcessError struct {
	Directive string
	Arg       string
	Err       error
}

func (e *ExternalProcessError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Directive, e.Arg, e.Err)
}

func (e *ExternalProcessError) Unwrap() error { return e.Err }

// State is the modal state of an Interpreter.
type State struct {
	Attr       Attr
	Capture    CaptureMode
	Buffer     []BlockLine
	HugeFont   string
	Header     string
	Footer     string
	Foreground string
	Background string
	Color      string
}

// Interpreter turns slide lines into Renderer calls. Its state lives for the
// whole run: a slide break does not reset emphasis or capture. It is not
// safe for concurrent use.
type Interpreter struct {
	r        Renderer
	now      func() time.Time
	commands CommandRunner
	banner   BannerRenderer
	state    State
}

// NewInterpreter returns an Interpreter driving r.
func NewInterpreter(r Renderer, opts ...Option) *Interpreter {
	if r == nil {
		r = NopRenderer{}
	}
	in := &Interpreter{
		r:     r,
		now:   time.Now,
		state: State{HugeFont: defaultHugeFont},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(in)
		}
	}
	return in
}

// State returns a copy of the current modal state.
func (in *Interpreter) State() State {
	s := in.state
	s.Buffer = slices.Clone(in.state.Buffer)
	return s
}

// Interpret handles one line. It returns true only for a wait-for-input
// directive; the caller decides when to continue. Errors come from external
// collaborators only.
func (in *Interpreter) Interpret(ctx context.Context, line string) (bool, error) {
	d, arg, ok := lookup(line)
	if !ok {
		in.place(line, AlignLeft)
		return false, nil
	}
	return d.handle(in, ctx, arg)
}

// Finish closes a capture left open at the end of the document and emits
// its block.
func (in *Interpreter) Finish() {
	if in.state.Capture != CaptureIdle {
		in.endCapture(in.state.Capture)
	}
}

// place renders a line now, or buffers it while a capture is active.
func (in *Interpreter) place(text string, align Align) {
	if in.state.Capture != CaptureIdle {
		in.state.Buffer = append(in.state.Buffer, BlockLine{Text: text, Attr: in.state.Attr, Align: align})
		return
	}
	switch align {
	case AlignCenter:
		in.r.Center(text, in.state.Attr)
	case AlignRight:
		in.r.Right(text, in.state.Attr)
	default:
		in.r.LiteralLine(text, in.state.Attr)
	}
}

func (in *Interpreter) beginCapture(kind CaptureMode) {
	if in.state.Capture != CaptureIdle {
		return
	}
	in.state.Capture = kind
	in.state.Buffer = nil
	if kind == CaptureShellOutput {
		in.r.BeginShellOutput()
	} else {
		in.r.BeginOutput()
	}
}

func (in *Interpreter) endCapture(kind CaptureMode) {
	if in.state.Capture != kind {
		return
	}
	b := Block{Kind: kind, Lines: in.state.Buffer}
	in.state.Capture = CaptureIdle
	in.state.Buffer = nil
	if kind == CaptureShellOutput {
		in.r.EndShellOutput(b)
	} else {
		in.r.EndOutput(b)
	}
}

func (in *Interpreter) setEmphasis(a Attr, on bool) {
	in.state.Attr = in.state.Attr.With(a, on)
	switch a {
	case AttrBold:
		in.r.Bold(on)
	case AttrUnderline:
		in.r.Underline(on)
	case AttrReverse:
		in.r.Reverse(on)
	}
}

func (in *Interpreter) heading(text string) { in.r.Heading(text) }
func (in *Interpreter) withBorder() { in.r.WithBorder() }
func (in *Interpreter) horizontalRule() { in.r.HorizontalRule() }
func (in *Interpreter) center(text string) { in.place(text, AlignCenter) }
func (in *Interpreter) right(text string) { in.place(text, AlignRight) }
func (in *Interpreter) sleep(arg string) { in.r.Sleep(arg) }
func (in *Interpreter) endSlide() { in.r.EndSlide() }
func (in *Interpreter) title(text string) { in.r.Title(text) }
func (in *Interpreter) author(text string) { in.r.Author(text) }

func (in *Interpreter) wait(context.Context, string) (bool, error) {
	in.r.Wait()
	return true, nil
}

func (in *Interpreter) color(name string) {
	in.state.Color = name
	in.r.Color(name)
}

func (in *Interpreter) foreground(name string) {
	in.state.Foreground = name
	in.r.Foreground(name)
}

func (in *Interpreter) background(name string) {
	in.state.Background = name
	in.r.Background(name)
}

func (in *Interpreter) setHugeFont(name string) {
	in.state.HugeFont = name
	in.r.SetHugeFont(name)
}

func (in *Interpreter) footer(text string) {
	in.state.Footer = text
	in.r.Footer(text)
}

func (in *Interpreter) header(text string) {
	in.state.Header = text
	in.r.Header(text)
}

func (in *Interpreter) date(text string) {
	if text == "today" {
		text = in.now().Format(dateLayout)
	}
	in.r.Date(text)
}

func (in *Interpreter) exec(ctx context.Context, cmdline string) (bool, error) {
	in.r.Exec(cmdline)
	if in.commands == nil {
		return false, nil
	}
	lines, err := in.commands.Command(ctx, cmdline)
	for _, line := range lines {
		in.place(line, AlignLeft)
	}
	if err != nil {
		return false, &ExternalProcessError{Directive: "--exec", Arg: cmdline, Err: err}
	}
	return false, nil
}

func (in *Interpreter) huge(ctx context.Context, text string) (bool, error) {
	in.r.Huge(text)
	if in.banner == nil || text == "" {
		return false, nil
	}
	width := defaultWidth
	if s, ok := in.r.(Sizer); ok && s.Width() > 0 {
		width = s.Width()
	}
	if in.state.Capture != CaptureIdle && width > blockInset {
		width -= blockInset
	}
	lines, err := in.banner.Banner(ctx, in.state.HugeFont, width, text)
	for _, line := range lines {
		in.place(line, AlignLeft)
	}
	if err != nil {
		return false, &ExternalProcessError{Directive: "--huge", Arg: text, Err: err}
	}
	return false, nil
}
