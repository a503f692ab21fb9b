package tpp

import (
	"context"
	"strings"
)

type arity uint8

const (
	argNone arity = iota
	argRequired
	argOptional
)

// Directive is a recognized line-start keyword and its argument.
type Directive struct {
	Keyword string
	Arg     string
	HasArg  bool
}

type handler func(in *Interpreter, ctx context.Context, arg string) (bool, error)

type directive struct {
	keyword string
	arity   arity
	handle  handler
}

func (d directive) prefix() string {
	if d.arity == argRequired {
		return d.keyword + " "
	}
	return d.keyword
}

func (d directive) match(line string) (string, bool) {
	p := d.prefix()
	if !strings.HasPrefix(line, p) {
		return "", false
	}
	if d.arity == argNone {
		return "", true
	}
	return strings.TrimSpace(line[len(p):]), true
}

// Order matters: the first matching prefix wins.
var directives = []directive{
	{slideBreakMarker, argOptional, ignore},
	{commentMarker, argNone, ignore},
	{"--heading", argRequired, withArg((*Interpreter).heading)},
	{"--withborder", argNone, noArg((*Interpreter).withBorder)},
	{"--horline", argNone, noArg((*Interpreter).horizontalRule)},
	{"--color", argRequired, withArg((*Interpreter).color)},
	{"--center", argRequired, withArg((*Interpreter).center)},
	{"--right", argRequired, withArg((*Interpreter).right)},
	{"--exec", argRequired, (*Interpreter).exec},
	{"---", argNone, (*Interpreter).wait},
	{"--beginoutput", argNone, capture(CaptureCommandOutput, true)},
	{"--beginshelloutput", argNone, capture(CaptureShellOutput, true)},
	{"--endoutput", argNone, capture(CaptureCommandOutput, false)},
	{"--endshelloutput", argNone, capture(CaptureShellOutput, false)},
	{"--sleep", argRequired, withArg((*Interpreter).sleep)},
	{"--boldon", argNone, emphasis(AttrBold, true)},
	{"--boldoff", argNone, emphasis(AttrBold, false)},
	{"--revon", argNone, emphasis(AttrReverse, true)},
	{"--revoff", argNone, emphasis(AttrReverse, false)},
	{"--ulon", argNone, emphasis(AttrUnderline, true)},
	{"--uloff", argNone, emphasis(AttrUnderline, false)},
	{"--beginslideleft", argNone, transition(SlideLeft)},
	{"--endslide", argNone, noArg((*Interpreter).endSlide)},
	{"--beginslideright", argNone, transition(SlideRight)},
	{"--beginslidetop", argNone, transition(SlideTop)},
	{"--beginslidebottom", argNone, transition(SlideBottom)},
	{"--sethugefont", argRequired, withArg((*Interpreter).setHugeFont)},
	{"--huge", argOptional, (*Interpreter).huge},
	{"--footer", argRequired, withArg((*Interpreter).footer)},
	{"--header", argRequired, withArg((*Interpreter).header)},
	{"--title", argRequired, withArg((*Interpreter).title)},
	{"--author", argRequired, withArg((*Interpreter).author)},
	{"--date", argRequired, withArg((*Interpreter).date)},
	{"--bgcolor", argRequired, withArg((*Interpreter).background)},
	{"--fgcolor", argRequired, withArg((*Interpreter).foreground)},
}

// ParseDirective classifies line. It reports false for literal text,
// including lines that merely look like directives.
func ParseDirective(line string) (Directive, bool) {
	d, arg, ok := lookup(line)
	if !ok {
		return Directive{}, false
	}
	return Directive{Keyword: d.keyword, Arg: arg, HasArg: d.arity != argNone}, true
}

// Directives returns the recognized keywords in match order.
func Directives() []string {
	out := make([]string, len(directives))
	for i, d := range directives {
		out[i] = d.keyword
	}
	return out
}

func lookup(line string) (directive, string, bool) {
	if !strings.HasPrefix(line, "--") {
		return directive{}, "", false
	}
	for _, d := range directives {
		if arg, ok := d.match(line); ok {
			return d, arg, true
		}
	}
	return directive{}, "", false
}

func ignore(*Interpreter, context.Context, string) (bool, error) { return false, nil }

func noArg(f func(*Interpreter)) handler {
	return func(in *Interpreter, _ context.Context, _ string) (bool, error) {
		f(in)
		return false, nil
	}
}

func withArg(f func(*Interpreter, string)) handler {
	return func(in *Interpreter, _ context.Context, arg string) (bool, error) {
		f(in, arg)
		return false, nil
	}
}

func capture(kind CaptureMode, begin bool) handler {
	return func(in *Interpreter, _ context.Context, _ string) (bool, error) {
		if begin {
			in.beginCapture(kind)
		} else {
			in.endCapture(kind)
		}
		return false, nil
	}
}

func emphasis(a Attr, on bool) handler {
	return func(in *Interpreter, _ context.Context, _ string) (bool, error) {
		in.setEmphasis(a, on)
		return false, nil
	}
}

func transition(from Direction) handler {
	return func(in *Interpreter, _ context.Context, _ string) (bool, error) {
		in.r.BeginSlide(from)
		return false, nil
	}
}
