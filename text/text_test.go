package text

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"pkt.systems/tpp"
)

func renderDoc(t *testing.T, src string, cfg Config) string {
	t.Helper()
	doc, err := tpp.Parse(strings.NewReader(src), tpp.WithTrailingSlide(true))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	var buf bytes.Buffer
	r := New(&buf, cfg)
	c := tpp.NewController(doc, tpp.NewInterpreter(r), r)
	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	return buf.String()
}

func TestHandoutLayout(t *testing.T) {
	src := strings.Join([]string{
		"--title T",
		"--author A",
		"--date D",
		"--newpage intro",
		"--heading Hello",
		"plain",
		"--center hi",
		"--beginoutput",
		"x",
		"--endoutput",
		"--horline",
		"--newpage",
		"last",
	}, "\n")
	got := renderDoc(t, src, Config{Width: 10})
	want := strings.Join([]string{
		"Title: T",
		"Author: A",
		"Date: D",
		"",
		"",
		slideSeparator,
		"",
		"Hello",
		headingRule,
		"plain",
		"    hi",
		blockRule,
		"| x",
		blockRule,
		horizontalRule,
		slideSeparator,
		"last",
		slideSeparator,
		"",
	}, "\n")
	if got != want {
		t.Fatalf("handout mismatch:\n got: %q\nwant: %q", got, want)
	}
}

func TestInteractiveDirectivesProduceNothing(t *testing.T) {
	src := "--bgcolor red\n--fgcolor white\n--sleep 1\n---\n--beginslideleft\n--endslide\n--withborder\n--footer f\n--header h\n--boldon\n"
	got := renderDoc(t, src, DefaultConfig())
	if got != slideSeparator+"\n" {
		t.Fatalf("expected only the closing separator, got %q", got)
	}
}

func TestLiteralWrapsAndKeepsEmptyLines(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, Config{Width: 5})
	r.LiteralLine("aaa bbb ccc", tpp.AttrNone)
	r.LiteralLine("", tpp.AttrNone)
	if got, want := buf.String(), "aaa\nbbb\nccc\n\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRightAlign(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, Config{Width: 6})
	r.Right("ab", tpp.AttrNone)
	r.Center("abcdef", tpp.AttrNone)
	if got, want := buf.String(), "    ab\nabcdef\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestBlockWrapsInsideBorder(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, Config{Width: 6})
	r.EndShellOutput(tpp.Block{Kind: tpp.CaptureShellOutput, Lines: []tpp.BlockLine{
		{Text: "ab cd"},
		{Text: ""},
		{Text: "x", Align: tpp.AlignRight},
	}})
	want := strings.Join([]string{blockRule, "| ab", "| cd", "| ", "|    x", blockRule, ""}, "\n")
	if got := buf.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestANSIEmphasis(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, Config{Width: 20, ANSI: true})
	r.LiteralLine("b", tpp.AttrBold|tpp.AttrUnderline)
	r.LiteralLine("p", tpp.AttrNone)
	r.Right("r", tpp.AttrReverse)
	want := sgrBold + sgrUnderline + "b" + sgrReset + "\n" +
		"p\n" +
		strings.Repeat(" ", 19) + sgrReverse + "r" + sgrReset + "\n"
	if got := buf.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestANSIPaddingStaysUnstyled(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, Config{Width: 6, ANSI: true})
	r.Center("ab", tpp.AttrUnderline)
	r.EndOutput(tpp.Block{Kind: tpp.CaptureCommandOutput, Lines: []tpp.BlockLine{
		{Text: "x", Attr: tpp.AttrReverse, Align: tpp.AlignRight},
	}})
	want := "  " + sgrUnderline + "ab" + sgrReset + "\n" +
		blockRule + "\n" +
		"|    " + sgrReverse + "x" + sgrReset + "\n" +
		blockRule + "\n"
	if got := buf.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestANSIDisabledIgnoresAttributes(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, DefaultConfig())
	r.LiteralLine("b", tpp.AttrBold)
	if got := buf.String(); got != "b\n" {
		t.Fatalf("got %q", got)
	}
}

func TestTitleBlockSeparatesOnce(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, DefaultConfig())
	r.Date("D")
	r.Title("T")
	r.Author("A")
	r.Author("B")
	want := "Date: D\nTitle: T\nAuthor: A\n\n\nAuthor: B\n"
	if got := buf.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestWidthDefaults(t *testing.T) {
	if got := New(&bytes.Buffer{}, Config{}).Width(); got != 80 {
		t.Fatalf("Width() = %d, want 80", got)
	}
	if got := New(&bytes.Buffer{}, Config{Width: 40}).Width(); got != 40 {
		t.Fatalf("Width() = %d, want 40", got)
	}
}

type failingWriter struct {
	n int
}

var errDiskFull = errors.New("disk full")

func (f *failingWriter) Write(p []byte) (int, error) {
	f.n++
	return 0, errDiskFull
}

func TestWriteErrorIsSticky(t *testing.T) {
	w := &failingWriter{}
	r := New(w, DefaultConfig())
	r.LiteralLine("a", tpp.AttrNone)
	r.LiteralLine("b", tpp.AttrNone)
	r.HorizontalRule()
	err := r.Close()
	if !errors.Is(err, errDiskFull) {
		t.Fatalf("Close() = %v, want disk full", err)
	}
	if w.n != 1 {
		t.Fatalf("expected one write attempt, got %d", w.n)
	}
	if r.Err() == nil {
		t.Fatalf("Err() should report the failure")
	}
}

func TestHugeUsesBannerAtHandoutWidth(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, Config{Width: 30})
	banner := &recordingBanner{lines: []string{"#", "##"}}
	in := tpp.NewInterpreter(r, tpp.WithBannerRenderer(banner))
	for _, line := range []string{"--huge Hi", "--beginoutput", "--huge Yo", "--endoutput"} {
		if _, err := in.Interpret(context.Background(), line); err != nil {
			t.Fatalf("Interpret(%q): %v", line, err)
		}
	}
	if len(banner.widths) != 2 || banner.widths[0] != 30 || banner.widths[1] != 28 {
		t.Fatalf("banner widths = %v, want [30 28]", banner.widths)
	}
	want := strings.Join([]string{"#", "##", blockRule, "| #", "| ##", blockRule, ""}, "\n")
	if got := buf.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

type recordingBanner struct {
	lines  []string
	widths []int
}

func (b *recordingBanner) Banner(_ context.Context, _ string, width int, _ string) ([]string, error) {
	b.widths = append(b.widths, width)
	return b.lines, nil
}
