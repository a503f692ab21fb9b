package tpp

import (
	"fmt"
	"strings"
)

// recorder logs every renderer call it receives.
type recorder struct {
	NopRenderer
	calls []string
	width int
}

func (r *recorder) add(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recorder) Width() int { return r.width }

func (r *recorder) NewSlide(info SlideInfo) {
	r.add("new_slide(%d/%d %s)", info.Index+1, info.Count, info.Title)
}
func (r *recorder) LiteralLine(text string, attr Attr) { r.add("literal(%q, %s)", text, attr) }
func (r *recorder) Heading(text string) { r.add("heading(%q)", text) }
func (r *recorder) Center(text string, attr Attr) { r.add("center(%q, %s)", text, attr) }
func (r *recorder) Right(text string, attr Attr) { r.add("right(%q, %s)", text, attr) }
func (r *recorder) Color(name string) { r.add("color(%q)", name) }
func (r *recorder) Exec(cmdline string) { r.add("exec(%q)", cmdline) }
func (r *recorder) Wait() { r.add("wait()") }
func (r *recorder) BeginOutput() { r.add("begin_output()") }
func (r *recorder) BeginShellOutput() { r.add("begin_shell_output()") }
func (r *recorder) EndOutput(b Block) { r.add("end_output(%s)", blockString(b)) }
func (r *recorder) EndShellOutput(b Block) { r.add("end_shell_output(%s)", blockString(b)) }
func (r *recorder) Sleep(d string) { r.add("sleep(%q)", d) }
func (r *recorder) Bold(on bool) { r.add("bold(%v)", on) }
func (r *recorder) Underline(on bool) { r.add("underline(%v)", on) }
func (r *recorder) Reverse(on bool) { r.add("reverse(%v)", on) }
func (r *recorder) BeginSlide(from Direction) { r.add("begin_slide(%d)", from) }
func (r *recorder) EndSlide() { r.add("end_slide()") }
func (r *recorder) SetHugeFont(name string) { r.add("huge_font(%q)", name) }
func (r *recorder) Huge(text string) { r.add("huge(%q)", text) }
func (r *recorder) Footer(text string) { r.add("footer(%q)", text) }
func (r *recorder) Header(text string) { r.add("header(%q)", text) }
func (r *recorder) Title(text string) { r.add("title(%q)", text) }
func (r *recorder) Author(text string) { r.add("author(%q)", text) }
func (r *recorder) Date(text string) { r.add("date(%q)", text) }
func (r *recorder) Foreground(name string) { r.add("fg(%q)", name) }
func (r *recorder) Background(name string) { r.add("bg(%q)", name) }

func blockString(b Block) string {
	parts := make([]string, len(b.Lines))
	for i, l := range b.Lines {
		parts[i] = fmt.Sprintf("%q/%s/%d", l.Text, l.Attr, l.Align)
	}
	return b.Kind.String() + ":[" + strings.Join(parts, " ") + "]"
}
