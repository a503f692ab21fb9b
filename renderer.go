package tpp

// SlideInfo describes the slide about to be rendered.
type SlideInfo struct {
	Index int
	Count int
	Title string
}

// BlockLine is one buffered line of a capture block.
type BlockLine struct {
	Text  string
	Attr  Attr
	Align Align
}

// Block is the content collected between a begin and an end capture marker.
type Block struct {
	Kind  CaptureMode
	Lines []BlockLine
}

// Renderer receives the operations produced by the Interpreter. A renderer
// that does not support an operation must ignore it; embed NopRenderer to
// get that behavior for free.
type Renderer interface {
	NewSlide(info SlideInfo)
	LiteralLine(text string, attr Attr)
	Heading(text string)
	WithBorder()
	HorizontalRule()
	Center(text string, attr Attr)
	Right(text string, attr Attr)
	Exec(cmdline string)
	Wait()
	BeginOutput()
	EndOutput(b Block)
	BeginShellOutput()
	EndShellOutput(b Block)
	Sleep(duration string)
	Bold(on bool)
	Reverse(on bool)
	Underline(on bool)
	BeginSlide(from Direction)
	EndSlide()
	SetHugeFont(name string)
	Huge(text string)
	Footer(text string)
	Header(text string)
	Title(text string)
	Author(text string)
	Date(text string)
	Foreground(color string)
	Background(color string)
	Color(color string)
	Close() error
}

// Sizer is implemented by renderers with a fixed line width. The
// Interpreter uses it to size banner output.
type Sizer interface {
	Width() int
}

// NopRenderer implements every Renderer operation as a no-op.
type NopRenderer struct{}

var _ Renderer = NopRenderer{}

func (NopRenderer) NewSlide(SlideInfo) {}
func (NopRenderer) LiteralLine(string, Attr) {}
func (NopRenderer) Heading(string) {}
func (NopRenderer) WithBorder() {}
func (NopRenderer) HorizontalRule() {}
func (NopRenderer) Center(string, Attr) {}
func (NopRenderer) Right(string, Attr) {}
func (NopRenderer) Exec(string) {}
func (NopRenderer) Wait() {}
func (NopRenderer) BeginOutput() {}
func (NopRenderer) EndOutput(Block) {}
func (NopRenderer) BeginShellOutput() {}
func (NopRenderer) EndShellOutput(Block) {}
func (NopRenderer) Sleep(string) {}
func (NopRenderer) Bold(bool) {}
func (NopRenderer) Reverse(bool) {}
func (NopRenderer) Underline(bool) {}
func (NopRenderer) BeginSlide(Direction) {}
func (NopRenderer) EndSlide() {}
func (NopRenderer) SetHugeFont(string) {}
func (NopRenderer) Huge(string) {}
func (NopRenderer) Footer(string) {}
func (NopRenderer) Header(string) {}
func (NopRenderer) Title(string) {}
func (NopRenderer) Author(string) {}
func (NopRenderer) Date(string) {}
func (NopRenderer) Foreground(string) {}
func (NopRenderer) Background(string) {}
func (NopRenderer) Color(string) {}
func (NopRenderer) Close() error { return nil }
