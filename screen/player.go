package screen

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
	"pkt.systems/tpp"
)

const (
	ruleRune = '─'
	ellipsis = "…"
)

type rowKind uint8

const (
	rowText rowKind = iota
	rowRule
	rowBlock
)

// row is one logical element of a slide, laid out again on every draw.
type row struct {
	kind  rowKind
	text  string
	attr  tpp.Attr
	align tpp.Align
	fg    tcell.Color
	block []tpp.BlockLine
}

// Player renders slides on a tcell screen and reads navigation keys.
type Player struct {
	tpp.NopRenderer

	screen tcell.Screen
	cfg    Config
	log    *slog.Logger
	sleep  func(time.Duration)

	slide  tpp.SlideInfo
	rows   []row
	border bool
	header string
	footer string
	fg     tcell.Color
	bg     tcell.Color
	closed bool
}

var (
	_ tpp.Renderer = (*Player)(nil)
	_ tpp.Pager    = (*Player)(nil)
	_ tpp.Sizer    = (*Player)(nil)
)

// New initializes the terminal and returns a Player on it.
func New(cfg Config) (*Player, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("screen: %w", err)
	}
	return NewWithScreen(s, cfg)
}

// NewWithScreen returns a Player on an uninitialized screen.
func NewWithScreen(s tcell.Screen, cfg Config) (*Player, error) {
	if s == nil {
		return nil, fmt.Errorf("screen: nil screen")
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("screen: init: %w", err)
	}
	s.HideCursor()
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	sleep := cfg.sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	return &Player{
		screen: s,
		cfg:    cfg,
		log:    log,
		sleep:  sleep,
		fg:     tcell.ColorDefault,
		bg:     tcell.ColorDefault,
	}, nil
}

// Width returns the number of columns available to slide content.
func (p *Player) Width() int {
	w, _ := p.screen.Size()
	w -= 2 * (p.inset() + 1)
	if w < 1 {
		return 1
	}
	return w
}

func (p *Player) NewSlide(info tpp.SlideInfo) {
	p.slide = info
	p.rows = p.rows[:0]
	p.log.Debug("slide", "index", info.Index+1, "count", info.Count, "title", info.Title)
}

func (p *Player) LiteralLine(text string, attr tpp.Attr) {
	p.rows = append(p.rows, row{kind: rowText, text: text, attr: attr, fg: p.fg})
}

func (p *Player) Center(text string, attr tpp.Attr) {
	p.rows = append(p.rows, row{kind: rowText, text: text, attr: attr, align: tpp.AlignCenter, fg: p.fg})
}

func (p *Player) Right(text string, attr tpp.Attr) {
	p.rows = append(p.rows, row{kind: rowText, text: text, attr: attr, align: tpp.AlignRight, fg: p.fg})
}

func (p *Player) Heading(text string) { p.centeredBold(text) }
func (p *Player) Title(text string) { p.centeredBold(text) }
func (p *Player) Author(text string) { p.centeredBold(text) }
func (p *Player) Date(text string) { p.centeredBold(text) }

func (p *Player) Huge(text string) {
	if p.cfg.HugeFallback {
		p.centeredBold(text)
	}
}

func (p *Player) HorizontalRule() {
	p.rows = append(p.rows, row{kind: rowRule, fg: p.fg})
}

func (p *Player) WithBorder() { p.border = true }

func (p *Player) Header(text string) { p.header = text }

func (p *Player) Footer(text string) { p.footer = text }

func (p *Player) EndOutput(b tpp.Block) { p.addBlock(b) }

func (p *Player) EndShellOutput(b tpp.Block) { p.addBlock(b) }

func (p *Player) Foreground(name string) { p.setForeground(name) }

func (p *Player) Color(name string) { p.setForeground(name) }

func (p *Player) Background(name string) {
	c, ok := parseColor(name)
	if !ok {
		p.log.Warn("unknown color", "color", name)
		return
	}
	p.bg = c
}

func (p *Player) Exec(cmdline string) {
	p.log.Debug("exec", "cmdline", cmdline)
}

// Sleep shows the slide so far and pauses for a number of seconds.
func (p *Player) Sleep(arg string) {
	secs, err := strconv.ParseFloat(strings.TrimSpace(arg), 64)
	if err != nil || secs < 0 || math.IsInf(secs, 0) || math.IsNaN(secs) {
		p.log.Warn("invalid sleep", "value", arg)
		return
	}
	p.draw()
	p.sleep(time.Duration(secs * float64(time.Second)))
}

// Await draws the slide and blocks until a navigation key is pressed or ctx
// is done.
func (p *Player) Await(ctx context.Context, _ tpp.Pause) (tpp.Step, error) {
	if err := ctx.Err(); err != nil {
		return tpp.StepQuit, err
	}
	stop := context.AfterFunc(ctx, func() {
		_ = p.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()
	p.draw()
	for {
		ev := p.screen.PollEvent()
		switch e := ev.(type) {
		case nil:
			return tpp.StepQuit, nil
		case *tcell.EventResize:
			p.screen.Sync()
			p.draw()
		case *tcell.EventInterrupt:
			if err := ctx.Err(); err != nil {
				return tpp.StepQuit, err
			}
		case *tcell.EventKey:
			if step, ok := keyStep(e); ok {
				return step, nil
			}
		}
	}
}

// Close restores the terminal. It is safe to call more than once.
func (p *Player) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true
	p.screen.Fini()
	return nil
}

func (p *Player) centeredBold(text string) {
	p.rows = append(p.rows, row{kind: rowText, text: text, attr: tpp.AttrBold, align: tpp.AlignCenter, fg: p.fg})
}

func (p *Player) addBlock(b tpp.Block) {
	p.rows = append(p.rows, row{kind: rowBlock, block: b.Lines, fg: p.fg})
}

func (p *Player) setForeground(name string) {
	c, ok := parseColor(name)
	if !ok {
		p.log.Warn("unknown color", "color", name)
		return
	}
	p.fg = c
}

func (p *Player) inset() int {
	if p.border {
		return 1
	}
	return 0
}

// baseStyle depends on the background only. Rows carry the foreground that
// was active when they were added.
func (p *Player) baseStyle() tcell.Style {
	style := tcell.StyleDefault.Background(p.bg)
	if p.bg != tcell.ColorDefault {
		style = style.Foreground(contrast(p.bg))
	}
	return style
}

func (p *Player) draw() {
	s := p.screen
	w, h := s.Size()
	if w <= 0 || h <= 0 {
		return
	}
	base := p.baseStyle()
	s.Fill(' ', base)
	in := p.inset()
	if p.border {
		drawBox(s, 0, 0, w, h, base)
	}
	left := in + 1
	width := w - 2*left
	if width < 1 {
		s.Show()
		return
	}
	top := in
	bottom := h - 1 - in
	if p.header != "" && top < bottom {
		drawAligned(s, left, top, width, p.header, tpp.AlignCenter, base)
		top++
	}
	p.drawFooter(left, bottom, width, base)

	y := top
	for _, r := range p.rows {
		if y >= bottom {
			break
		}
		y = p.drawRow(r, left, y, width, bottom, base)
	}
	s.Show()
}

func (p *Player) drawFooter(x, y, width int, base tcell.Style) {
	counter := fmt.Sprintf("Slide [%d/%d]", p.slide.Index+1, p.slide.Count)
	drawAligned(p.screen, x, y, width, counter, tpp.AlignRight, base)
	room := width - runewidth.StringWidth(counter) - 1
	if p.footer != "" && room > 0 {
		drawText(p.screen, x, y, truncate.StringWithTail(p.footer, uint(room), ellipsis), base, x+room)
	}
}

// drawRow draws r starting at y and returns the next free line.
func (p *Player) drawRow(r row, x, y, width, bottom int, base tcell.Style) int {
	style := applyAttr(base, r.attr)
	if r.fg != tcell.ColorDefault {
		style = style.Foreground(r.fg)
	}
	switch r.kind {
	case rowRule:
		drawText(p.screen, x, y, strings.Repeat(string(ruleRune), width), style, x+width)
		return y + 1
	case rowBlock:
		return p.drawBlock(r, x, y, width, bottom, style)
	}
	lines := tpp.Wrap(r.text, width)
	if len(lines) == 0 {
		return y + 1
	}
	for _, l := range lines {
		if y >= bottom {
			break
		}
		drawAligned(p.screen, x, y, width, l, r.align, style)
		y++
	}
	return y
}

func (p *Player) drawBlock(r row, x, y, width, bottom int, style tcell.Style) int {
	if width < 5 || y+1 >= bottom {
		return y
	}
	inner := width - 4
	var lines []tpp.BlockLine
	for _, bl := range r.block {
		wrapped := tpp.Wrap(bl.Text, inner)
		if len(wrapped) == 0 {
			wrapped = []string{""}
		}
		for _, l := range wrapped {
			lines = append(lines, tpp.BlockLine{Text: l, Attr: bl.Attr, Align: bl.Align})
		}
	}
	height := len(lines) + 2
	if y+height > bottom {
		height = bottom - y
	}
	drawBox(p.screen, x, y, width, height, style)
	for i := 0; i < height-2; i++ {
		bl := lines[i]
		drawAligned(p.screen, x+2, y+1+i, inner, bl.Text, bl.Align, applyAttr(style, bl.Attr))
	}
	return y + height
}

func applyAttr(s tcell.Style, a tpp.Attr) tcell.Style {
	return s.Bold(a.Has(tpp.AttrBold)).
		Underline(a.Has(tpp.AttrUnderline)).
		Reverse(a.Has(tpp.AttrReverse))
}

func drawAligned(s tcell.Screen, x, y, width int, text string, a tpp.Align, style tcell.Style) {
	text = truncate.String(text, uint(width))
	pad := width - runewidth.StringWidth(text)
	switch a {
	case tpp.AlignCenter:
		x += pad / 2
	case tpp.AlignRight:
		x += pad
	}
	drawText(s, x, y, text, style, x+width)
}

// drawText puts text at (x, y), stopping before column limit.
func drawText(s tcell.Screen, x, y int, text string, style tcell.Style, limit int) {
	for _, r := range text {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if x+rw > limit {
			return
		}
		s.SetContent(x, y, r, nil, style)
		x += rw
	}
}

func drawBox(s tcell.Screen, x, y, w, h int, style tcell.Style) {
	if w < 2 || h < 2 {
		return
	}
	right, low := x+w-1, y+h-1
	for i := x + 1; i < right; i++ {
		s.SetContent(i, y, tcell.RuneHLine, nil, style)
		s.SetContent(i, low, tcell.RuneHLine, nil, style)
	}
	for j := y + 1; j < low; j++ {
		s.SetContent(x, j, tcell.RuneVLine, nil, style)
		s.SetContent(right, j, tcell.RuneVLine, nil, style)
	}
	s.SetContent(x, y, tcell.RuneULCorner, nil, style)
	s.SetContent(right, y, tcell.RuneURCorner, nil, style)
	s.SetContent(x, low, tcell.RuneLLCorner, nil, style)
	s.SetContent(right, low, tcell.RuneLRCorner, nil, style)
}
