package screen

import (
	"github.com/gdamore/tcell/v2"
	"pkt.systems/tpp"
)

// keyStep maps a key press to a navigation step. Unbound keys report false.
func keyStep(ev *tcell.EventKey) (tpp.Step, bool) {
	switch ev.Key() {
	case tcell.KeyEnter, tcell.KeyRight, tcell.KeyDown, tcell.KeyPgDn:
		return tpp.StepForward, true
	case tcell.KeyLeft, tcell.KeyUp, tcell.KeyPgUp, tcell.KeyBackspace, tcell.KeyBackspace2:
		return tpp.StepBack, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return tpp.StepQuit, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ', 'n', 'j', 'l':
			return tpp.StepForward, true
		case 'p', 'k', 'h':
			return tpp.StepBack, true
		case 'q', 'Q':
			return tpp.StepQuit, true
		}
	}
	return tpp.StepForward, false
}
