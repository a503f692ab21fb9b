package tpp

import (
	"context"
	"fmt"
)

// Step is a navigation decision returned by a Pager.
type Step uint8

const (
	StepForward Step = iota
	StepBack
	StepQuit
)

// Pause says why the controller is asking the pager.
type Pause uint8

const (
	// PauseWait is a wait-for-input directive inside a slide.
	PauseWait Pause = iota
	// PauseSlideEnd follows the last line of a slide.
	PauseSlideEnd
)

// Pager decides how playback continues whenever the controller pauses.
type Pager interface {
	Await(ctx context.Context, why Pause) (Step, error)
}

// Controller drives a Document through an Interpreter.
type Controller struct {
	doc    *Document
	interp *Interpreter
	r      Renderer
	pager  Pager
}

// NewController returns a controller for doc. Without a pager it runs every
// slide straight through.
func NewController(doc *Document, interp *Interpreter, r Renderer, opts ...ControllerOption) *Controller {
	c := &Controller{doc: doc, interp: interp, r: r}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Run plays the document. It returns nil when the last slide is done or the
// pager asks to quit. The renderer is left open.
func (c *Controller) Run(ctx context.Context) error {
	if c.doc == nil || c.interp == nil || c.r == nil {
		return fmt.Errorf("controller: document, interpreter and renderer are required")
	}
	count := c.doc.Len()
	for i := 0; i < count; {
		if err := ctx.Err(); err != nil {
			return err
		}
		step, err := c.play(ctx, i, count)
		if err != nil {
			return err
		}
		switch step {
		case StepQuit:
			c.interp.Finish()
			return nil
		case StepBack:
			if i > 0 {
				i--
			}
		default:
			i++
		}
	}
	c.interp.Finish()
	return nil
}

func (c *Controller) play(ctx context.Context, i, count int) (Step, error) {
	slide := c.doc.Slide(i)
	c.r.NewSlide(SlideInfo{Index: i, Count: count, Title: slide.Title})
	cur := NewCursor(slide)
	for !cur.EndOfSlide() {
		line, err := cur.Next()
		if err != nil {
			return StepQuit, err
		}
		wait, err := c.interp.Interpret(ctx, line)
		if err != nil {
			return StepQuit, fmt.Errorf("slide %d: %w", i+1, err)
		}
		if !wait || c.pager == nil {
			continue
		}
		step, err := c.pager.Await(ctx, PauseWait)
		if err != nil {
			return StepQuit, err
		}
		if step != StepForward {
			return step, nil
		}
	}
	if c.pager == nil {
		return StepForward, nil
	}
	return c.pager.Await(ctx, PauseSlideEnd)
}
