// Package screen plays presentations full screen in a terminal using tcell.
//
// A Player is both the renderer and the pager of a tpp.Controller: the
// interpreter fills the current slide through the renderer methods and the
// controller calls Await whenever playback pauses, at which point the slide
// is drawn and the player waits for a key.
//
//	p, err := screen.New(screen.Config{})
//	if err != nil {
//		return err
//	}
//	defer p.Close()
//	c := tpp.NewController(doc, tpp.NewInterpreter(p), p, tpp.WithPager(p))
//	return c.Run(ctx)
package screen
