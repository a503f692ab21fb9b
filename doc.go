// Package tpp turns text presentation source into slides and plays them
// through a renderer.
//
// Source is plain text. Lines starting with "--newpage" split slides, lines
// starting with "--##" are comments and every other line belongs to the
// current slide. When a slide is played each line is either a directive
// ("--heading Intro", "---", "--boldon", ...) or literal text, and the
// Interpreter turns it into calls on a Renderer.
//
// Core properties:
//   - Parsing is a single pass; the resulting Document is immutable
//   - Directive recognition is structural: unknown "--" lines are literal text
//   - Emphasis and capture state live in the Interpreter and survive slide breaks
//   - The only pacing signal is the return value of Interpret
//
// Example:
//
//	doc, err := tpp.Parse(strings.NewReader("--title Demo\nHello\n--newpage\n"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	r := text.New(os.Stdout, text.DefaultConfig())
//	ctrl := tpp.NewController(doc, tpp.NewInterpreter(r), r)
//	if err := ctrl.Run(context.Background()); err != nil {
//		log.Fatal(err)
//	}
//	_ = r.Close()
//
// Renderers embed NopRenderer and override the operations they support.
package tpp
