package tpp

import "time"

// ParseOption configures Parse and ParseLines.
type ParseOption func(*parseConfig)

type parseConfig struct {
	keepTrailing bool
}

// WithTrailingSlide keeps the final slide even when it has content and no
// slide break follows it. By default such a slide is dropped.
func WithTrailingSlide(keep bool) ParseOption {
	return func(cfg *parseConfig) {
		cfg.keepTrailing = keep
	}
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithClock sets the time source used to expand "--date today".
func WithClock(now func() time.Time) Option {
	return func(in *Interpreter) {
		if now != nil {
			in.now = now
		}
	}
}

// WithHugeFont sets the banner font used until a "--sethugefont" directive.
func WithHugeFont(name string) Option {
	return func(in *Interpreter) {
		if name != "" {
			in.state.HugeFont = name
		}
	}
}

// WithCommandRunner runs "--exec" arguments and renders their output.
func WithCommandRunner(r CommandRunner) Option {
	return func(in *Interpreter) {
		in.commands = r
	}
}

// WithBannerRenderer renders "--huge" text and feeds the result back as
// literal lines.
func WithBannerRenderer(b BannerRenderer) Option {
	return func(in *Interpreter) {
		in.banner = b
	}
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithPager makes the controller stop at every wait-for-input directive and
// at the end of every slide.
func WithPager(p Pager) ControllerOption {
	return func(c *Controller) {
		c.pager = p
	}
}
