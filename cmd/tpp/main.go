package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/pflag"
	"pkt.systems/tpp"
	"pkt.systems/tpp/screen"
	"pkt.systems/tpp/shell"
	"pkt.systems/tpp/text"
	"pkt.systems/version"
)

const (
	defaultWidth = 80

	typeText    = "text"
	typeNcurses = "ncurses"
)

func init() {
	version.SetDefaultModule("pkt.systems/tpp")
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var (
		configFile  string
		showVersion bool
	)
	flags := pflag.NewFlagSet("tpp", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringP("type", "t", typeText, "Output type: text|ncurses")
	flags.StringP("output", "o", "", "Handout file, - for stdout (required for text output)")
	flags.IntP("width", "w", defaultWidth, "Handout width (0 uses terminal width if available)")
	flags.Bool("ansi", false, "Emit ANSI emphasis in text output")
	flags.Bool("exec", false, "Run --exec commands in text output")
	flags.String("figlet", "figlet", "Banner program for --huge")
	flags.String("figlet-font", "", "Initial banner font")
	flags.String("shell", "/bin/sh", "Shell for --exec commands")
	flags.Bool("keep-trailing-slide", true, "Keep a final slide that has no closing --newpage")
	flags.String("log", "", "Log file (default stderr; discarded in ncurses mode)")
	flags.String("log-level", "warn", "Log level: debug|info|warn|error")
	flags.StringVar(&configFile, "config", "", "Config file (default ./tpp.yaml or ~/.config/tpp/tpp.yaml)")
	flags.BoolVar(&showVersion, "version", false, "Print version and exit")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(stderr, version.Module(), version.Current())
		fmt.Fprintf(stderr, "Usage: tpp [flags] <input>\n")
		fmt.Fprintln(stderr, "\nInput is a path, a file:// or http(s):// URL, or - for stdin.")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 1
	}
	if showVersion {
		fmt.Fprintln(stdout, version.Module(), version.Current())
		return 0
	}
	if flags.NArg() != 1 {
		flags.Usage()
		return 1
	}

	cfg, err := loadSettings(flags, configFile)
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return 1
	}
	switch cfg.Type {
	case typeText:
	case typeNcurses, "terminal", "interactive":
		cfg.Type = typeNcurses
	default:
		fmt.Fprintf(stderr, "unknown type %q: expected text or ncurses\n", cfg.Type)
		return 1
	}
	if cfg.Type == typeText && strings.TrimSpace(cfg.Output) == "" {
		fmt.Fprintln(stderr, "text output needs -o/--output")
		return 1
	}
	if cfg.Type == typeNcurses && !isTerminal(stdout) {
		fmt.Fprintln(stderr, "ncurses output needs a terminal on stdout")
		return 1
	}

	logger, closeLog, err := newLogger(cfg, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "log: %v\n", err)
		return 1
	}
	if closeLog != nil {
		defer func() { _ = closeLog.Close() }()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	doc, err := loadDocument(ctx, flags.Arg(0), tpp.WithTrailingSlide(cfg.KeepTrailing))
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	logger.Debug("parsed", "input", flags.Arg(0), "slides", doc.Len())

	runner := shell.New(shell.Config{Shell: cfg.Shell, Figlet: cfg.Figlet, Logger: logger})
	hasFiglet := runner.Available()
	if !hasFiglet {
		logger.Info("banner program not found; --huge text is not rendered as a banner", "program", cfg.Figlet)
	}

	if cfg.Type == typeNcurses {
		err = playScreen(ctx, doc, cfg, runner, hasFiglet, logger)
	} else {
		err = writeHandout(ctx, doc, cfg, runner, hasFiglet, logger, stdout)
	}
	if err != nil {
		fmt.Fprintf(stderr, "render: %v\n", err)
		return 1
	}
	return 0
}

func interpreterOptions(cfg settings, runner *shell.Runner, hasFiglet, exec bool) []tpp.Option {
	opts := []tpp.Option{tpp.WithHugeFont(cfg.FigletFont)}
	if exec {
		opts = append(opts, tpp.WithCommandRunner(runner))
	}
	if hasFiglet {
		opts = append(opts, tpp.WithBannerRenderer(runner))
	}
	return opts
}

func writeHandout(ctx context.Context, doc *tpp.Document, cfg settings, runner *shell.Runner, hasFiglet bool, logger *slog.Logger, stdout io.Writer) error {
	out, err := resolveOutput(cfg.Output, stdout)
	if err != nil {
		return fmt.Errorf("open output: %w", err)
	}
	r := text.New(out, text.Config{
		Width:  resolveWidth(cfg.Width, stdout, defaultWidth),
		ANSI:   cfg.ANSI,
		Logger: logger,
	})
	in := tpp.NewInterpreter(r, interpreterOptions(cfg, runner, hasFiglet, cfg.Exec)...)
	runErr := tpp.NewController(doc, in, r).Run(ctx)
	closeErr := r.Close()
	fileErr := out.Close()
	return errors.Join(runErr, closeErr, fileErr)
}

func playScreen(ctx context.Context, doc *tpp.Document, cfg settings, runner *shell.Runner, hasFiglet bool, logger *slog.Logger) error {
	p, err := screen.New(screen.Config{HugeFallback: !hasFiglet, Logger: logger})
	if err != nil {
		return err
	}
	in := tpp.NewInterpreter(p, interpreterOptions(cfg, runner, hasFiglet, true)...)
	runErr := tpp.NewController(doc, in, p, tpp.WithPager(p)).Run(ctx)
	closeErr := p.Close()
	if errors.Is(runErr, context.Canceled) {
		runErr = nil
	}
	return errors.Join(runErr, closeErr)
}

// newLogger writes to the --log file when set, else to stderr in text mode.
// The screen owns the terminal in ncurses mode, so logs are discarded there.
func newLogger(cfg settings, stderr io.Writer) (*slog.Logger, io.Closer, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q", cfg.LogLevel)
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(normalizePath(cfg.LogFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		return slog.New(slog.NewTextHandler(f, opts)), f, nil
	}
	if cfg.Type == typeNcurses {
		return slog.New(slog.NewTextHandler(io.Discard, opts)), nil, nil
	}
	return slog.New(slog.NewTextHandler(stderr, opts)), nil, nil
}
