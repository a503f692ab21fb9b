// Package shell runs the external programs a presentation asks for: shell
// command lines for "--exec" and figlet for "--huge".
//
// Runner satisfies tpp.CommandRunner and tpp.BannerRenderer. Calls are
// synchronous and bounded only by the context supplied by the caller.
package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strconv"
	"strings"
)

const (
	defaultShell  = "/bin/sh"
	defaultFiglet = "figlet"
)

// exitCoder is satisfied by *exec.ExitError.
type exitCoder interface {
	ExitCode() int
}

// executor abstracts process execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	Run(ctx context.Context, name string, args []string, stdout, stderr io.Writer) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct {
	dir string
	env []string
}

func (o osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o osExecutor) Run(ctx context.Context, name string, args []string, stdout, stderr io.Writer) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = o.dir
	if len(o.env) > 0 {
		cmd.Env = o.env
	}
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}

// Config holds Runner settings. Zero values select the defaults.
type Config struct {
	// Shell interprets "--exec" command lines with "-c".
	Shell string
	// Figlet is the banner program, looked up on PATH.
	Figlet string
	// Dir is the working directory for every program.
	Dir string
	// Env replaces the environment when non-empty.
	Env    []string
	Logger *slog.Logger
}

// Runner executes shell command lines and figlet banners.
type Runner struct {
	cfg  Config
	exec executor
	log  *slog.Logger
}

// New returns a Runner for cfg.
func New(cfg Config) *Runner {
	if cfg.Shell == "" {
		cfg.Shell = defaultShell
	}
	if cfg.Figlet == "" {
		cfg.Figlet = defaultFiglet
	}
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Runner{cfg: cfg, exec: osExecutor{dir: cfg.Dir, env: cfg.Env}, log: log}
}

// Command runs cmdline through the configured shell and returns its stdout.
// The exit status is logged, not returned; only a program that could not be
// started is an error.
func (r *Runner) Command(ctx context.Context, cmdline string) ([]string, error) {
	r.log.Debug("exec", "shell", r.cfg.Shell, "cmdline", cmdline)
	return r.run(ctx, r.cfg.Shell, []string{"-c", cmdline})
}

// Banner renders text with figlet using font at the given width.
func (r *Runner) Banner(ctx context.Context, font string, width int, text string) ([]string, error) {
	args := []string{"-C", "utf8"}
	if font != "" {
		args = append(args, "-f", font)
	}
	if width > 0 {
		args = append(args, "-w", strconv.Itoa(width))
	}
	args = append(args, text)
	r.log.Debug("banner", "program", r.cfg.Figlet, "font", font, "width", width)
	return r.run(ctx, r.cfg.Figlet, args)
}

// Available reports whether the banner program can be found.
func (r *Runner) Available() bool {
	_, err := r.exec.LookPath(r.cfg.Figlet)
	return err == nil
}

func (r *Runner) run(ctx context.Context, name string, args []string) ([]string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	var stdout, stderr bytes.Buffer
	err := r.exec.Run(ctx, name, args, &stdout, &stderr)
	lines := SplitLines(stdout.String())
	if err == nil {
		return lines, nil
	}
	var exitErr exitCoder
	if errors.As(err, &exitErr) {
		r.log.Warn("program exited nonzero", "program", name, "code", exitErr.ExitCode(), "stderr", strings.TrimSpace(stderr.String()))
		return lines, nil
	}
	return lines, fmt.Errorf("shell: run %s: %w", name, err)
}

// SplitLines splits program output into lines. One trailing newline is
// dropped, as are carriage returns before newlines.
func SplitLines(out string) []string {
	if out == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
