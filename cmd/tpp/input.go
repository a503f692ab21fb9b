package main

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/term"
	"pkt.systems/tpp"
)

// loadDocument parses a presentation from a path, a file:// URL, an
// http(s) URL or "-" for stdin.
func loadDocument(ctx context.Context, raw string, opts ...tpp.ParseOption) (*tpp.Document, error) {
	raw = strings.TrimSpace(raw)
	if u, err := url.Parse(raw); err == nil {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return tpp.ParseURL(ctx, nil, raw, opts...)
		}
	}
	in, err := openInput(raw)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer func() { _ = in.Close() }()
	return tpp.Parse(in, opts...)
}

func openInput(raw string) (io.ReadCloser, error) {
	if raw == "" {
		return nil, fmt.Errorf("empty input argument")
	}
	if raw == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	u, err := url.Parse(raw)
	if err == nil && strings.EqualFold(u.Scheme, "file") {
		path := u.Path
		if path == "" {
			path = u.Host
		}
		if unescaped, err := url.PathUnescape(path); err == nil {
			path = unescaped
		}
		return openFile(path)
	}
	return openFile(raw)
}

func openFile(path string) (io.ReadCloser, error) {
	f, err := os.Open(normalizePath(path))
	if err != nil {
		return nil, err
	}
	return f, nil
}

// resolveOutput creates the handout file, making parent directories. "-"
// writes to stdout.
func resolveOutput(path string, stdout io.Writer) (io.WriteCloser, error) {
	if strings.TrimSpace(path) == "-" {
		return nopWriteCloser{stdout}, nil
	}
	clean := normalizePath(path)
	if err := os.MkdirAll(filepath.Dir(clean), 0o755); err != nil {
		return nil, err
	}
	f, err := os.Create(clean)
	if err != nil {
		return nil, err
	}
	return f, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// normalizePath expands a leading "~" or "~/" to the home directory and
// makes the result absolute.
func normalizePath(path string) string {
	if rest, ok := strings.CutPrefix(path, "~"); ok && (rest == "" || strings.HasPrefix(rest, "/")) {
		if home, err := os.UserHomeDir(); err == nil {
			path = home + rest
		}
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// resolveWidth returns width when positive, else the terminal width of w,
// else $COLUMNS, else fallback.
func resolveWidth(width int, w io.Writer, fallback int) int {
	if width > 0 {
		return width
	}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols > 0 {
			return cols
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if cols, err := strconv.Atoi(value); err == nil && cols > 0 {
			return cols
		}
	}
	return fallback
}
