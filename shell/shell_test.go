package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"reflect"
	"testing"
)

type fakeExecutor struct {
	stdout string
	stderr string
	err    error
	name   string
	args   []string
	paths  map[string]bool
}

func (f *fakeExecutor) LookPath(file string) (string, error) {
	if f.paths[file] {
		return "/usr/bin/" + file, nil
	}
	return "", exec.ErrNotFound
}

func (f *fakeExecutor) Run(_ context.Context, name string, args []string, stdout, stderr io.Writer) error {
	f.name = name
	f.args = args
	io.WriteString(stdout, f.stdout)
	io.WriteString(stderr, f.stderr)
	return f.err
}

func newFakeRunner(cfg Config, fx *fakeExecutor) *Runner {
	r := New(cfg)
	r.exec = fx
	return r
}

func TestCommandRunsThroughShell(t *testing.T) {
	fx := &fakeExecutor{stdout: "one\ntwo\n"}
	r := newFakeRunner(Config{}, fx)
	lines, err := r.Command(context.Background(), "echo one; echo two")
	if err != nil {
		t.Fatalf("Command: %v", err)
	}
	if fx.name != defaultShell {
		t.Fatalf("shell = %q, want %q", fx.name, defaultShell)
	}
	if want := []string{"-c", "echo one; echo two"}; !reflect.DeepEqual(fx.args, want) {
		t.Fatalf("args = %q, want %q", fx.args, want)
	}
	if want := []string{"one", "two"}; !reflect.DeepEqual(lines, want) {
		t.Fatalf("lines = %q, want %q", lines, want)
	}
}

func TestCommandCustomShell(t *testing.T) {
	fx := &fakeExecutor{}
	r := newFakeRunner(Config{Shell: "/bin/bash"}, fx)
	lines, err := r.Command(context.Background(), "true")
	if err != nil {
		t.Fatalf("Command: %v", err)
	}
	if fx.name != "/bin/bash" {
		t.Fatalf("shell = %q", fx.name)
	}
	if lines != nil {
		t.Fatalf("expected no lines, got %q", lines)
	}
}

func TestCommandErrorKeepsOutput(t *testing.T) {
	fx := &fakeExecutor{stdout: "partial\n", err: errors.New("boom")}
	r := newFakeRunner(Config{}, fx)
	lines, err := r.Command(context.Background(), "x")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, fx.err) {
		t.Fatalf("error %v does not wrap the executor error", err)
	}
	if want := []string{"partial"}; !reflect.DeepEqual(lines, want) {
		t.Fatalf("lines = %q, want %q", lines, want)
	}
}

func TestBannerArguments(t *testing.T) {
	fx := &fakeExecutor{stdout: " _ \n|_|\n"}
	r := newFakeRunner(Config{}, fx)
	lines, err := r.Banner(context.Background(), "big", 78, "Hi")
	if err != nil {
		t.Fatalf("Banner: %v", err)
	}
	if fx.name != defaultFiglet {
		t.Fatalf("program = %q", fx.name)
	}
	want := []string{"-C", "utf8", "-f", "big", "-w", "78", "Hi"}
	if !reflect.DeepEqual(fx.args, want) {
		t.Fatalf("args = %q, want %q", fx.args, want)
	}
	if len(lines) != 2 || lines[1] != "|_|" {
		t.Fatalf("lines = %q", lines)
	}
}

func TestBannerOmitsEmptyFontAndWidth(t *testing.T) {
	fx := &fakeExecutor{}
	r := newFakeRunner(Config{Figlet: "toilet"}, fx)
	if _, err := r.Banner(context.Background(), "", 0, "x"); err != nil {
		t.Fatalf("Banner: %v", err)
	}
	if fx.name != "toilet" {
		t.Fatalf("program = %q", fx.name)
	}
	if want := []string{"-C", "utf8", "x"}; !reflect.DeepEqual(fx.args, want) {
		t.Fatalf("args = %q, want %q", fx.args, want)
	}
}

func TestAvailable(t *testing.T) {
	fx := &fakeExecutor{paths: map[string]bool{"figlet": true}}
	if !newFakeRunner(Config{}, fx).Available() {
		t.Fatalf("figlet should be available")
	}
	if newFakeRunner(Config{Figlet: "nope"}, fx).Available() {
		t.Fatalf("nope should not be available")
	}
}

func TestSplitLines(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"\n", []string{""}},
		{"a", []string{"a"}},
		{"a\n", []string{"a"}},
		{"a\r\nb\r\n", []string{"a", "b"}},
		{"a\n\nb\n", []string{"a", "", "b"}},
	}
	for _, tc := range cases {
		got := SplitLines(tc.in)
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("SplitLines(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

type exitStatus int

func (e exitStatus) Error() string { return fmt.Sprintf("exit status %d", int(e)) }
func (e exitStatus) ExitCode() int { return int(e) }

func TestCommandNonzeroExitKeepsOutput(t *testing.T) {
	fx := &fakeExecutor{stdout: "partial\n", stderr: "no match\n", err: fmt.Errorf("wait: %w", exitStatus(1))}
	r := newFakeRunner(Config{}, fx)
	lines, err := r.Command(context.Background(), "echo partial; exit 1")
	if err != nil {
		t.Fatalf("nonzero exit should not be an error, got %v", err)
	}
	if want := []string{"partial"}; !reflect.DeepEqual(lines, want) {
		t.Fatalf("lines = %q, want %q", lines, want)
	}
}

func TestBannerNonzeroExitKeepsOutput(t *testing.T) {
	fx := &fakeExecutor{stdout: "#\n", err: exitStatus(2)}
	r := newFakeRunner(Config{}, fx)
	lines, err := r.Banner(context.Background(), "nosuchfont", 80, "x")
	if err != nil {
		t.Fatalf("Banner: %v", err)
	}
	if len(lines) != 1 || lines[0] != "#" {
		t.Fatalf("lines = %q", lines)
	}
}
