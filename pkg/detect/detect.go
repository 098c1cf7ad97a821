// Package detect probes the host environment for everything the backend
// selector needs: display server, terminal multiplexer, remote-session
// markers, and which clipboard binaries are on the search path.
package detect

import (
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/mattn/go-isatty"
)

// Binaries the selector cares about.
const (
	ToolWlCopy    = "wl-copy"
	ToolWlPaste   = "wl-paste"
	ToolXsel      = "xsel"
	ToolXclip     = "xclip"
	ToolPbcopy    = "pbcopy"
	ToolPbpaste   = "pbpaste"
	ToolTmux      = "tmux"
	ToolTermuxSet = "termux-clipboard-set"
	ToolTermuxGet = "termux-clipboard-get"
)

var allTools = []string{
	ToolWlCopy, ToolWlPaste,
	ToolXsel, ToolXclip,
	ToolPbcopy, ToolPbpaste,
	ToolTmux,
	ToolTermuxSet, ToolTermuxGet,
}

// Probe is a snapshot of the host environment. It is plain data so the
// selector stays a pure function over it.
type Probe struct {
	GOOS    string
	Wayland bool
	X11     bool
	Tmux    bool
	Screen  bool
	Remote  bool
	// Terminal reports whether an interactive terminal is reachable for
	// escape-sequence output (stdout is a tty or /dev/tty opens).
	Terminal bool

	tools map[string]bool
}

// HasTool reports whether the named binary was found on the search path.
func (p Probe) HasTool(name string) bool {
	return p.tools[name]
}

// Tools returns the probed binaries in a stable order.
func (p Probe) Tools() []string {
	return allTools
}

// Option overrides a Probe input, used by tests to permute environments
// without a real display or installed tools.
type Option func(*prober)

type prober struct {
	getenv   func(string) string
	lookPath func(string) (string, error)
	terminal func() bool
}

func WithGetenv(fn func(string) string) Option {
	return func(p *prober) { p.getenv = fn }
}

func WithLookPath(fn func(string) (string, error)) Option {
	return func(p *prober) { p.lookPath = fn }
}

func WithTerminal(fn func() bool) Option {
	return func(p *prober) { p.terminal = fn }
}

// New probes the current environment.
func New(opts ...Option) Probe {
	return NewForOS(runtime.GOOS, opts...)
}

// NewForOS probes as if running on the given GOOS.
func NewForOS(goos string, opts ...Option) Probe {
	pr := &prober{
		getenv:   os.Getenv,
		lookPath: exec.LookPath,
		terminal: terminalReachable,
	}
	for _, opt := range opts {
		opt(pr)
	}

	probe := Probe{
		GOOS:     goos,
		Wayland:  pr.isWayland(),
		X11:      pr.getenv("DISPLAY") != "",
		Tmux:     pr.getenv("TMUX") != "",
		Screen:   strings.HasPrefix(pr.getenv("TERM"), "screen"),
		Remote:   pr.isRemote(),
		Terminal: pr.terminal(),
		tools:    make(map[string]bool, len(allTools)),
	}
	for _, tool := range allTools {
		_, err := pr.lookPath(tool)
		probe.tools[tool] = err == nil
	}
	return probe
}

func (pr *prober) isWayland() bool {
	if strings.TrimSpace(pr.getenv("WAYLAND_DISPLAY")) != "" {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(pr.getenv("XDG_SESSION_TYPE")), "wayland")
}

// isRemote detects an ssh session from the variables sshd sets for its
// children. Any one of them is enough.
func (pr *prober) isRemote() bool {
	return pr.getenv("SSH_TTY") != "" ||
		pr.getenv("SSH_CLIENT") != "" ||
		pr.getenv("SSH_CONNECTION") != ""
}

func terminalReachable() bool {
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return true
	}
	tty, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
	if err != nil {
		return false
	}
	tty.Close()
	return true
}

// StdinIsTerminal reports whether stdin is attached to a terminal. The
// dispatcher uses it to choose between copy and paste.
func StdinIsTerminal() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}
