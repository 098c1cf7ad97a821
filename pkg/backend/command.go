package backend

import (
	"context"
	"io"
	"os/exec"

	"clipbridge/pkg/errors"
)

// commandBackend shells out to an external clipboard tool, piping the
// payload through stdin or stdout.
type commandBackend struct {
	kind      Kind
	copyArgv  []string
	pasteArgv []string
}

// copyArgvFor returns the command line used to write the clipboard.
func copyArgvFor(kind Kind, primary bool) []string {
	switch kind {
	case KindWayland:
		if primary {
			return []string{"wl-copy", "--primary"}
		}
		return []string{"wl-copy"}
	case KindX11Xsel:
		return []string{"xsel", "--input", "--" + selection(primary)}
	case KindX11Xclip:
		return []string{"xclip", "-in", "-selection", selection(primary)}
	case KindDarwin:
		return []string{"pbcopy"}
	case KindTermux:
		return []string{"termux-clipboard-set"}
	case KindTmuxBuffer:
		return []string{"tmux", "load-buffer", "-"}
	default:
		return nil
	}
}

// pasteArgvFor returns the command line used to read the clipboard.
func pasteArgvFor(kind Kind, primary bool) []string {
	switch kind {
	case KindWayland:
		if primary {
			return []string{"wl-paste", "--no-newline", "--primary"}
		}
		return []string{"wl-paste", "--no-newline"}
	case KindX11Xsel:
		return []string{"xsel", "--output", "--" + selection(primary)}
	case KindX11Xclip:
		return []string{"xclip", "-out", "-selection", selection(primary)}
	case KindDarwin:
		return []string{"pbpaste"}
	case KindTermux:
		return []string{"termux-clipboard-get"}
	case KindTmuxBuffer:
		return []string{"tmux", "save-buffer", "-"}
	default:
		return nil
	}
}

func selection(primary bool) string {
	if primary {
		return "primary"
	}
	return "clipboard"
}

func newCommandBackend(kind Kind, primary bool) *commandBackend {
	return &commandBackend{
		kind:      kind,
		copyArgv:  copyArgvFor(kind, primary),
		pasteArgv: pasteArgvFor(kind, primary),
	}
}

func (b *commandBackend) Name() string {
	return b.kind.String()
}

func (b *commandBackend) Copy(ctx context.Context, r io.Reader) error {
	cmd := exec.CommandContext(ctx, b.copyArgv[0], b.copyArgv[1:]...)
	cmd.Stdin = r
	if err := cmd.Run(); err != nil {
		return runError(ctx, b.copyArgv[0], err)
	}
	return nil
}

func (b *commandBackend) Paste(ctx context.Context, w io.Writer) error {
	cmd := exec.CommandContext(ctx, b.pasteArgv[0], b.pasteArgv[1:]...)
	cmd.Stdout = w
	if err := cmd.Run(); err != nil {
		return runError(ctx, b.pasteArgv[0], err)
	}
	return nil
}

func runError(ctx context.Context, tool string, err error) error {
	if ctx.Err() == context.DeadlineExceeded {
		return errors.TimeoutError(tool)
	}
	if ctx.Err() == context.Canceled {
		return errors.CancelledError(tool)
	}
	return errors.ToolError(tool, err)
}
