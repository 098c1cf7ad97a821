package backend

import (
	"context"
	"io"
	"os"

	"clipbridge/pkg/errors"

	osc52 "github.com/aymanbagabas/go-osc52/v2"
)

// osc52Backend asks the terminal emulator itself to copy, via the OSC 52
// escape sequence. Inside tmux the sequence is wrapped in a passthrough
// envelope so the multiplexer forwards it instead of eating it. Copy-only:
// reading the clipboard back would require a raw-mode terminal dialogue.
type osc52Backend struct {
	kind   Kind
	screen bool
	out    io.Writer
}

func newOSC52Backend(kind Kind, opts Options) *osc52Backend {
	return &osc52Backend{
		kind:   kind,
		screen: opts.Screen,
		out:    opts.SequenceWriter,
	}
}

func (b *osc52Backend) Name() string {
	return b.kind.String()
}

func (b *osc52Backend) Copy(ctx context.Context, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return errors.NewWithError(errors.ExitCodeGeneral, "failed to read input", err)
	}

	seq := osc52.New(string(data))
	switch {
	case b.kind == KindOSC52Tmux:
		seq = seq.Mode(osc52.TmuxMode)
	case b.screen:
		seq = seq.Mode(osc52.ScreenMode)
	}

	out, cleanup := b.writer()
	defer cleanup()
	if _, err := seq.WriteTo(out); err != nil {
		return errors.NewWithError(errors.ExitCodeToolFailed, "failed to emit escape sequence", err)
	}
	return nil
}

func (b *osc52Backend) Paste(ctx context.Context, w io.Writer) error {
	return errors.UnsupportedError("paste", b.kind.String())
}

// writer picks where the sequence goes: an injected writer, the controlling
// terminal, or stdout when /dev/tty cannot be opened.
func (b *osc52Backend) writer() (io.Writer, func()) {
	if b.out != nil {
		return b.out, func() {}
	}
	tty, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
	if err != nil {
		return os.Stdout, func() {}
	}
	return tty, func() { tty.Close() }
}
