package backend

import (
	"context"
	"fmt"
	"io"

	"clipbridge/pkg/errors"
)

// Backend moves bytes between a stream and one clipboard mechanism.
type Backend interface {
	Name() string
	Copy(ctx context.Context, r io.Reader) error
	Paste(ctx context.Context, w io.Writer) error
}

// Options tune how a backend is constructed.
type Options struct {
	// Primary selects the X11 PRIMARY selection where the tool supports it.
	Primary bool
	// BufferPath overrides the temp-file buffer location.
	BufferPath string
	// Screen enables OSC 52 chunking for screen-style terminals.
	Screen bool
	// SequenceWriter overrides where OSC 52 sequences are written.
	// When nil the backend writes to /dev/tty, falling back to stdout.
	SequenceWriter io.Writer
}

// New constructs the backend for a kind.
func New(kind Kind, opts Options) (Backend, error) {
	switch kind {
	case KindWayland, KindX11Xsel, KindX11Xclip, KindDarwin, KindTermux, KindTmuxBuffer:
		return newCommandBackend(kind, opts.Primary), nil
	case KindSystem:
		return &systemBackend{}, nil
	case KindTempFile:
		return newTempFileBackend(opts.BufferPath), nil
	case KindOSC52, KindOSC52Tmux:
		return newOSC52Backend(kind, opts), nil
	default:
		return nil, errors.ValidationError(fmt.Sprintf("no backend for kind '%s'", kind))
	}
}
