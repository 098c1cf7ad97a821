// Package bridge wires the probe, the selector, and the backends into the
// two operations the tool performs: copy (stdin to clipboard) and paste
// (clipboard to stdout).
package bridge

import (
	"bytes"
	"context"
	"io"

	"clipbridge/pkg/backend"
	"clipbridge/pkg/config"
	"clipbridge/pkg/detect"
	"clipbridge/pkg/errors"
	"clipbridge/pkg/logger"
)

// Service dispatches clipboard operations for one process invocation.
type Service struct {
	cfg      *config.Config
	probe    detect.Probe
	override string
	seq      io.Writer
}

// New builds a service. The override (from the --backend flag) takes
// precedence over the config's backend, which already reflects the
// CLIPBRIDGE_BACKEND environment variable.
func New(cfg *config.Config, probe detect.Probe, override string) *Service {
	if override == "" {
		override = cfg.Backend
	}
	return &Service{
		cfg:      cfg,
		probe:    probe,
		override: override,
	}
}

// Selected resolves the backend kind that copy would use.
func (s *Service) Selected() (backend.Kind, error) {
	return backend.Resolve(s.probe, s.override)
}

// Probe returns the environment snapshot selection runs against.
func (s *Service) Probe() detect.Probe {
	return s.probe
}

func (s *Service) options() backend.Options {
	return backend.Options{
		Primary:        s.cfg.Primary,
		BufferPath:     s.cfg.BufferPath,
		Screen:         s.probe.Screen,
		SequenceWriter: s.seq,
	}
}

// toolContext bounds one external-tool invocation. The window opens here,
// never around stdin: a slow producer on the pipe must not charge against
// the tool's budget.
func (s *Service) toolContext(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := s.cfg.Timeout
	if timeout <= 0 {
		timeout = config.DefaultTimeout
	}
	return context.WithTimeout(ctx, timeout)
}

// Copy reads the whole input and hands it to the selected backend. Over a
// remote session (or with osc52: always) it additionally emits the OSC 52
// escape sequence so the local terminal emulator picks up the copy too.
func (s *Service) Copy(ctx context.Context, r io.Reader) error {
	kind, err := s.Selected()
	if err != nil {
		return err
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return errors.NewWithError(errors.ExitCodeGeneral, "failed to read input", err)
	}

	ctx, cancel := s.toolContext(ctx)
	defer cancel()

	logger.Debug().
		Str("backend", kind.String()).
		Int("bytes", len(data)).
		Msg("copying")

	if kind.IsOSC52() {
		// Escape sequences cannot be read back; mirror the payload into
		// the temp-file buffer so paste round-trips on this host.
		if err := s.runCopy(ctx, backend.KindTempFile, data); err != nil {
			return err
		}
		return s.runCopy(ctx, kind, data)
	}

	if err := s.runCopy(ctx, kind, data); err != nil {
		return err
	}

	if s.osc52Layer() {
		layerKind := backend.KindOSC52
		if s.probe.Tmux {
			layerKind = backend.KindOSC52Tmux
		}
		if err := s.runCopy(ctx, layerKind, data); err != nil {
			// The primary copy succeeded; a failed escape emission is
			// not worth a non-zero exit.
			logger.Warn().Err(err).Msg("osc52 emission failed")
		}
	}

	return nil
}

// Paste writes the clipboard to w. The OSC 52 kinds paste from the
// temp-file buffer mirror.
func (s *Service) Paste(ctx context.Context, w io.Writer) error {
	kind, err := s.Selected()
	if err != nil {
		return err
	}
	kind = backend.ForPaste(kind)

	ctx, cancel := s.toolContext(ctx)
	defer cancel()

	logger.Debug().
		Str("backend", kind.String()).
		Msg("pasting")

	b, err := backend.New(kind, s.options())
	if err != nil {
		return err
	}

	if !s.cfg.Trim {
		return b.Paste(ctx, w)
	}

	var buf bytes.Buffer
	if err := b.Paste(ctx, &buf); err != nil {
		return err
	}
	out := buf.Bytes()
	out = bytes.TrimSuffix(out, []byte("\n"))
	out = bytes.TrimSuffix(out, []byte("\r"))
	if _, err := w.Write(out); err != nil {
		return errors.NewWithError(errors.ExitCodeGeneral, "failed to write output", err)
	}
	return nil
}

func (s *Service) runCopy(ctx context.Context, kind backend.Kind, data []byte) error {
	b, err := backend.New(kind, s.options())
	if err != nil {
		return err
	}
	return b.Copy(ctx, bytes.NewReader(data))
}

// osc52Layer decides whether to layer the escape sequence on top of the
// primary copy backend.
func (s *Service) osc52Layer() bool {
	switch s.cfg.OSC52 {
	case config.OSC52Never:
		return false
	case config.OSC52Always:
		return s.probe.Terminal
	default: // auto
		return s.probe.Remote && s.probe.Terminal
	}
}
