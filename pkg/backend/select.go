package backend

import (
	"clipbridge/pkg/detect"
	"clipbridge/pkg/errors"
)

// Select maps a probe to the clipboard mechanism to use. It is a pure
// function: no I/O, same probe in, same kind out. First match wins:
//
//  1. macOS always has pbcopy/pbpaste.
//  2. A Wayland session with wl-clipboard installed.
//  3. An X11 display with xsel, then xclip.
//  4. Termux's clipboard tools.
//  5. Windows via the library clipboard.
//  6. A tmux session's paste buffer.
//  7. OSC 52 when a terminal is reachable (tmux-wrapped inside tmux).
//     Copy-only; callers pasting must fall back to the temp-file buffer.
//  8. The temp-file buffer.
func Select(p detect.Probe) Kind {
	switch {
	case p.GOOS == "darwin":
		return KindDarwin
	case p.Wayland && p.HasTool(detect.ToolWlCopy):
		return KindWayland
	case p.X11 && p.HasTool(detect.ToolXsel):
		return KindX11Xsel
	case p.X11 && p.HasTool(detect.ToolXclip):
		return KindX11Xclip
	case p.HasTool(detect.ToolTermuxSet) && p.HasTool(detect.ToolTermuxGet):
		return KindTermux
	case p.GOOS == "windows":
		return KindSystem
	case p.Tmux && p.HasTool(detect.ToolTmux):
		return KindTmuxBuffer
	case p.Terminal && p.Tmux:
		return KindOSC52Tmux
	case p.Terminal:
		return KindOSC52
	default:
		return KindTempFile
	}
}

// ForPaste returns the kind to paste from given the selected kind.
// OSC 52 cannot read the clipboard back, so paste falls through to the
// temp-file buffer, which is also where copy mirrors its payload when an
// OSC 52 kind is selected.
func ForPaste(k Kind) Kind {
	if k.IsOSC52() {
		return KindTempFile
	}
	return k
}

// Resolve applies a user override on top of the probed selection. An empty
// override means auto-detection. An override naming a tool that is not on
// the path is an error.
func Resolve(p detect.Probe, override string) (Kind, error) {
	if override == "" {
		return Select(p), nil
	}

	kind, err := ParseKind(override)
	if err != nil {
		return KindNone, err
	}

	if tool, ok := requiredTool(kind); ok && !p.HasTool(tool) {
		return KindNone, errors.BackendUnavailableError(kind.String(), tool)
	}
	if kind == KindOSC52 && p.Tmux {
		return KindOSC52Tmux, nil
	}
	return kind, nil
}

// requiredTool names the binary an overridden kind depends on.
func requiredTool(k Kind) (string, bool) {
	switch k {
	case KindWayland:
		return detect.ToolWlCopy, true
	case KindX11Xsel:
		return detect.ToolXsel, true
	case KindX11Xclip:
		return detect.ToolXclip, true
	case KindDarwin:
		return detect.ToolPbcopy, true
	case KindTermux:
		return detect.ToolTermuxSet, true
	case KindTmuxBuffer:
		return detect.ToolTmux, true
	default:
		return "", false
	}
}
