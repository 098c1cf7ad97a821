// Package backend maps a probed environment to a clipboard mechanism and
// provides the mechanisms themselves: external tools (wl-copy, xsel, xclip,
// pbcopy, tmux, termux), the atotto library clipboard, a temp-file buffer,
// and OSC 52 escape sequences.
package backend

import (
	"clipbridge/pkg/errors"
)

// Kind identifies one clipboard mechanism.
type Kind int

const (
	KindNone Kind = iota
	KindWayland
	KindX11Xsel
	KindX11Xclip
	KindDarwin
	KindTermux
	KindTmuxBuffer
	KindSystem
	KindTempFile
	KindOSC52
	KindOSC52Tmux
)

var kindNames = map[Kind]string{
	KindNone:       "none",
	KindWayland:    "wl-clipboard",
	KindX11Xsel:    "xsel",
	KindX11Xclip:   "xclip",
	KindDarwin:     "pbcopy",
	KindTermux:     "termux",
	KindTmuxBuffer: "tmux-buffer",
	KindSystem:     "system",
	KindTempFile:   "temp-file",
	KindOSC52:      "osc52",
	KindOSC52Tmux:  "osc52-tmux",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// IsOSC52 reports whether the kind is an escape-sequence mechanism.
// These are copy-only.
func (k Kind) IsOSC52() bool {
	return k == KindOSC52 || k == KindOSC52Tmux
}

// Names returns the user-selectable backend names in priority order.
// The OSC 52 kinds are selectable as plain "osc52"; the tmux wrapping is
// decided by the environment, not the user.
func Names() []string {
	return []string{
		kindNames[KindDarwin],
		kindNames[KindWayland],
		kindNames[KindX11Xsel],
		kindNames[KindX11Xclip],
		kindNames[KindTermux],
		kindNames[KindSystem],
		kindNames[KindTmuxBuffer],
		kindNames[KindOSC52],
		kindNames[KindTempFile],
	}
}

// ParseKind resolves a user-supplied backend name.
func ParseKind(name string) (Kind, error) {
	for kind, n := range kindNames {
		if kind == KindNone || kind == KindOSC52Tmux {
			continue
		}
		if n == name {
			return kind, nil
		}
	}
	return KindNone, errors.UnknownBackendError(name, Names())
}
