package backend

import (
	"context"
	"io"

	"clipbridge/pkg/errors"

	atotto "github.com/atotto/clipboard"
)

// systemBackend uses the atotto library clipboard. It is the whole story on
// Windows and a last resort elsewhere.
type systemBackend struct{}

func (b *systemBackend) Name() string {
	return KindSystem.String()
}

func (b *systemBackend) Copy(ctx context.Context, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return errors.NewWithError(errors.ExitCodeGeneral, "failed to read input", err)
	}
	if err := atotto.WriteAll(string(data)); err != nil {
		return errors.NewWithError(errors.ExitCodeToolFailed, errors.ErrMsgCopyFailed, err)
	}
	return nil
}

func (b *systemBackend) Paste(ctx context.Context, w io.Writer) error {
	text, err := atotto.ReadAll()
	if err != nil {
		return errors.NewWithError(errors.ExitCodeToolFailed, errors.ErrMsgPasteFailed, err)
	}
	if _, err := io.WriteString(w, text); err != nil {
		return errors.NewWithError(errors.ExitCodeGeneral, "failed to write output", err)
	}
	return nil
}
