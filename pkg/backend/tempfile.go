package backend

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"clipbridge/pkg/errors"

	"github.com/google/uuid"
)

const bufferFileName = "clipbridge.buf"

// tempFileBackend keeps the payload in a file under the temp directory.
// It is the last resort when no clipboard mechanism exists, and the paste
// side of the copy-only OSC 52 kinds.
type tempFileBackend struct {
	path string
}

func newTempFileBackend(path string) *tempFileBackend {
	if path == "" {
		path = filepath.Join(os.TempDir(), bufferFileName)
	}
	return &tempFileBackend{path: path}
}

func (b *tempFileBackend) Name() string {
	return KindTempFile.String()
}

func (b *tempFileBackend) Path() string {
	return b.path
}

// Copy writes to a uniquely named sibling first and renames it over the
// buffer path, so a concurrent paste never sees a half-written file.
func (b *tempFileBackend) Copy(ctx context.Context, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return errors.NewWithError(errors.ExitCodeGeneral, "failed to read input", err)
	}

	tmp := b.path + "." + uuid.NewString()
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return errors.NewWithError(errors.ExitCodeFileOperation, "failed to write clipboard buffer", err)
	}
	if err := os.Rename(tmp, b.path); err != nil {
		os.Remove(tmp)
		return errors.NewWithError(errors.ExitCodeFileOperation, "failed to replace clipboard buffer", err)
	}
	return nil
}

func (b *tempFileBackend) Paste(ctx context.Context, w io.Writer) error {
	f, err := os.Open(b.path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.NewWithSuggestion(errors.ExitCodeFileOperation,
				"clipboard buffer is empty",
				"Nothing has been copied yet on this host.")
		}
		return errors.NewWithError(errors.ExitCodeFileOperation, "failed to open clipboard buffer", err)
	}
	defer f.Close()

	if _, err := io.Copy(w, f); err != nil {
		return errors.NewWithError(errors.ExitCodeGeneral, "failed to write output", err)
	}
	return nil
}
