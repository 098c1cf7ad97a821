package backend

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTempFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clip.buf")
	b := newTempFileBackend(path)
	ctx := context.Background()

	payload := "hello\nclipboard\x00 bytes"
	if err := b.Copy(ctx, strings.NewReader(payload)); err != nil {
		t.Fatalf("Copy() returned error: %v", err)
	}

	var out bytes.Buffer
	if err := b.Paste(ctx, &out); err != nil {
		t.Fatalf("Paste() returned error: %v", err)
	}

	if out.String() != payload {
		t.Errorf("Paste() = %q, want %q", out.String(), payload)
	}
}

func TestTempFile_Overwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clip.buf")
	b := newTempFileBackend(path)
	ctx := context.Background()

	for _, payload := range []string{"first", "second"} {
		if err := b.Copy(ctx, strings.NewReader(payload)); err != nil {
			t.Fatalf("Copy(%q) returned error: %v", payload, err)
		}
	}

	var out bytes.Buffer
	if err := b.Paste(ctx, &out); err != nil {
		t.Fatalf("Paste() returned error: %v", err)
	}
	if out.String() != "second" {
		t.Errorf("Paste() = %q, want %q", out.String(), "second")
	}
}

func TestTempFile_Mode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clip.buf")
	b := newTempFileBackend(path)

	if err := b.Copy(context.Background(), strings.NewReader("secret")); err != nil {
		t.Fatalf("Copy() returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() returned error: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("buffer mode = %o, want %o", perm, 0600)
	}
}

func TestTempFile_NoStrayFiles(t *testing.T) {
	dir := t.TempDir()
	b := newTempFileBackend(filepath.Join(dir, "clip.buf"))

	if err := b.Copy(context.Background(), strings.NewReader("data")); err != nil {
		t.Fatalf("Copy() returned error: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() returned error: %v", err)
	}
	if len(entries) != 1 {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("Expected only the buffer file, found %v", names)
	}
}

func TestTempFile_PasteEmpty(t *testing.T) {
	b := newTempFileBackend(filepath.Join(t.TempDir(), "clip.buf"))

	var out bytes.Buffer
	if err := b.Paste(context.Background(), &out); err == nil {
		t.Fatal("Expected error pasting from an empty buffer, got nil")
	}
}

func TestTempFile_DefaultPath(t *testing.T) {
	b := newTempFileBackend("")
	want := filepath.Join(os.TempDir(), bufferFileName)
	if b.Path() != want {
		t.Errorf("Path() = %q, want %q", b.Path(), want)
	}
}
