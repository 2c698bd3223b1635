package source

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/snappy"
)

func compress(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := snappy.NewBufferedWriter(&buf)
	if _, err := w.Write(data); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func readAll(t *testing.T, src Source, name string) []byte {
	t.Helper()
	rc, err := src.Open(context.Background(), name)
	if err != nil {
		t.Fatalf("Open(%q) failed: %v", name, err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read %q: %v", name, err)
	}
	return data
}

func TestLocalSource(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "out_0001.g23"), []byte("plain\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "out_0002.g23.sz"), compress(t, []byte("packed\n")), 0o644); err != nil {
		t.Fatal(err)
	}

	src := NewLocalSource(dir)

	if got := readAll(t, src, "out_0001.g23"); string(got) != "plain\n" {
		t.Errorf("plain file content = %q", got)
	}
	// Only the .sz variant exists; the source decompresses on the fly.
	if got := readAll(t, src, "out_0002.g23"); string(got) != "packed\n" {
		t.Errorf("compressed file content = %q", got)
	}

	_, err := src.Open(context.Background(), "out_0003.g23")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestLocalSource_PlainWinsOverCompressed(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "m.g23"), []byte("plain\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "m.g23.sz"), compress(t, []byte("packed\n")), 0o644); err != nil {
		t.Fatal(err)
	}

	if got := readAll(t, NewLocalSource(dir), "m.g23"); string(got) != "plain\n" {
		t.Errorf("content = %q, want plain variant", got)
	}
}

func TestMapSource(t *testing.T) {
	src := MapSource{
		"a.g23":    []byte("plain\n"),
		"b.g23.sz": compress(t, []byte("packed\n")),
	}

	if got := readAll(t, src, "a.g23"); string(got) != "plain\n" {
		t.Errorf("content = %q", got)
	}
	if got := readAll(t, src, "b.g23"); string(got) != "packed\n" {
		t.Errorf("decompressed content = %q", got)
	}

	_, err := src.Open(context.Background(), "c.g23")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}
