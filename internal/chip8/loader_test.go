package chip8

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadBytesWithinBounds(t *testing.T) {
	l := NewLoader(nil)
	dest := make([]byte, 16)
	n, err := l.LoadBytes(dest, 4, []byte{1, 2, 3})
	if err != nil {
		t.Fatalf("LoadBytes: %v", err)
	}
	if n != 7 {
		t.Errorf("cursor = %d, want 7", n)
	}
	if dest[4] != 1 || dest[5] != 2 || dest[6] != 3 {
		t.Errorf("dest = %v, want [.. 1 2 3 ..]", dest)
	}
}

func TestLoadBytesOutOfBounds(t *testing.T) {
	l := NewLoader(nil)
	dest := make([]byte, 4)
	_, err := l.LoadBytes(dest, 2, []byte{1, 2, 3})
	if err == nil {
		t.Fatal("LoadBytes: want error, got nil")
	}
	var le LoaderError
	if !errors.As(err, &le) {
		t.Fatalf("err = %v, want LoaderError", err)
	}
	if !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("err does not wrap ErrOutOfBounds: %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rom.ch8")
	if err := os.WriteFile(path, []byte{0xA1, 0xB2}, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	l := NewLoader(nil)
	dest := make([]byte, MemorySize)
	n, err := l.LoadFile(path, dest, ProgramStart)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if n != ProgramStart+2 {
		t.Errorf("cursor = %d, want %d", n, ProgramStart+2)
	}
	if dest[ProgramStart] != 0xA1 || dest[ProgramStart+1] != 0xB2 {
		t.Errorf("dest[ProgramStart:] = %v, want [0xA1 0xB2]", dest[ProgramStart:ProgramStart+2])
	}
}

func TestLoadFileMissing(t *testing.T) {
	l := NewLoader(nil)
	dest := make([]byte, MemorySize)
	_, err := l.LoadFile("/nonexistent/rom.ch8", dest, ProgramStart)
	if err == nil {
		t.Fatal("LoadFile: want error, got nil")
	}
	var le LoaderError
	if !errors.As(err, &le) {
		t.Fatalf("err = %v, want LoaderError", err)
	}
	if le.Path == "" {
		t.Errorf("LoaderError.Path not populated: %+v", le)
	}
}
