package chip8

import (
	"fmt"
	"log/slog"
	"os"
)

// Loader copies font and ROM bytes into a machine's memory image. It
// holds nothing but a logger: font and ROM are each loaded with
// exactly one call, and the loader keeps no state between them.
type Loader struct {
	log *slog.Logger
}

// NewLoader returns a Loader that reports its work through log. A nil
// logger is replaced with slog.Default().
func NewLoader(log *slog.Logger) *Loader {
	if log == nil {
		log = slog.Default()
	}
	return &Loader{log: log}
}

// LoadBytes copies src into dest[offset:offset+len(src)] and returns
// the new write cursor. It fails with a LoaderError wrapping
// ErrOutOfBounds if the range exceeds dest's capacity.
func (l *Loader) LoadBytes(dest []byte, offset int, src []byte) (int, error) {
	end := offset + len(src)
	if offset < 0 || end > len(dest) {
		return offset, LoaderError{
			Op:  "LoadBytes",
			Err: fmt.Errorf("%w: offset=%d size=%d capacity=%d", ErrOutOfBounds, offset, len(src), len(dest)),
		}
	}

	copy(dest[offset:end], src)
	l.log.Debug("loaded bytes", "offset", offset, "size", len(src))

	return end, nil
}

// LoadFile reads path in its entirety and delegates to LoadBytes.
func (l *Loader) LoadFile(path string, dest []byte, offset int) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return offset, LoaderError{Path: path, Op: "LoadFile", Err: err}
	}

	cursor, err := l.LoadBytes(dest, offset, data)
	if err != nil {
		if le, ok := err.(LoaderError); ok {
			le.Path = path
			return cursor, le
		}
		return cursor, err
	}

	l.log.Info("loaded file", "path", path, "size", len(data))

	return cursor, nil
}
