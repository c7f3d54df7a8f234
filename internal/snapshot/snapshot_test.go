package snapshot

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/coreforge/chip8vm/internal/chip8"
)

func TestWritePNGProducesDecodableImage(t *testing.T) {
	var fb chip8.Framebuffer
	fb.DrawRow(0, 0, 0xF0)

	path := filepath.Join(t.TempDir(), "frame.png")
	if err := WritePNG(&fb, path); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != chip8.DisplayWidth || bounds.Dy() != chip8.DisplayHeight {
		t.Errorf("image bounds = %v, want %dx%d", bounds, chip8.DisplayWidth, chip8.DisplayHeight)
	}

	r, g, b, a := img.At(0, 0).RGBA()
	if r == 0 || g == 0 || b == 0 || a == 0 {
		t.Errorf("pixel (0,0) = %d,%d,%d,%d, want lit (the drawn 0xF0 row)", r, g, b, a)
	}
}
