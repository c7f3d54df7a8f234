// Package snapshot writes a chip8 framebuffer out as a PNG, the
// supplementary feature SPEC_FULL.md adds for scripted/headless runs
// (golden-image tests, crash dumps) where no renderer is attached.
// Grounded on the original_source cpu.c display buffer, which already
// stored pixels as packed RGBA; this package only adds the stdlib
// image/png encoding step chippy never needed because it rendered
// straight to a window.
package snapshot

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/coreforge/chip8vm/internal/chip8"
)

// WritePNG renders fb's current contents to path as a 64x32 PNG, one
// pixel per CHIP-8 pixel (no upscaling), at png's default compression.
func WritePNG(fb *chip8.Framebuffer, path string) error {
	buf := make([]byte, chip8.DisplayWidth*chip8.DisplayHeight*4)
	fb.Snapshot(buf)

	img := image.NewRGBA(image.Rect(0, 0, chip8.DisplayWidth, chip8.DisplayHeight))
	for y := 0; y < chip8.DisplayHeight; y++ {
		for x := 0; x < chip8.DisplayWidth; x++ {
			i := (y*chip8.DisplayWidth + x) * 4
			img.SetRGBA(x, y, color.RGBA{R: buf[i], G: buf[i+1], B: buf[i+2], A: buf[i+3]})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("snapshot: encode %s: %w", path, err)
	}
	return w.Flush()
}
