// Package display adapts chip8vm's RGBA framebuffer snapshots to a
// pixelgl window, and pixelgl's key events back into a chip8.Keypad.
// It is grounded on chippy's internal/pixel package, generalized from
// a per-cell imdraw rectangle pass (one draw call per lit pixel) to a
// single textured sprite blit of the packed RGBA snapshot chip8.Machine
// already produces, plus an elapsed-time text overlay chippy never had.
package display

import (
	"fmt"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/coreforge/chip8vm/internal/chip8"
)

const (
	displayWidth  = chip8.DisplayWidth
	displayHeight = chip8.DisplayHeight

	defaultScale = 16
)

// Window is a pixelgl-backed chip8.Renderer. It owns the mainthread
// window and the hex-key to pixelgl.Button map, derived from the same
// physical QWERTY layout chippy's NewWindow hardcoded.
type Window struct {
	win    *pixelgl.Window
	sprite *pixel.Sprite
	pic    *pixel.PictureData
	txt    *text.Text
	keyMap map[pixelgl.Button]int
}

// NewWindow creates the backing pixelgl window. Must be called on the
// goroutine pixelgl.Run was given, per pixelgl's mainthread
// requirement.
func NewWindow(title string) (*Window, error) {
	cfg := pixelgl.WindowConfig{
		Title:  title,
		Bounds: pixel.R(0, 0, displayWidth*defaultScale, displayHeight*defaultScale),
		VSync:  true,
	}
	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return nil, chip8.RendererError{Err: fmt.Errorf("creating window: %w", err)}
	}

	pic := &pixel.PictureData{
		Pix:    make([]pixel.RGBA, displayWidth*displayHeight),
		Stride: displayWidth,
		Rect:   pixel.R(0, 0, displayWidth, displayHeight),
	}

	face := basicfont.Face7x13
	atlas := text.NewAtlas(face, text.ASCII)
	txt := text.New(pixel.V(8, displayHeight*defaultScale-16), atlas)

	return &Window{
		win:    win,
		pic:    pic,
		sprite: pixel.NewSprite(pic, pic.Rect),
		txt:    txt,
		keyMap: invertKeyMap(),
	}, nil
}

// Present uploads an RGBA snapshot (as produced by
// chip8.Framebuffer.Snapshot) and draws it scaled to fill the window.
func (w *Window) Present(snapshot []byte) error {
	need := displayWidth * displayHeight * 4
	if len(snapshot) < need {
		return chip8.RendererError{Err: fmt.Errorf("snapshot too small: got %d want %d", len(snapshot), need)}
	}

	for row := 0; row < displayHeight; row++ {
		for col := 0; col < displayWidth; col++ {
			// CHIP-8's (0,0) is top-left; pixel.PictureData's (0,0) is
			// bottom-left, so rows are flipped on the way in.
			srcI := (row*displayWidth + col) * 4
			dstI := (displayHeight-1-row)*displayWidth + col
			w.pic.Pix[dstI] = pixel.RGBA{
				R: float64(snapshot[srcI]) / 255,
				G: float64(snapshot[srcI+1]) / 255,
				B: float64(snapshot[srcI+2]) / 255,
				A: float64(snapshot[srcI+3]) / 255,
			}
		}
	}

	w.win.Clear(colornames.Black)
	bounds := w.win.Bounds()
	scale := pixel.IM.
		ScaledXY(pixel.ZV, pixel.V(bounds.W()/displayWidth, bounds.H()/displayHeight)).
		Moved(bounds.Center())
	w.sprite.Draw(w.win, scale)
	w.txt.Draw(w.win, pixel.IM)
	w.win.Update()
	return nil
}

// ShouldClose reports whether the user requested the window close.
func (w *Window) ShouldClose() bool { return w.win.Closed() }

// PollEvents reads pixelgl's input state and reflects every tracked
// hex key's up/down state into keys.
func (w *Window) PollEvents(keys *chip8.Keypad) {
	for button, hexKey := range w.keyMap {
		if w.win.JustPressed(button) {
			keys.Press(hexKey)
		}
		if w.win.JustReleased(button) {
			keys.Release(hexKey)
		}
	}
}

// UpdateTitle redraws the overlay text with the elapsed whole seconds;
// it does not set the window title or show a frame rate. chippy had no
// equivalent.
func (w *Window) UpdateTitle(elapsedSeconds float64) {
	w.txt.Clear()
	fmt.Fprintf(w.txt, "%.0fs", elapsedSeconds)
}

// invertKeyMap turns chip8.KeyMap (rune -> hex key) into a
// pixelgl.Button -> hex key map, grounded on chippy's NewWindow literal
// map but derived instead of duplicated by hand.
func invertKeyMap() map[pixelgl.Button]int {
	runeToButton := map[rune]pixelgl.Button{
		'1': pixelgl.Key1, '2': pixelgl.Key2, '3': pixelgl.Key3, '4': pixelgl.Key4,
		'q': pixelgl.KeyQ, 'w': pixelgl.KeyW, 'e': pixelgl.KeyE, 'r': pixelgl.KeyR,
		'a': pixelgl.KeyA, 's': pixelgl.KeyS, 'd': pixelgl.KeyD, 'f': pixelgl.KeyF,
		'z': pixelgl.KeyZ, 'x': pixelgl.KeyX, 'c': pixelgl.KeyC, 'v': pixelgl.KeyV,
	}

	out := make(map[pixelgl.Button]int, len(chip8.KeyMap))
	for r, hexKey := range chip8.KeyMap {
		if button, ok := runeToButton[r]; ok {
			out[button] = hexKey
		}
	}
	return out
}
