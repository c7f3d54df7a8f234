package chip8

import "testing"

func TestDrawRowCollision(t *testing.T) {
	var f Framebuffer

	if f.DrawRow(0, 0, 0xFF) {
		t.Fatal("first draw onto a blank row reported a collision")
	}
	if !f.DrawRow(0, 0, 0xFF) {
		t.Fatal("second XOR draw over the same row reported no collision")
	}

	buf := make([]byte, DisplayWidth*DisplayHeight*4)
	f.Snapshot(buf)
	for x := 0; x < 8; x++ {
		if buf[x*4] != 0 {
			t.Errorf("pixel (%d,0) on after XOR-cancel draw", x)
		}
	}
}

func TestDrawRowClipsAtRightEdge(t *testing.T) {
	var f Framebuffer
	f.DrawRow(DisplayWidth-2, 0, 0xFF)

	buf := make([]byte, DisplayWidth*DisplayHeight*4)
	f.Snapshot(buf)

	// Only the two in-range columns should be lit; the rest of the
	// byte's bits fall off the edge and must not wrap to column 0.
	for x := 0; x < DisplayWidth; x++ {
		on := buf[x*4] != 0
		want := x == DisplayWidth-2 || x == DisplayWidth-1
		if on != want {
			t.Errorf("pixel (%d,0) on=%v, want %v", x, on, want)
		}
	}
}

func TestClearTurnsEveryPixelOff(t *testing.T) {
	var f Framebuffer
	f.DrawRow(0, 0, 0xFF)
	f.Clear()

	buf := make([]byte, DisplayWidth*DisplayHeight*4)
	f.Snapshot(buf)
	for i := 0; i < len(buf); i += 4 {
		if buf[i] != 0 || buf[i+3] != 0xFF {
			t.Fatalf("pixel at byte %d = %v, want off with alpha 0xFF", i, buf[i:i+4])
		}
	}
}

func TestSnapshotPanicsOnUndersizedBuffer(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Snapshot did not panic on undersized buffer")
		}
	}()
	var f Framebuffer
	f.Snapshot(make([]byte, 4))
}
