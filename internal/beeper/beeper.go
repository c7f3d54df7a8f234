// Package beeper implements chip8.Audio with faiface/beep. It is
// grounded on chippy's VM.ManageAudio, which opened assets/beep.mp3,
// decoded it with faiface/beep/mp3 and called speaker.Play once per
// audio-channel event. That one-shot-per-event shape doesn't fit
// chip8vm's sound-timer task, which needs a tone that sustains for as
// long as the timer stays positive rather than firing once per tick;
// here the decoded stream is wrapped in beep.Loop(-1, ...) and
// started/stopped on the timer's edges instead.
package beeper

import (
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
)

// Beeper is a chip8.Audio backed by a decoded mp3 file looped for as
// long as StartBeep/StopBeep bracket it.
type Beeper struct {
	mu      sync.Mutex
	loop    beep.Streamer
	closer  func() error
	log     *slog.Logger
	playing bool
}

// New decodes path (an mp3 file) and prepares the speaker for
// playback at the decoded sample rate. If path can't be opened or
// decoded, New returns a Beeper whose StartBeep/StopBeep are no-ops
// and logs why, rather than failing machine construction over a
// missing asset.
func New(path string, log *slog.Logger) *Beeper {
	if log == nil {
		log = slog.Default()
	}

	b := &Beeper{log: log}

	f, err := os.Open(path)
	if err != nil {
		log.Warn("beeper: asset unavailable, audio disabled", "path", path, "error", err)
		return b
	}

	streamer, format, err := mp3.Decode(f)
	if err != nil {
		log.Warn("beeper: decode failed, audio disabled", "path", path, "error", err)
		f.Close()
		return b
	}

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
		log.Warn("beeper: speaker init failed, audio disabled", "error", err)
		streamer.Close()
		return b
	}

	b.loop, err = beep.Loop(-1, streamer)
	if err != nil {
		log.Warn("beeper: loop construction failed, audio disabled", "error", err)
		streamer.Close()
		return b
	}
	b.closer = streamer.Close

	return b
}

// StartBeep begins looped playback. Safe to call when already
// playing; it is a no-op in that case.
func (b *Beeper) StartBeep() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.loop == nil || b.playing {
		return
	}
	b.playing = true
	speaker.Play(b.loop)
}

// StopBeep silences the speaker immediately.
func (b *Beeper) StopBeep() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.loop == nil || !b.playing {
		return
	}
	b.playing = false
	speaker.Clear()
}

// Close releases the decoded stream's underlying file.
func (b *Beeper) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closer == nil {
		return nil
	}
	if err := b.closer(); err != nil {
		return fmt.Errorf("beeper: close: %w", err)
	}
	return nil
}
