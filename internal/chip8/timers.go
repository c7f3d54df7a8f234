package chip8

import "time"

// timerHz is the fixed rate spec.md mandates for both timers
// regardless of Config.ClockHz or Config.FrameRate.
const timerHz = 60

// runDelayTimer decrements the delay timer at timerHz until m stops
// running. It is its own goroutine so the CPU task's clock rate never
// affects timer accuracy.
func runDelayTimer(m *Machine) {
	ticker := time.NewTicker(time.Second / timerHz)
	defer ticker.Stop()

	for m.Running() {
		<-ticker.C
		m.tickDelay()
	}
}

// runSoundTimer decrements the sound timer at timerHz and drives audio
// on the two edges that matter: 0->positive starts the beep, the
// positive->0 transition stops it. sounding is evaluated against the
// timer's value going into this tick (before the decrement), matching
// spec.md §4.5's "sound_timer > 0" level condition exactly — so even a
// timer set to exactly 1 is audible for the one tick it's positive,
// not just values above 1. audio may be nil, in which case the timer
// still ticks but produces no sound (--mute instead substitutes
// NoOpAudio in NewScheduler).
func runSoundTimer(m *Machine, audio Audio) {
	ticker := time.NewTicker(time.Second / timerHz)
	defer ticker.Stop()

	wasSounding := false
	for m.Running() {
		<-ticker.C
		before := m.tickSound()
		sounding := before > 0
		if sounding && !wasSounding && audio != nil {
			audio.StartBeep()
		} else if !sounding && wasSounding && audio != nil {
			audio.StopBeep()
		}
		wasSounding = sounding
	}

	if wasSounding && audio != nil {
		audio.StopBeep()
	}
}
