package chip8

// Config are the construction-time parameters chippy's cmd/run.go
// used to hard-code as a refreshRate constant; here they are values a
// cobra command assembles from flags and passes to NewScheduler.
type Config struct {
	// ClockHz is the instruction-clock rate, the CPU task's cadence.
	ClockHz float64
	// FrameRate is the presentation task's cadence.
	FrameRate float64
	// Mute disables the audio collaborator regardless of what NewScheduler is given.
	Mute bool
}

// DefaultConfig matches spec.md's suggested defaults: ~540 Hz
// instruction clock, 60 Hz presentation and timers.
func DefaultConfig() Config {
	return Config{ClockHz: 540, FrameRate: 60}
}
