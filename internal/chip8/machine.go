package chip8

import (
	"log/slog"
	"sync/atomic"
)

// Machine is the CHIP-8 virtual machine: memory, registers, stack,
// timers, framebuffer and keypad, plus the collaborators the
// scheduler drives it with. One Machine is shared by all four
// scheduler goroutines; see the field comments for which goroutine
// owns each piece of state.
type Machine struct {
	// Memory, registers, stack, PC and I are touched only by the CPU
	// goroutine; they need no synchronization.
	Memory [MemorySize]byte
	V      [NumRegisters]byte
	I      uint16
	PC     uint16
	Stack  [StackDepth]uint16
	SP     uint8

	// delayTimer and soundTimer are written by both the CPU goroutine
	// (FX15/FX18/FX07) and their respective timer goroutines (the 60Hz
	// decrement), so they are atomics rather than plain fields.
	delayTimer atomic.Uint32
	soundTimer atomic.Uint32

	// Framebuffer and Keypad are already internally synchronized.
	Display *Framebuffer
	Keys    *Keypad

	// running is the lifecycle flag every goroutine polls once per
	// iteration and FX0A polls while blocked waiting for a key.
	running atomic.Bool

	rand randSource
	log  *slog.Logger

	// waitReg, when >= 0, means the CPU goroutine is inside FX0A and
	// should not fetch the next instruction until a key is observed.
	// It is only ever touched by the CPU goroutine itself.
	waitReg int
}

// New returns a freshly constructed Machine: font loaded, memory
// otherwise zero, PC at ProgramStart, not yet running. Call Load to
// place a ROM before Start.
func New(log *slog.Logger) (*Machine, error) {
	if log == nil {
		log = slog.Default()
	}

	m := &Machine{
		Display: &Framebuffer{},
		Keys:    &Keypad{},
		log:     log,
		rand:    defaultRandSource{},
		waitReg: -1,
	}
	m.PC = ProgramStart

	loader := NewLoader(log)
	if _, err := loader.LoadBytes(m.Memory[:], FontBase, Font[:]); err != nil {
		return nil, err
	}

	return m, nil
}

// Load reads path and places its bytes at ProgramStart, failing if the
// ROM would not fit in the space below MemorySize.
func (m *Machine) Load(path string) error {
	loader := NewLoader(m.log)
	_, err := loader.LoadFile(path, m.Memory[:], ProgramStart)
	return err
}

// LoadROM places rom's bytes at ProgramStart directly, for tests and
// for embedding pre-assembled programs.
func (m *Machine) LoadROM(rom []byte) error {
	loader := NewLoader(m.log)
	_, err := loader.LoadBytes(m.Memory[:], ProgramStart, rom)
	return err
}

// Running reports the machine's lifecycle flag.
func (m *Machine) Running() bool { return m.running.Load() }

// setRunning is used by the scheduler to flip the lifecycle flag; it
// is unexported so only package chip8 (the scheduler) can drive it.
func (m *Machine) setRunning(v bool) { m.running.Store(v) }

// DelayTimer returns the current delay timer value.
func (m *Machine) DelayTimer() byte { return byte(m.delayTimer.Load()) }

// SoundTimer returns the current sound timer value.
func (m *Machine) SoundTimer() byte { return byte(m.soundTimer.Load()) }

// SetDelayTimer sets the delay timer (FX15).
func (m *Machine) SetDelayTimer(v byte) { m.delayTimer.Store(uint32(v)) }

// SetSoundTimer sets the sound timer (FX18).
func (m *Machine) SetSoundTimer(v byte) { m.soundTimer.Store(uint32(v)) }

// tickDelay decrements the delay timer by one if it is nonzero. Called
// once per delay-timer goroutine iteration.
func (m *Machine) tickDelay() {
	for {
		cur := m.delayTimer.Load()
		if cur == 0 {
			return
		}
		if m.delayTimer.CompareAndSwap(cur, cur-1) {
			return
		}
	}
}

// tickSound decrements the sound timer by one if it is nonzero and
// reports the value it held before decrementing, so the caller can
// detect the positive->0 edge. Called once per sound-timer goroutine
// iteration.
func (m *Machine) tickSound() (before byte) {
	for {
		cur := m.soundTimer.Load()
		if cur == 0 {
			return 0
		}
		if m.soundTimer.CompareAndSwap(cur, cur-1) {
			return byte(cur)
		}
	}
}

// randSource abstracts math/rand so CXNN can be driven deterministically in tests.
type randSource interface {
	Intn(n int) int
}
