package chip8

import (
	"sync"
	"time"
)

// Scheduler owns the four goroutines spec.md requires run
// independently against one Machine: the CPU task, the delay-timer
// task, the sound-timer task and the presentation task. It is
// grounded on chippy's cmd/run.go, which launched ManageAudio and Run
// as two bare goroutines; here the same shape is generalized to all
// four tasks and given an explicit Start/Stop lifecycle instead of
// running until process exit.
type Scheduler struct {
	m        *Machine
	cfg      Config
	renderer Renderer
	audio    Audio
	clock    Clock

	wg sync.WaitGroup
}

// NewScheduler wires m to its renderer and audio collaborators. Either
// may be nil: a nil renderer runs headless (tests use this), a nil
// audio produces silent sound-timer ticks. The elapsed time passed to
// Renderer.UpdateTitle is read from clock rather than time.Now
// directly, so tests can drive it with a FakeClock; a nil clock uses
// NewRealClock(). cfg.Mute is enforced here by substituting NoOpAudio,
// so muting holds regardless of which Audio the caller passed in.
func NewScheduler(m *Machine, cfg Config, renderer Renderer, audio Audio, clock Clock) *Scheduler {
	if clock == nil {
		clock = NewRealClock()
	}
	if cfg.Mute {
		audio = NoOpAudio{}
	}
	return &Scheduler{m: m, cfg: cfg, renderer: renderer, audio: audio, clock: clock}
}

// Start launches the four tasks and marks the machine running. It
// returns immediately; call Stop (or let the renderer's ShouldClose
// trip) to bring the tasks down and Wait for them to exit.
func (s *Scheduler) Start() {
	s.m.setRunning(true)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		runDelayTimer(s.m)
	}()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		runSoundTimer(s.m, s.audio)
	}()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.runCPU()
	}()

	if s.renderer != nil {
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.runPresentation()
		}()
	}
}

// Stop flips the lifecycle flag off; every task goroutine observes
// this on its next iteration and returns.
func (s *Scheduler) Stop() {
	s.m.setRunning(false)
}

// Wait blocks until all four tasks have returned.
func (s *Scheduler) Wait() {
	s.wg.Wait()
}

// Destroy releases the scheduler after Stop/Wait have returned. It is
// a no-op: the scheduler holds nothing (file handles, OS resources)
// that outlives its goroutines, so there is nothing left to release
// once they've exited.
func (s *Scheduler) Destroy() {}

// runCPU is the instruction-clock task: one Step per tick at
// Config.ClockHz. A fatal Step error (stack under/overflow, an
// out-of-range memory access) logs and stops the machine rather than
// panicking the goroutine, matching spec.md §7's "halt the machine,
// don't crash the process" requirement.
func (s *Scheduler) runCPU() {
	hz := s.cfg.ClockHz
	if hz <= 0 {
		hz = DefaultConfig().ClockHz
	}
	ticker := time.NewTicker(time.Duration(float64(time.Second) / hz))
	defer ticker.Stop()

	for s.m.Running() {
		<-ticker.C
		if err := s.m.Step(); err != nil {
			s.m.log.Error("fatal machine error, stopping", "error", err)
			s.Stop()
			return
		}
	}
}

// runPresentation is the display/input task: at Config.FrameRate it
// polls the renderer for input (feeding s.m.Keys), pushes the current
// framebuffer snapshot, and passes the seconds elapsed since the task
// started (read from s.clock) to UpdateTitle. It also owns
// the ShouldClose check that lets the user close the window stop the
// whole machine.
func (s *Scheduler) runPresentation() {
	rate := s.cfg.FrameRate
	if rate <= 0 {
		rate = DefaultConfig().FrameRate
	}
	ticker := time.NewTicker(time.Duration(float64(time.Second) / rate))
	defer ticker.Stop()

	frame := make([]byte, DisplayWidth*DisplayHeight*4)
	start := s.clock.Now()

	for s.m.Running() {
		<-ticker.C
		s.renderer.PollEvents(s.m.Keys)
		if s.renderer.ShouldClose() {
			s.Stop()
			return
		}

		s.m.Display.Snapshot(frame)
		if err := s.renderer.Present(frame); err != nil {
			s.m.log.Error("renderer present failed, stopping", "error", err)
			s.Stop()
			return
		}
		s.renderer.UpdateTitle(s.clock.Now() - start)
	}
}
