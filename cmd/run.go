package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/coreforge/chip8vm/internal/beeper"
	"github.com/coreforge/chip8vm/internal/chip8"
	"github.com/coreforge/chip8vm/internal/display"
)

var (
	clockHz   float64
	frameRate float64
	mute      bool
	beepPath  string
)

// runCmd runs the chip8vm virtual machine and waits for the window to
// close before exiting.
var runCmd = &cobra.Command{
	Use:   "run path/to/rom",
	Short: "run the chip8vm emulator",
	Args:  cobra.ExactArgs(1),
	Run:   runChip8vm,
}

func init() {
	runCmd.Flags().Float64Var(&clockHz, "clock-hz", chip8.DefaultConfig().ClockHz, "instruction clock rate in Hz")
	runCmd.Flags().Float64Var(&frameRate, "frame-rate", chip8.DefaultConfig().FrameRate, "presentation frame rate in Hz")
	runCmd.Flags().BoolVar(&mute, "mute", false, "disable audio")
	runCmd.Flags().StringVar(&beepPath, "beep-asset", "assets/beep.mp3", "path to the beep tone asset")
}

func runChip8vm(cmd *cobra.Command, args []string) {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	m, err := chip8.New(log)
	if err != nil {
		fmt.Printf("error constructing machine: %v\n", err)
		os.Exit(1)
	}
	if err := m.Load(args[0]); err != nil {
		fmt.Printf("error loading rom: %v\n", err)
		os.Exit(1)
	}

	win, err := display.NewWindow("chip8vm")
	if err != nil {
		fmt.Printf("error creating window: %v\n", err)
		os.Exit(1)
	}

	var audio chip8.Audio = chip8.NoOpAudio{}
	if !mute {
		b := beeper.New(beepPath, log)
		defer b.Close()
		audio = b
	}

	cfg := chip8.Config{ClockHz: clockHz, FrameRate: frameRate, Mute: mute}
	sched := chip8.NewScheduler(m, cfg, win, audio, nil)
	sched.Start()
	sched.Wait()
	sched.Destroy()
}
