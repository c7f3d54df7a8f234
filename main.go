package main

import (
	"github.com/faiface/pixel/pixelgl"

	"github.com/coreforge/chip8vm/cmd"
)

func main() {
	// pixelgl needs access to the main thread, so the whole cobra
	// dispatch runs inside pixelgl.Run rather than just the windowed
	// path; subcommands that never touch pixelgl (version) are
	// unaffected by running under it.
	pixelgl.Run(cmd.Execute)
}
