// Package chip8 is a CHIP-8 virtual machine: memory, registers, call
// stack, timers, a monochrome framebuffer and a hex keypad, driven by
// an opcode decoder/interpreter and a four-goroutine scheduler. It has
// no dependency on any particular renderer or audio backend; see
// internal/display and internal/beeper for the pixelgl/beep adapters
// wired in by cmd/run.go.
package chip8
