package tetris

import (
	"context"
	"time"
)

// Command is a player input delivered to a Runner.
type Command int

const (
	CommandLeft Command = iota
	CommandRight
	CommandSoftDrop
	CommandRotate
	CommandReset
)

func (c Command) String() string {
	switch c {
	case CommandLeft:
		return "left"
	case CommandRight:
		return "right"
	case CommandSoftDrop:
		return "soft_drop"
	case CommandRotate:
		return "rotate"
	case CommandReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Apply runs the command against the engine and reports whether it applied.
// Reset always applies.
func (c Command) Apply(e *Engine) bool {
	switch c {
	case CommandLeft:
		return e.MoveLeft()
	case CommandRight:
		return e.MoveRight()
	case CommandSoftDrop:
		return e.SoftDrop()
	case CommandRotate:
		return e.RotateCW()
	case CommandReset:
		e.Reset()
		return true
	default:
		return false
	}
}

// Frame is published by a Runner after every change to the engine.
type Frame struct {
	// Tick is the number of driver ticks the runner has delivered.
	Tick uint64
	// Report is the result of the tick that produced the frame, if any.
	Report StepReport
	Snapshot Snapshot
}

// DefaultTickInterval is the wall-clock length of one driver tick.
const DefaultTickInterval = 50 * time.Millisecond

const (
	commandQueueSize = 64
	frameQueueSize   = 16
)

// Runner drives an Engine from a wall clock. Commands and ticks are applied
// on the single goroutine running Run, so the engine is never touched
// concurrently.
type Runner struct {
	engine   *Engine
	interval time.Duration
	commands chan Command
	frames   chan Frame
	tick     uint64
}

// NewRunner creates a runner that ticks e every interval. A non-positive
// interval means DefaultTickInterval. The runner takes ownership of e.
func NewRunner(e *Engine, interval time.Duration) *Runner {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &Runner{
		engine:   e,
		interval: interval,
		commands: make(chan Command, commandQueueSize),
		frames:   make(chan Frame, frameQueueSize),
	}
}

// Submit queues a command. It reports false if the queue is full.
func (r *Runner) Submit(c Command) bool {
	select {
	case r.commands <- c:
		return true
	default:
		return false
	}
}

// Frames returns the channel frames are published on. When the reader falls
// behind the oldest buffered frame is discarded, so the newest frame, and
// with it the game-over frame, is always delivered.
func (r *Runner) Frames() <-chan Frame {
	return r.frames
}

// Run applies queued commands and ticks until ctx is done, then returns ctx.Err().
// The frames channel is closed on return.
func (r *Runner) Run(ctx context.Context) error {
	defer close(r.frames)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.publish(StepReport{})
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case c := <-r.commands:
			if c.Apply(r.engine) {
				r.publish(StepReport{})
			}
		case <-ticker.C:
			r.tick++
			if rep := r.engine.Tick(); rep.Stepped {
				r.publish(rep)
			}
		}
	}
}

func (r *Runner) publish(rep StepReport) {
	f := Frame{Tick: r.tick, Report: rep, Snapshot: r.engine.Snapshot()}
	for {
		select {
		case r.frames <- f:
			return
		default:
		}
		// Full: drop the oldest frame and retry. Run is the only sender.
		select {
		case <-r.frames:
		default:
		}
	}
}
