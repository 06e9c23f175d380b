// Package demo plays the fixed fixture demonstration.
package demo

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/bbernstein/lacylights-umbrella/internal/services/colorwheel"
)

// DefaultHold is how long each solid step is held.
const DefaultHold = time.Second

// rampLength is the number of frames in each white/amber ramp (0..254).
const rampLength = 255

// Output is the subset of the Art-Net sender the demo drives.
type Output interface {
	SendRGB(r, g, b byte) error
	SendWA(w, a byte) error
}

// StepKind selects which Output call a step makes.
type StepKind int

const (
	// StepRGB calls SendRGB(A, B, C).
	StepRGB StepKind = iota
	// StepWA calls SendWA(A, B).
	StepWA
)

// Step is one datagram in the demonstration.
type Step struct {
	Name    string
	Kind    StepKind
	A, B, C byte
	// Hold is true when the step is followed by the player's hold delay.
	Hold bool
}

// Sequence returns the fixed demonstration: five solid colors, a white and
// amber flash, then two ramps sent back to back.
func Sequence() []Step {
	steps := []Step{
		{Name: "white", Kind: StepRGB, A: 255, B: 255, C: 255, Hold: true},
		{Name: "cyan", Kind: StepRGB, A: 0, B: 255, C: 255, Hold: true},
		{Name: "blue", Kind: StepRGB, A: 0, B: 0, C: 255, Hold: true},
		{Name: "green", Kind: StepRGB, A: 0, B: 255, C: 0, Hold: true},
		{Name: "red", Kind: StepRGB, A: 255, B: 0, C: 0, Hold: true},
		{Name: "white+amber", Kind: StepWA, A: 255, B: 255, Hold: true},
	}

	for i := 0; i < rampLength; i++ {
		steps = append(steps, Step{Name: "ramp w", Kind: StepWA, A: byte(i)})
	}
	for i := 0; i < rampLength; i++ {
		steps = append(steps, Step{Name: "ramp a", Kind: StepWA, B: byte(i)})
	}

	return steps
}

// Player runs steps against an Output.
type Player struct {
	out  Output
	hold time.Duration

	// sleep waits for d or until ctx is done.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewPlayer creates a player. A non-positive hold uses DefaultHold.
func NewPlayer(out Output, hold time.Duration) *Player {
	if hold <= 0 {
		hold = DefaultHold
	}
	return &Player{
		out:   out,
		hold:  hold,
		sleep: sleepContext,
	}
}

// Run plays Sequence. It stops at the first send error or when ctx is done.
func (p *Player) Run(ctx context.Context) error {
	log.Printf("🎭 Playing demo sequence (hold %v)", p.hold)

	for i, step := range Sequence() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := p.play(step); err != nil {
			return fmt.Errorf("demo step %d (%s): %w", i, step.Name, err)
		}
		if step.Hold {
			if err := p.sleep(ctx, p.hold); err != nil {
				return err
			}
		}
	}

	log.Printf("🎭 Demo sequence complete")
	return nil
}

// RunRainbow sends one full color-wheel cycle, waiting interval between frames.
func (p *Player) RunRainbow(ctx context.Context, interval time.Duration) error {
	log.Printf("🌈 Playing color wheel (%v per frame)", interval)

	for pos, c := range colorwheel.Cycle() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := p.out.SendRGB(c.R, c.G, c.B); err != nil {
			return fmt.Errorf("color wheel position %d: %w", pos, err)
		}
		if interval > 0 {
			if err := p.sleep(ctx, interval); err != nil {
				return err
			}
		}
	}
	return nil
}

func (p *Player) play(step Step) error {
	switch step.Kind {
	case StepRGB:
		return p.out.SendRGB(step.A, step.B, step.C)
	case StepWA:
		return p.out.SendWA(step.A, step.B)
	default:
		return fmt.Errorf("unknown step kind %d", step.Kind)
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
