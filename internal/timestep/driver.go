// Package timestep decouples the discrete game logic rate from the render
// rate with a fixed-step accumulator.
package timestep

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidStep = errors.New("invalid step interval")

// Simulation is advanced by the driver one logic step at a time.
type Simulation interface {
	// Active reports whether logic may advance (running, not paused, not over).
	Active() bool
	// Snapshot records the state the renderer interpolates from.
	Snapshot()
	Advance()
}

type Result struct {
	Elapsed time.Duration
	Steps   int
}

type Driver struct {
	step    time.Duration
	minStep time.Duration

	last        time.Time
	accumulator time.Duration
	fraction    float64
	totalSteps  uint64
}

func NewDriver(step, minStep time.Duration) (*Driver, error) {
	if minStep <= 0 {
		return nil, fmt.Errorf("%w: minimum %v must be positive", ErrInvalidStep, minStep)
	}
	if step < minStep {
		return nil, fmt.Errorf("%w: %v is below minimum %v", ErrInvalidStep, step, minStep)
	}

	return &Driver{
		step:    step,
		minStep: minStep,
	}, nil
}

// Reset drops any pending time and the step count and restarts measuring
// from now.
func (d *Driver) Reset(now time.Time) {
	d.last = now
	d.accumulator = 0
	d.fraction = 0
	d.totalSteps = 0
}

// Tick consumes the time elapsed since the previous tick. Every whole step
// interval runs exactly one Snapshot/Advance pair, so the number of steps
// depends only on total elapsed time, not on how it was chunked.
func (d *Driver) Tick(now time.Time, sim Simulation) Result {
	dt := now.Sub(d.last)
	if d.last.IsZero() || dt < 0 {
		dt = 0
	}
	d.last = now

	result := Result{Elapsed: dt}
	if !sim.Active() {
		return result
	}

	d.accumulator += dt
	for d.accumulator >= d.step {
		sim.Snapshot()
		sim.Advance()
		d.accumulator -= d.step
		d.totalSteps++
		result.Steps++

		if !sim.Active() {
			d.accumulator = 0
			d.fraction = 0
			return result
		}
	}

	d.fraction = float64(d.accumulator) / float64(d.step)
	return result
}

// SetStep changes the logic interval, never going below the minimum. The
// pending accumulator is left as is.
func (d *Driver) SetStep(step time.Duration) time.Duration {
	if step < d.minStep {
		step = d.minStep
	}
	d.step = step
	return d.step
}

func (d *Driver) Step() time.Duration {
	return d.step
}

func (d *Driver) MinStep() time.Duration {
	return d.minStep
}

// Fraction is the progress toward the next logic step, in [0, 1).
func (d *Driver) Fraction() float64 {
	return d.fraction
}

func (d *Driver) Accumulated() time.Duration {
	return d.accumulator
}

func (d *Driver) TotalSteps() uint64 {
	return d.totalSteps
}
