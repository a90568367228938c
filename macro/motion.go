package macro

import (
	"context"
	"time"

	"github.com/inputremapd/inputremapd/axis"
	"github.com/inputremapd/inputremapd/errs"
	"github.com/inputremapd/inputremapd/linux/input"
)

// tickInterval returns the REL emission period for a task's configured
// rate.
func tickInterval(hz float64) time.Duration {
	return time.Duration(float64(time.Second) / hz)
}

func (rt *Runtime) runMouse(ctx context.Context, task *Task, n *Node) error {
	dir := n.Args[0].Str

	var code uint16

	var sign float64 = 1

	switch dir {
	case "up":
		code, sign = input.REL_Y, -1
	case "down":
		code, sign = input.REL_Y, 1
	case "left":
		code, sign = input.REL_X, -1
	case "right":
		code, sign = input.REL_X, 1
	default:
		return &errs.MacroRuntime{Message: "mouse: unknown direction " + dir}
	}

	speed, err := rt.resolveInt(n.Args[1])
	if err != nil {
		return err
	}

	var accel int64

	if len(n.Args) == 3 {
		accel, err = rt.resolveInt(n.Args[2])
		if err != nil {
			return err
		}
	}

	return rt.runMotion(ctx, task, func(elapsed time.Duration) (uint16, float64) {
		return code, sign * currentSpeed(float64(speed), float64(accel), elapsed)
	})
}

func (rt *Runtime) runMouseXY(ctx context.Context, task *Task, n *Node) error {
	xSpeed, err := rt.resolveInt(n.Args[0])
	if err != nil {
		return err
	}

	ySpeed, err := rt.resolveInt(n.Args[1])
	if err != nil {
		return err
	}

	var accel int64

	if len(n.Args) == 3 {
		accel, err = rt.resolveInt(n.Args[2])
		if err != nil {
			return err
		}
	}

	accX := &axis.RelAccumulator{}
	accY := &axis.RelAccumulator{}

	start := time.Now()
	interval := tickInterval(task.relRateHz)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for task.held.Load() {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		elapsed := time.Since(start)

		dx := accX.Tick(signedSpeed(float64(xSpeed), float64(accel), elapsed) * interval.Seconds())
		dy := accY.Tick(signedSpeed(float64(ySpeed), float64(accel), elapsed) * interval.Seconds())

		if dx != 0 {
			if err := rt.Emitter.Emit(input.EV_REL, input.REL_X, dx); err != nil {
				return err
			}
		}

		if dy != 0 {
			if err := rt.Emitter.Emit(input.EV_REL, input.REL_Y, dy); err != nil {
				return err
			}
		}
	}

	return nil
}

func (rt *Runtime) runWheel(ctx context.Context, task *Task, n *Node) error {
	dir := n.Args[0].Str

	var code uint16

	switch dir {
	case "up", "down":
		code = input.REL_WHEEL
	case "left", "right":
		code = input.REL_HWHEEL
	default:
		return &errs.MacroRuntime{Message: "wheel: unknown direction " + dir}
	}

	sign := 1.0
	if dir == "down" || dir == "left" {
		sign = -1
	}

	speed, err := rt.resolveInt(n.Args[1])
	if err != nil {
		return err
	}

	return rt.runMotion(ctx, task, func(elapsed time.Duration) (uint16, float64) {
		return code, sign * float64(speed)
	})
}

// runMotion drives a single REL axis at the task's rel_rate while task is held,
// using speedAt to compute each tick's instantaneous units/sec.
func (rt *Runtime) runMotion(ctx context.Context, task *Task, speedAt func(elapsed time.Duration) (uint16, float64)) error {
	acc := &axis.RelAccumulator{}
	start := time.Now()
	interval := tickInterval(task.relRateHz)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for task.held.Load() {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		code, speed := speedAt(time.Since(start))

		delta := acc.Tick(speed * interval.Seconds())
		if delta == 0 {
			continue
		}

		if err := rt.Emitter.Emit(input.EV_REL, code, delta); err != nil {
			return err
		}
	}

	return nil
}

// currentSpeed returns base plus accel-per-second of linear
// acceleration, signed by the caller.
func currentSpeed(base, accelPerSec float64, elapsed time.Duration) float64 {
	return base + accelPerSec*elapsed.Seconds()
}

// signedSpeed scales currentSpeed by the sign of base, so negative
// base speeds accelerate further negative.
func signedSpeed(base, accelPerSec float64, elapsed time.Duration) float64 {
	if base < 0 {
		return base - accelPerSec*elapsed.Seconds()
	}

	return base + accelPerSec*elapsed.Seconds()
}
