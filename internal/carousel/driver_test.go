package carousel

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const maxFrames = 600

// runUntilSettled steps d until it settles and returns every value produced.
func runUntilSettled(t *testing.T, d *Driver) []float64 {
	t.Helper()
	var values []float64
	for range maxFrames {
		values = append(values, d.Step())
		if d.Settled() {
			return values
		}
	}
	t.Fatalf("driver did not settle within %d frames (value %v, target %v)", maxFrames, d.Value(), d.Target())
	return nil
}

func TestNewDriver_AtRest(t *testing.T) {
	d := NewDriver(DefaultSpring(), 2)

	assert.True(t, d.Settled())
	assert.Equal(t, 2.0, d.Value())
	assert.Equal(t, 2.0, d.Target())
	assert.Equal(t, 2.0, d.Step(), "stepping a settled driver keeps the value")
}

func TestNewDriver_FillsDefaults(t *testing.T) {
	d := NewDriver(SpringConfig{Damping: 1}, 0)
	cfg := d.Config()

	assert.Equal(t, 60, cfg.FPS)
	assert.Equal(t, 1.0, cfg.Damping)
	assert.Equal(t, DefaultSpring().Frequency, cfg.Frequency)
	assert.Equal(t, time.Second/60, d.FrameInterval())
}

func TestDriver_ConvergesExactlyToTarget(t *testing.T) {
	for _, target := range []float64{1, 3, 6, 0} {
		d := NewDriver(DefaultSpring(), 0)
		if target == 0 {
			d.Jump(4)
		}
		d.SetTarget(target)

		runUntilSettled(t, d)

		assert.Equal(t, target, d.Value(), "target %v", target)
		assert.Equal(t, 0.0, d.Velocity())

		for range 30 {
			require.Equal(t, target, d.Step(), "value stays on target after settling")
		}
	}
}

func TestDriver_OvershootsThenDecays(t *testing.T) {
	d := NewDriver(DefaultSpring(), 0)
	d.SetTarget(3)

	values := runUntilSettled(t, d)

	peak := 0.0
	for _, v := range values {
		peak = math.Max(peak, v)
	}
	assert.Greater(t, peak, 3.0, "underdamped spring overshoots")

	// Peak distance from the target over consecutive windows longer than one
	// oscillation period never grows.
	const window = 40
	prevPeak := math.Inf(1)
	for start := 0; start < len(values); start += window {
		end := min(start+window, len(values))
		windowPeak := 0.0
		for _, v := range values[start:end] {
			windowPeak = math.Max(windowPeak, math.Abs(v-3))
		}
		assert.LessOrEqual(t, windowPeak, prevPeak, "window starting at frame %d", start)
		prevPeak = windowPeak
	}
}

func TestDriver_CriticallyDampedDoesNotOvershoot(t *testing.T) {
	cfg := DefaultSpring()
	cfg.Damping = 1
	d := NewDriver(cfg, 0)
	d.SetTarget(2)

	prev := 0.0
	for _, v := range runUntilSettled(t, d) {
		assert.LessOrEqual(t, v, 2.0)
		assert.GreaterOrEqual(t, v, prev, "critically damped motion is monotonic")
		prev = v
	}
}

func TestDriver_RedirectIsContinuous(t *testing.T) {
	d := NewDriver(DefaultSpring(), 0)
	d.SetTarget(5)
	for range 10 {
		d.Step()
	}

	before := d.Value()
	velocity := d.Velocity()
	d.SetTarget(1)

	assert.Equal(t, before, d.Value(), "no jump at the redirection instant")
	assert.Equal(t, velocity, d.Velocity(), "velocity carries over")
	assert.False(t, d.Settled())

	next := d.Step()
	assert.Less(t, math.Abs(next-before), 1.0, "first frame after redirect moves less than one item")

	runUntilSettled(t, d)
	assert.Equal(t, 1.0, d.Value())
}

func TestDriver_RedirectBeforeFirstFrame(t *testing.T) {
	d := NewDriver(DefaultSpring(), 2)
	d.SetTarget(6)
	d.SetTarget(0)

	assert.Equal(t, 2.0, d.Value())
	runUntilSettled(t, d)
	assert.Equal(t, 0.0, d.Value())
}

func TestDriver_SetSameTargetWhileSettled(t *testing.T) {
	d := NewDriver(DefaultSpring(), 1)
	d.SetTarget(1)

	assert.True(t, d.Settled(), "retargeting the resting value does not wake the driver")
}

func TestDriver_Jump(t *testing.T) {
	d := NewDriver(DefaultSpring(), 0)
	d.SetTarget(4)
	d.Step()

	d.Jump(2)

	assert.True(t, d.Settled())
	assert.Equal(t, 2.0, d.Value())
	assert.Equal(t, 2.0, d.Target())
	assert.Equal(t, 0.0, d.Velocity())
}

func TestDefaultSpring_OrigamiConversion(t *testing.T) {
	s := DefaultSpring()
	// Stiffness 230.2 and damping 22 at unit mass.
	assert.InDelta(t, 230.2, s.Frequency*s.Frequency, 0.1)
	assert.InDelta(t, 22, 2*s.Damping*s.Frequency, 0.05)
	assert.Less(t, s.Damping, 1.0, "default spring should overshoot")
}
