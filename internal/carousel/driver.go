package carousel

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// SpringConfig parameterises the active index spring.
type SpringConfig struct {
	FPS              int     // frames per second the driver is stepped at
	Frequency        float64 // angular frequency; higher settles faster
	Damping          float64 // damping ratio; below 1 overshoots
	RestDisplacement float64 // distance from target considered at rest
	RestSpeed        float64 // speed (units per second) considered at rest
}

// DefaultSpring returns the origami spring with tension 40 and friction 7,
// which converts to stiffness 230.2 and damping 22 at unit mass. That gives
// an angular frequency of sqrt(230.2) and a damping ratio of 22/(2*15.17):
// a short overshoot followed by a quick settle.
func DefaultSpring() SpringConfig {
	return SpringConfig{
		FPS:              60,
		Frequency:        15.17,
		Damping:          0.725,
		RestDisplacement: 0.001,
		RestSpeed:        0.001,
	}
}

// withDefaults fills zero or invalid fields from DefaultSpring.
func (c SpringConfig) withDefaults() SpringConfig {
	def := DefaultSpring()
	if c.FPS <= 0 {
		c.FPS = def.FPS
	}
	if c.Frequency <= 0 {
		c.Frequency = def.Frequency
	}
	if c.Damping <= 0 {
		c.Damping = def.Damping
	}
	if c.RestDisplacement <= 0 {
		c.RestDisplacement = def.RestDisplacement
	}
	if c.RestSpeed <= 0 {
		c.RestSpeed = def.RestSpeed
	}
	return c
}

// Driver animates a scalar toward a target with a damped spring.
//
// The driver is stepped once per frame by its owner. Changing the target
// keeps the current position and velocity, so redirecting mid-flight never
// makes the value jump.
type Driver struct {
	cfg    SpringConfig
	spring harmonica.Spring

	pos     float64
	vel     float64
	target  float64
	settled bool
}

// NewDriver creates a driver at rest at initial.
func NewDriver(cfg SpringConfig, initial float64) *Driver {
	cfg = cfg.withDefaults()
	return &Driver{
		cfg:     cfg,
		spring:  harmonica.NewSpring(harmonica.FPS(cfg.FPS), cfg.Frequency, cfg.Damping),
		pos:     initial,
		target:  initial,
		settled: true,
	}
}

// Config returns the effective spring configuration.
func (d *Driver) Config() SpringConfig {
	return d.cfg
}

// SetTarget redirects the animation toward target from the current value.
func (d *Driver) SetTarget(target float64) {
	if target == d.target && d.settled {
		return
	}
	d.target = target
	d.settled = false
}

// Jump moves the driver to value immediately and stops any animation.
func (d *Driver) Jump(value float64) {
	d.pos = value
	d.vel = 0
	d.target = value
	d.settled = true
}

// Step advances the spring by one frame and returns the new value. Once the
// value is within the rest thresholds it snaps to the target exactly.
func (d *Driver) Step() float64 {
	if d.settled {
		return d.pos
	}
	d.pos, d.vel = d.spring.Update(d.pos, d.vel, d.target)
	if math.Abs(d.pos-d.target) < d.cfg.RestDisplacement && math.Abs(d.vel) < d.cfg.RestSpeed {
		d.pos = d.target
		d.vel = 0
		d.settled = true
	}
	return d.pos
}

// Value returns the current animated value.
func (d *Driver) Value() float64 {
	return d.pos
}

// Velocity returns the current velocity in units per second.
func (d *Driver) Velocity() float64 {
	return d.vel
}

// Target returns the value the driver is animating toward.
func (d *Driver) Target() float64 {
	return d.target
}

// Settled reports whether the driver is at rest on its target.
func (d *Driver) Settled() bool {
	return d.settled
}

// FrameInterval is the wall-clock time between two steps.
func (d *Driver) FrameInterval() time.Duration {
	return time.Second / time.Duration(d.cfg.FPS)
}
