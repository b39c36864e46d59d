package grove

// TimeSource reports the current session time in seconds.
type TimeSource interface {
	Now() float64
}

// Clock is the global time progression of a session. The host advances it
// once per frame; while frozen, Advance has no effect.
type Clock struct {
	now   float64
	scale float64
}

// NewClock returns a running clock at time zero.
func NewClock() *Clock {
	return &Clock{scale: 1}
}

// Now returns the scaled time elapsed since the clock was created.
func (c *Clock) Now() float64 {
	return c.now
}

// Advance moves the clock forward by dt seconds of host time.
func (c *Clock) Advance(dt float64) {
	if dt <= 0 {
		return
	}
	c.now += dt * c.scale
}

// Freeze stops time progression.
func (c *Clock) Freeze() {
	c.scale = 0
}

// Resume restarts time progression at normal speed.
func (c *Clock) Resume() {
	c.scale = 1
}

// Running reports whether time is progressing.
func (c *Clock) Running() bool {
	return c.scale > 0
}
