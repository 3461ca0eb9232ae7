package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestFixedStep(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	fs := NewFixedStep(4)
	fs.now = clock.now
	assert.Equal(t, 250*time.Millisecond, fs.Interval())

	assert.False(t, fs.ShouldStep())
	clock.advance(100 * time.Millisecond)
	assert.False(t, fs.ShouldStep())
	clock.advance(150 * time.Millisecond)
	assert.True(t, fs.ShouldStep())

	// A long stall yields a single generation.
	clock.advance(2 * time.Second)
	assert.True(t, fs.ShouldStep())
	assert.False(t, fs.ShouldStep())
}

func TestFixedStepFrequency(t *testing.T) {
	fs := NewFixedStep(0)
	assert.Equal(t, time.Second, fs.Interval())
	fs.SetFrequency(0.5)
	assert.Equal(t, 2*time.Second, fs.Interval())
	fs.SetFrequency(60)
	assert.Equal(t, time.Second/60, fs.Interval())
}

func TestFixedStepReset(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	fs := NewFixedStep(10)
	fs.now = clock.now
	fs.ShouldStep()
	clock.advance(90 * time.Millisecond)
	assert.False(t, fs.ShouldStep())
	fs.Reset()
	clock.advance(50 * time.Millisecond)
	assert.False(t, fs.ShouldStep())
	clock.advance(100 * time.Millisecond)
	assert.True(t, fs.ShouldStep())
}
