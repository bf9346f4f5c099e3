package command

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCooldown(t *testing.T) {
	now := time.Unix(1000, 0)
	c := NewCooldown(10 * time.Second)
	c.now = func() time.Time { return now }

	_, ok := c.Begin("1")
	assert.True(t, ok)

	// Busy.
	_, ok = c.Begin("1")
	assert.False(t, ok)

	// Other guilds are independent.
	_, ok = c.Begin("2")
	assert.True(t, ok)

	c.End("1")
	now = now.Add(4 * time.Second)
	wait, ok := c.Begin("1")
	assert.False(t, ok)
	assert.Equal(t, 6*time.Second, wait)

	now = now.Add(6 * time.Second)
	_, ok = c.Begin("1")
	assert.True(t, ok)
}

func TestCooldown_ZeroWindow(t *testing.T) {
	c := NewCooldown(0)

	_, ok := c.Begin("1")
	assert.True(t, ok)

	wait, ok := c.Begin("1")
	assert.False(t, ok)
	assert.Equal(t, time.Second, wait)

	c.End("1")
	_, ok = c.Begin("1")
	assert.True(t, ok)
}
