package command

import (
	"sync"
	"time"
)

// Cooldown limits passes per guild: one at a time, and no new pass until
// window has elapsed since the previous one started.
type Cooldown struct {
	mu      sync.Mutex
	window  time.Duration
	started map[string]time.Time
	running map[string]bool
	now     func() time.Time
}

// NewCooldown creates a Cooldown. A zero window only prevents overlap.
func NewCooldown(window time.Duration) *Cooldown {
	return &Cooldown{
		window:  window,
		started: make(map[string]time.Time),
		running: make(map[string]bool),
		now:     time.Now,
	}
}

// Begin marks a pass as started for guildID. When the guild is busy or still
// cooling down it returns false and the time left to wait.
func (c *Cooldown) Begin(guildID string) (time.Duration, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if c.running[guildID] {
		return c.remaining(guildID, now), false
	}
	if last, ok := c.started[guildID]; ok {
		if wait := last.Add(c.window).Sub(now); wait > 0 {
			return wait, false
		}
	}

	c.started[guildID] = now
	c.running[guildID] = true
	return 0, true
}

// End marks the pass of guildID as finished.
func (c *Cooldown) End(guildID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.running, guildID)
}

func (c *Cooldown) remaining(guildID string, now time.Time) time.Duration {
	wait := c.started[guildID].Add(c.window).Sub(now)
	if wait < time.Second {
		return time.Second
	}
	return wait
}
