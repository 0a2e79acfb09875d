package control

import (
	"context"
	"time"
)

// Run ticks c at the given rate until ctx is cancelled, starting it first if it is Ready.
// frame is called before every tick to supply the current viewport. Run is the scheduler for
// headless use; windowed frontends call Tick from their own frame loop instead.
func Run(ctx context.Context, c *Controller, fps int, frame func() Frame) error {
	if fps <= 0 {
		fps = 60
	}
	c.Start()
	defer c.Stop()

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			c.Tick(frame())
		}
	}
}
