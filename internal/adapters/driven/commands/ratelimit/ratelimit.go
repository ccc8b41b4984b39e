// Package ratelimit throttles commands sent to a device.
package ratelimit

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/heos-cli/internal/core/domain"
	"github.com/custodia-labs/heos-cli/internal/core/ports/driven"
)

// Ensure Commands implements the interface.
var _ driven.Commands = (*Commands)(nil)

// Commands wraps another driven.Commands and waits on a token bucket
// before every call. Errors from the wrapped port are returned unchanged.
type Commands struct {
	next    driven.Commands
	limiter *rate.Limiter
}

// New wraps next with the throttle described by cfg.
// Non-positive settings fall back to the defaults.
func New(next driven.Commands, cfg domain.CommandSettings) *Commands {
	defaults := domain.DefaultAppSettings().Commands
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = defaults.RateLimit
	}
	if cfg.Burst <= 0 {
		cfg.Burst = defaults.Burst
	}

	return &Commands{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.Burst),
	}
}

// Browse waits for a token, then browses.
func (c *Commands) Browse(ctx context.Context, sourceID int) ([]domain.RawItem, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return c.next.Browse(ctx, sourceID)
}

// BrowseContainer waits for a token, then browses one container page.
func (c *Commands) BrowseContainer(
	ctx context.Context,
	sourceID int,
	containerID string,
	start, end int,
) ([]domain.RawItem, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return c.next.BrowseContainer(ctx, sourceID, containerID, start, end)
}

// Allow reports whether a command could be sent right now without waiting.
func (c *Commands) Allow() bool {
	return c.limiter.Tokens() >= 1
}
