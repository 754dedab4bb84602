package schedule

import (
	"context"
	"log/slog"
	"time"
)

// Midnight fires a callback shortly after each local midnight. A small
// buffer past 00:00:00 absorbs timer wake-up jitter so the callback
// always observes the new civil date. The location can be swapped at
// runtime when the user changes the display timezone.
type Midnight struct {
	buffer   time.Duration
	logger   *slog.Logger
	onTick   func(time.Time)
	relocate chan *time.Location
}

// NewMidnight builds a midnight scheduler. onTick receives the wall time
// at which the timer fired.
func NewMidnight(buffer time.Duration, logger *slog.Logger, onTick func(time.Time)) *Midnight {
	return &Midnight{
		buffer:   buffer,
		logger:   logger,
		onTick:   onTick,
		relocate: make(chan *time.Location, 1),
	}
}

// SetLocation re-arms the scheduler against a new timezone. Safe to call
// from any goroutine; the latest location wins.
func (m *Midnight) SetLocation(loc *time.Location) {
	select {
	case m.relocate <- loc:
	default:
		// Drain the stale pending location and replace it.
		select {
		case <-m.relocate:
		default:
		}
		m.relocate <- loc
	}
}

// Run blocks until ctx is canceled, invoking the callback after each
// midnight in loc.
func (m *Midnight) Run(ctx context.Context, loc *time.Location) {
	wait := UntilNextMidnight(time.Now(), loc) + m.buffer
	t := time.NewTimer(wait)
	m.logger.Info("midnight scheduler armed",
		"timezone", loc.String(), "next_in", wait.Round(time.Second).String())
	for {
		select {
		case <-ctx.Done():
			if !t.Stop() {
				select {
				case <-t.C:
				default:
				}
			}
			return
		case loc = <-m.relocate:
			if !t.Stop() {
				select {
				case <-t.C:
				default:
				}
			}
			wait = UntilNextMidnight(time.Now(), loc) + m.buffer
			t.Reset(wait)
			m.logger.Info("midnight scheduler re-armed",
				"timezone", loc.String(), "next_in", wait.Round(time.Second).String())
		case fired := <-t.C:
			m.onTick(fired)
			wait = UntilNextMidnight(time.Now(), loc) + m.buffer
			t.Reset(wait)
		}
	}
}
