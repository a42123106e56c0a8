package timer

import (
	"context"
	"log/slog"
	"time"
)

type TimerAction int

const (
	Start TimerAction = iota
	Stop
)

// Ticker paces live simulation. While started it sends on tickCh every interval.
// It starts stopped and returns when ctx is done.
func Ticker(ctx context.Context, interval time.Duration, tickCh chan<- bool, action <-chan TimerAction) {
	ticker := time.NewTicker(interval)
	ticker.Stop()
	defer ticker.Stop()

	for {
		select {
		case a := <-action:
			switch a {
			case Start:
				resetTicker(ticker, interval)
			case Stop:
				ticker.Stop()
			}
		case <-ticker.C:
			select {
			case tickCh <- true:
			case <-ctx.Done():
				return
			}
		case <-ctx.Done():
			slog.Debug("Ticker stopped")
			return
		}
	}
}

// Stops the ticker, drops a pending tick and restarts it.
func resetTicker(t *time.Ticker, interval time.Duration) {
	t.Stop()
	select {
	case <-t.C:
	default:
	}
	t.Reset(interval)
}
