package cli

import (
	"context"
	"time"

	"github.com/dmitrijs2005/ruralportal/internal/client/api"
)

const kindStatus = "status"

// refreshStatus probes the backend and updates the mode, unless a newer
// probe started while this one was in flight.
func (a *App) refreshStatus(ctx context.Context) api.Status {
	id := a.guard.begin(kindStatus)

	ctx, cancel := context.WithTimeout(ctx, statusProbeTimeout)
	st := a.auth.Status(ctx)
	cancel()

	a.guard.apply(kindStatus, id, func() {
		if st.Online {
			a.setMode(ModeOnline)
		} else {
			a.setMode(ModeOffline)
		}
	})
	return st
}

func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.refreshStatus(ctx)
		case <-ctx.Done():
			return
		}
	}
}

// Status prints the backend reachability. It is advisory only.
func (a *App) Status(ctx context.Context, _ []string) error {
	st := a.refreshStatus(ctx)
	a.printf("Backend %s: %s\n", a.client.BaseURL(), st.Mode)
	return nil
}
