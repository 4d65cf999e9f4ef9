package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/userdesk/internal/client/syncer"
)

func (a *App) report(ctx context.Context) {
	res := a.ctrl.List(ctx)
	a.lastStatus = res.Status

	switch res.Status {
	case syncer.StatusRejected:
		printlnFn("Request rejected:", res.Message)
		return
	case syncer.StatusUnavailable:
		printlnFn("Backend unreachable and no local data available.")
		return
	case syncer.StatusDegraded:
		printlnFn("Backend unreachable, report built from local copy.")
	}

	st := syncer.CalcStats(res.Users)
	printlnFn(fmt.Sprintf("Total users:    %d", st.Total))
	printlnFn(fmt.Sprintf("With phone:     %d", st.WithPhone))
	printlnFn(fmt.Sprintf("Without phone:  %d", st.WithoutPhone))
	printlnFn(fmt.Sprintf("Phone coverage: %d%%", st.PhoneCoveragePercent))
}

func (a *App) whoami(ctx context.Context) {
	name, err := a.ctrl.ActiveUser(ctx)
	if err != nil {
		a.logger.Error(ctx, "failed to read active user marker", "error", err)
		return
	}
	if name == "" {
		printlnFn("No active user.")
		return
	}
	printlnFn("Active user:", name)
}
