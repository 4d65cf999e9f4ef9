package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/userdesk/internal/client/syncer"
)

func (a *App) list(ctx context.Context) {
	a.render(a.ctrl.List(ctx))
}

// render prints a result and remembers its status for the prompt.
func (a *App) render(res syncer.Result) {
	a.lastStatus = res.Status

	switch res.Status {
	case syncer.StatusRejected:
		printlnFn("Request rejected:", res.Message)
		return
	case syncer.StatusUnavailable:
		printlnFn("Backend unreachable and no local data available.")
		return
	case syncer.StatusDegraded:
		printlnFn("Backend unreachable, showing local copy.")
	}

	for _, u := range res.Users {
		phone := u.Phone
		state := "complete"
		if !u.HasPhone() {
			phone = "-"
			state = "incomplete"
		}
		printlnFn(fmt.Sprintf("%-14s  %-20s  %-28s  %-14s  %s", u.ID, u.Name, u.Email, phone, state))
	}
	printlnFn(fmt.Sprintf("%d user(s)", len(res.Users)))
}
