package cli

import (
	"context"
	"os"
)

func (a *App) delete(ctx context.Context) {
	id, err := GetSimpleText(a.reader, "User id to delete", os.Stdout)
	if err != nil {
		a.logger.Error(ctx, "input error", "error", err)
		return
	}
	if id == "" {
		printlnFn("User id is required.")
		return
	}

	a.render(a.ctrl.Delete(ctx, id))
}
