package cli

import (
	"context"
	"os"
)

func (a *App) edit(ctx context.Context) {
	id, err := GetSimpleText(a.reader, "User id", os.Stdout)
	if err != nil {
		a.logger.Error(ctx, "input error", "error", err)
		return
	}
	if id == "" {
		printlnFn("User id is required.")
		return
	}

	fields, err := a.promptFields(ctx)
	if err != nil {
		a.logger.Error(ctx, "input error", "error", err)
		return
	}

	res, err := a.ctrl.Update(ctx, id, fields)
	if err != nil {
		printlnFn("Invalid input:", err.Error())
		return
	}
	a.render(res)
}
