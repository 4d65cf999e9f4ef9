package cli

import (
	"context"
	"os"

	"github.com/dmitrijs2005/userdesk/internal/client/models"
)

func (a *App) promptFields(ctx context.Context) (models.Fields, error) {
	var f models.Fields
	var err error

	if f.Name, err = GetSimpleText(a.reader, "Name", os.Stdout); err != nil {
		return f, err
	}
	if f.Email, err = GetSimpleText(a.reader, "Email", os.Stdout); err != nil {
		return f, err
	}
	if f.Phone, err = GetSimpleText(a.reader, "Phone (optional)", os.Stdout); err != nil {
		return f, err
	}
	return f, nil
}

func (a *App) add(ctx context.Context) {
	fields, err := a.promptFields(ctx)
	if err != nil {
		a.logger.Error(ctx, "input error", "error", err)
		return
	}

	res, err := a.ctrl.Create(ctx, fields)
	if err != nil {
		printlnFn("Invalid input:", err.Error())
		return
	}
	a.render(res)
}
