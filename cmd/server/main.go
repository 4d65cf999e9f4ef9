package main

import (
	"context"
	"log"

	"github.com/dmitrijs2005/userdesk/internal/server"
	"github.com/dmitrijs2005/userdesk/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg := config.Load()
	app, err := server.NewApp(ctx, cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
