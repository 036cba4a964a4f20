package main

import (
	"context"
	"log"

	"github.com/dmitrijs2005/clothescatalog/internal/server"
	"github.com/dmitrijs2005/clothescatalog/internal/server/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	app, err := server.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("%v", err)
	}
}
