package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/dmitrijs2005/clothescatalog/internal/admin"
	"github.com/dmitrijs2005/clothescatalog/internal/server/auth"
	"github.com/dmitrijs2005/clothescatalog/internal/server/config"
	"github.com/dmitrijs2005/clothescatalog/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/clothescatalog/internal/server/services"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		if errors.Is(err, admin.ErrUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	db, err := sql.Open("pgx", cfg.DSN())
	if err != nil {
		return fmt.Errorf("db open error: %w", err)
	}
	defer db.Close()

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return err
	}

	tokens, err := auth.NewTokenManager(cfg.SecretKey, cfg.AccessTokenValidityDuration)
	if err != nil {
		return err
	}

	us := services.NewUserService(db, rm, auth.NewBcryptHasher(cfg.BcryptCost), tokens)
	app := admin.NewApp(us, services.NewPhotoService(cfg), os.Stdin, os.Stdout)

	return app.Run(ctx, admin.CommandArgs(os.Args[1:]))
}
