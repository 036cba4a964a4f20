// Package server wires the catalog together: it opens the database, runs
// migrations, builds the services and runs the HTTP API and the gRPC health
// endpoint until a termination signal arrives.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/clothescatalog/internal/logging"
	"github.com/dmitrijs2005/clothescatalog/internal/server/auth"
	"github.com/dmitrijs2005/clothescatalog/internal/server/config"
	"github.com/dmitrijs2005/clothescatalog/internal/server/httpapi"
	"github.com/dmitrijs2005/clothescatalog/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/clothescatalog/internal/server/services"

	gs "github.com/dmitrijs2005/clothescatalog/internal/server/grpc"
)

// openDB is a seam for tests.
var openDB = func(dsn string) (*sql.DB, error) {
	return sql.Open("pgx", dsn)
}

type App struct {
	config         *config.Config
	logger         logging.Logger
	db             *sql.DB
	repomanager    repomanager.RepositoryManager
	userService    *services.UserService
	clothesService *services.ClothesService
	photoService   *services.PhotoService
}

func NewApp(c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)

	tokens, err := auth.NewTokenManager(c.SecretKey, c.AccessTokenValidityDuration)
	if err != nil {
		return nil, fmt.Errorf("token manager: %w", err)
	}

	db, err := openDB(c.DSN())
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	db.SetMaxOpenConns(c.DBMaxOpenConns)
	db.SetMaxIdleConns(c.DBMaxIdleConns)

	rm := repomanager.NewPostgresRepositoryManager()

	return &App{
		config:         c,
		logger:         logger,
		db:             db,
		repomanager:    rm,
		userService:    services.NewUserService(db, rm, auth.NewBcryptHasher(c.BcryptCost), tokens),
		clothesService: services.NewClothesService(db, rm),
		photoService:   services.NewPhotoService(c),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	h := httpapi.NewHandler(app.userService, app.clothesService, app.photoService, app.logger)
	s := httpapi.NewServer(app.config.HTTPAddr, httpapi.NewRouter(h), app.logger, app.config.ShutdownTimeout)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, "http server failed", "error", err)
		cancelFunc()
	}
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewHealthServer(app.config.GRPCAddr, app.logger, app.db, app.config.HealthProbeInterval)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, "grpc server failed", "error", err)
		cancelFunc()
	}
}

// Run migrates the schema and serves until ctx is cancelled, a signal is
// received or one of the servers fails. The database is closed on return.
func (app *App) Run(ctx context.Context) error {
	defer app.db.Close()

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	if err := app.repomanager.RunMigrations(ctx, app.db); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	app.logger.Info(context.Background(), "App stopped")
	return nil
}
