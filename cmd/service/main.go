package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gitlab.com/dirk.krummacker/contacts-web/internal/config"
	"gitlab.com/dirk.krummacker/contacts-web/internal/logger"
	"gitlab.com/dirk.krummacker/contacts-web/internal/metrics"
	"gitlab.com/dirk.krummacker/contacts-web/internal/service"
	"gitlab.com/dirk.krummacker/contacts-web/internal/store"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Usage example on the command line:
// > PORT=8080 DBHOST=localhost DBUSER=dirk DBPWD=bullo92 GIN_MODE=release GIN_LOGGING=OFF go run main.go
func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Println("could not create logger", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Fatal("contacts service stopped", zap.Error(err))
	}
}

func run(cfg config.Config, log *zap.Logger) error {
	sqlDB, err := service.CreateDatabase(cfg)
	if err != nil {
		return err
	}
	contacts, err := store.New(sqlDB)
	if err != nil {
		sqlDB.Close()
		return err
	}
	defer contacts.Close()

	router := service.SetupHttpRouter(service.New(contacts, log, metrics.New()), cfg.GinLogging)
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting http server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down server gracefully")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
