package main

import (
	"context"
	"errors"
	"net/http"

	"trivia-api/internal/database"
	"trivia-api/internal/router"
	"trivia-api/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	a, err := bootstrap()
	if err != nil {
		return err
	}
	defer a.close()

	if err := database.AutoMigrate(a.db, a.log); err != nil {
		return err
	}

	if a.cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	hub := ws.NewHub(a.log)
	srv := &http.Server{
		Addr:    ":" + a.cfg.Server.Port,
		Handler: router.New(a.db, hub, a.log),
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-cmd.Context().Done():
	}

	a.log.Info("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(ctx)
}
