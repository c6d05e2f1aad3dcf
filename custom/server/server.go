package server

import (
	"context"
	"errors"
	"fmt"
	"github.com/romana/rlog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// Serve blocks until SIGINT or SIGTERM, then drains in-flight requests.
func (s *Server) Serve() error {
	defer s.Close()
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}

	shutdownErr := make(chan error)
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		sig := <-quit
		rlog.Infof("Shutting down server (%s)", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
		defer cancel()
		shutdownErr <- srv.Shutdown(ctx)
	}()

	rlog.Infof("Server is running on port %d", s.config.Port)
	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	if err = <-shutdownErr; err != nil {
		return err
	}
	rlog.Info("Server stopped")
	return nil
}
