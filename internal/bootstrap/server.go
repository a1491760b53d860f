// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package bootstrap

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/LerianStudio/sales-report/pkg"
	"github.com/LerianStudio/sales-report/pkg/constant"

	libCommons "github.com/LerianStudio/lib-commons/v3/commons"
	"github.com/LerianStudio/lib-commons/v3/commons/log"
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

// Server represents the local http server that fronts the report use case.
type Server struct {
	app             *fiber.App
	serverAddress   string
	shutdownTimeout time.Duration
	logger          log.Logger
	signals         chan os.Signal
}

// ServerAddress returns the server address.
func (s *Server) ServerAddress() string {
	return s.serverAddress
}

// NewServer creates an instance of Server.
func NewServer(cfg *Config, app *fiber.App, logger log.Logger) *Server {
	return &Server{
		app:             app,
		serverAddress:   cfg.ServerAddress,
		shutdownTimeout: constant.ServerShutdownTimeout,
		logger:          logger,
		signals:         make(chan os.Signal, 1),
	}
}

// Run listens until the listener fails or SIGINT/SIGTERM arrives, then drains in-flight requests.
func (s *Server) Run(_ *libCommons.Launcher) error {
	listenErr := make(chan error, 1)

	pkg.GoNamed(s.logger, "http-server", func() {
		s.logger.Infof("HTTP server listening on %s", s.ServerAddress())

		listenErr <- s.app.Listen(s.ServerAddress())
	}, func(recovered any) {
		listenErr <- fmt.Errorf("http server panic: %v", recovered)
	})

	signal.Notify(s.signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(s.signals)

	select {
	case err := <-listenErr:
		if err != nil {
			return errors.Wrap(err, "failed to run the server")
		}

		return nil
	case sig := <-s.signals:
		s.logger.Infof("Received %s, shutting down HTTP server", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.app.ShutdownWithContext(ctx); err != nil {
		return errors.Wrap(err, "failed to shut down the server")
	}

	s.logger.Info("HTTP server stopped")

	return nil
}
