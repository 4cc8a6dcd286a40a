// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app is the composition root shared by the long-running server and
// the serverless handler. It builds storages, services and handlers from a
// loaded configuration; nothing here dials the database.
package app

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-quiz-api/internal/config"
	"github.com/MKhiriev/go-quiz-api/internal/handler"
	httphandler "github.com/MKhiriev/go-quiz-api/internal/handler/http"
	"github.com/MKhiriev/go-quiz-api/internal/logger"
	"github.com/MKhiriev/go-quiz-api/internal/metrics"
	"github.com/MKhiriev/go-quiz-api/internal/server"
	"github.com/MKhiriev/go-quiz-api/internal/service"
	"github.com/MKhiriev/go-quiz-api/internal/store"
	"github.com/MKhiriev/go-quiz-api/internal/workers"
	"github.com/MKhiriev/go-quiz-api/models"
)

// App holds the long-lived components of one process.
type App struct {
	cfg      config.StructuredConfig
	metrics  *metrics.Metrics
	storages *store.Storages
	services *service.Services
	logger   *logger.Logger
}

// New builds the application. A version injected at build time replaces the
// default version, an explicit APP_VERSION is kept.
func New(cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	appCfg := *cfg
	if v := buildInfo.BuildVersion(); v != "" && v != BuildInfoUnknown && appCfg.App.Version == config.DefaultVersion {
		appCfg.App.Version = v
	}

	m := metrics.New()

	storages, err := store.NewStorages(appCfg.Storage, m, logger)
	if err != nil {
		return nil, err
	}

	services, err := service.NewServices(storages, appCfg, logger)
	if err != nil {
		_ = storages.Close(context.Background())
		return nil, err
	}

	logger.Info().
		Str("env", appCfg.App.Env).
		Str("version", appCfg.App.Version).
		Str("backend", appCfg.Storage.Backend()).
		Msg("application assembled")

	return &App{
		cfg:      appCfg,
		metrics:  m,
		storages: storages,
		services: services,
		logger:   logger,
	}, nil
}

// Config returns the effective configuration.
func (a *App) Config() config.StructuredConfig {
	return a.cfg
}

// HTTPHandler returns the routed HTTP handler without any listener. The
// serverless entrypoint serves it directly.
func (a *App) HTTPHandler() http.Handler {
	return httphandler.NewHandler(a.services, a.storages.Connector, a.metrics, a.cfg, a.logger).Init()
}

// NewServer assembles the HTTP and gRPC servers, the database monitor and
// the shutdown closers for the long-running process.
func (a *App) NewServer() (server.Server, error) {
	handlers, err := handler.NewHandlers(a.services, a.storages.Connector, a.metrics, a.cfg, a.logger)
	if err != nil {
		return nil, err
	}

	reporters := []workers.HealthReporter{a.metrics}
	if handlers.GRPC != nil {
		reporters = append(reporters, handlers.GRPC)
	}
	monitor := workers.NewDBMonitor(a.storages.Connector, a.cfg.Workers.DBMonitorInterval, a.logger, reporters...)

	return server.NewServer(handlers, workers.NewWorkers(monitor), a.cfg.Server, a.logger, a.Close)
}

// Close releases the database connection and the Redis client.
func (a *App) Close(ctx context.Context) error {
	return a.storages.Close(ctx)
}
