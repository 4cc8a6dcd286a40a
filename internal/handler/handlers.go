// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler assembles the transport handlers enabled by configuration.
package handler

import (
	"github.com/MKhiriev/go-quiz-api/internal/config"
	"github.com/MKhiriev/go-quiz-api/internal/handler/grpc"
	"github.com/MKhiriev/go-quiz-api/internal/handler/http"
	"github.com/MKhiriev/go-quiz-api/internal/logger"
	"github.com/MKhiriev/go-quiz-api/internal/metrics"
	"github.com/MKhiriev/go-quiz-api/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, database http.Database, m *metrics.Metrics, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.Port != 0 {
		handlers.HTTP = http.NewHandler(services, database, m, cfg, logger)
	}
	if cfg.Server.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
