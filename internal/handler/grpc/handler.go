// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc implements the gRPC transport of the quiz API: the standard
// grpc.health.v1 service and a logging interceptor.
package grpc

import (
	"context"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-quiz-api/internal/logger"
)

// ServiceName is the health service name that follows the database state.
// The empty service name reports the process itself and is always SERVING
// until shutdown.
const ServiceName = "quiz.api"

// traceIDKey is the metadata key carrying the trace id (lowercase, as
// required for gRPC metadata).
const traceIDKey = "x-trace-id"

// Handler is the root gRPC transport handler.
//
// It owns the health server whose status is driven by the database monitor.
// A handler instance is created once at startup and shared by the gRPC server.
type Handler struct {
	health *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. [ServiceName] starts NOT_SERVING until
// the first successful database check.
func NewHandler(logger *logger.Logger) *Handler {
	hs := health.NewServer()
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		health: hs,
		logger: logger,
	}
}

// Register attaches the handler's services to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// SetDatabaseUp switches [ServiceName] between SERVING and NOT_SERVING.
func (h *Handler) SetDatabaseUp(up bool) {
	servingStatus := healthpb.HealthCheckResponse_NOT_SERVING
	if up {
		servingStatus = healthpb.HealthCheckResponse_SERVING
	}
	h.health.SetServingStatus(ServiceName, servingStatus)
}

// Shutdown reports NOT_SERVING for every service and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

// UnaryLoggingInterceptor attaches a trace-scoped logger to the call context
// and logs method, status code and duration of every unary call.
func (h *Handler) UnaryLoggingInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		traceID := uuid.NewString()
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if ids := md.Get(traceIDKey); len(ids) > 0 && ids[0] != "" {
				traceID = ids[0]
			}
		}

		l := h.logger.WithTraceID(traceID)
		ctx = l.WithContext(ctx)

		start := time.Now()
		resp, err := handler(ctx, req)

		l.Info().
			Str("method", info.FullMethod).
			Str("code", status.Code(err).String()).
			Dur("duration", time.Since(start)).
			Send()

		return resp, err
	}
}
