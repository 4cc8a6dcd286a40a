// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-quiz-api/internal/logger"
	"github.com/MKhiriev/go-quiz-api/internal/metrics"
	"github.com/MKhiriev/go-quiz-api/models"
)

func TestRoutes_Root(t *testing.T) {
	rr := serve(t, newTestHandler(t, newTestServices()), http.MethodGet, "/", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, models.RootResponse{Message: rootMessage, Version: "test-version"}, decodeBody[models.RootResponse](t, rr))
}

func TestRoutes_HealthDoesNotTouchDatabase(t *testing.T) {
	svcs := newTestServices()
	svcs.AppInfoService = &mockAppInfoService{health: models.Health{
		Status:    "OK",
		Database:  models.DatabaseDisconnected,
		Timestamp: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}}
	db := &stubDatabase{}
	h := NewHandler(svcs, db, metrics.New(), testConfig(), logger.Nop())

	rr := serve(t, h, http.MethodGet, "/api/health", "")

	require.Equal(t, http.StatusOK, rr.Code)
	health := decodeBody[models.Health](t, rr)
	assert.Equal(t, "OK", health.Status)
	assert.Equal(t, models.DatabaseDisconnected, health.Database)
	assert.Zero(t, db.calls)
}

func TestRoutes_Version(t *testing.T) {
	rr := serve(t, newTestHandler(t, newTestServices()), http.MethodGet, "/api/version", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Equal(t, "test-version", rr.Body.String())
}

func TestRoutes_NotFoundIsJSON(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
	}{
		{"unknown path", http.MethodGet, "/nope"},
		{"unknown api path", http.MethodGet, "/api/nope"},
		{"wrong method on known path", http.MethodDelete, "/api/health"},
		{"wrong method on resource", http.MethodPatch, "/api/quiz/q1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := serve(t, newTestHandler(t, newTestServices()), tt.method, tt.target, "", authed...)

			assert.Equal(t, http.StatusNotFound, rr.Code)
			assert.Equal(t, msgRouteNotFound, decodeBody[models.MessageResponse](t, rr).Message)
		})
	}
}

func TestRoutes_DebugMailRouteToggle(t *testing.T) {
	svcs := newTestServices()
	svcs.AppInfoService = &mockAppInfoService{mail: models.MailStatus{Configured: true, Host: "smtp.example.com"}}

	disabled := serve(t, newTestHandler(t, svcs), http.MethodGet, "/api/debug/test-nodemailer", "")
	assert.Equal(t, http.StatusNotFound, disabled.Code)

	cfg := testConfig()
	cfg.App.EnableDebugRoutes = true
	h := NewHandler(svcs, &stubDatabase{}, metrics.New(), cfg, logger.Nop())

	enabled := serve(t, h, http.MethodGet, "/api/debug/test-nodemailer", "")
	require.Equal(t, http.StatusOK, enabled.Code)
	status := decodeBody[models.MailStatus](t, enabled)
	assert.True(t, status.Configured)
	assert.Equal(t, "smtp.example.com", status.Host)
}

func TestRoutes_PanicBecomesJSON500(t *testing.T) {
	svcs := newTestServices()
	h := newTestHandler(t, svcs)

	// QuizService.Get has no stub, so the mock panics on a nil func.
	rr := serve(t, h, http.MethodGet, "/api/quiz/q1", "", authed...)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, msgInternalError, decodeBody[errorResponse](t, rr).Message)
}

func TestRoutes_TraceIDHeader(t *testing.T) {
	rr := serve(t, newTestHandler(t, newTestServices()), http.MethodGet, "/", "", traceIDHeader, "abc-123")

	assert.Equal(t, "abc-123", rr.Header().Get(traceIDHeader))
}

func TestRoutes_CORSAppliedToRoutes(t *testing.T) {
	h := newTestHandler(t, newTestServices())

	allowed := serve(t, h, http.MethodGet, "/api/version", "", "Origin", "https://app.example.com")
	assert.Equal(t, http.StatusOK, allowed.Code)
	assert.Equal(t, "https://app.example.com", allowed.Header().Get("Access-Control-Allow-Origin"))

	rejected := serve(t, h, http.MethodGet, "/api/version", "", "Origin", "https://evil.example.com")
	assert.Equal(t, http.StatusForbidden, rejected.Code)
	assert.Empty(t, rejected.Header().Get("Access-Control-Allow-Origin"))
}

func TestRoutes_RequestTimeout(t *testing.T) {
	cfg := testConfig()
	cfg.Server.RequestTimeout = time.Minute
	h := NewHandler(newTestServices(), &stubDatabase{}, metrics.New(), cfg, logger.Nop())

	rr := serve(t, h, http.MethodGet, "/api/version", "")

	assert.Equal(t, http.StatusOK, rr.Code)
}
