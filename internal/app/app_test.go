// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-quiz-api/internal/config"
	"github.com/MKhiriev/go-quiz-api/internal/logger"
	"github.com/MKhiriev/go-quiz-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.StructuredConfig {
	return &config.StructuredConfig{
		App: config.App{Env: "test", Version: config.DefaultVersion},
		Auth: config.Auth{
			TokenSignKey:  "test-secret",
			TokenIssuer:   config.DefaultTokenIssuer,
			TokenDuration: time.Hour,
		},
		Server: config.Server{
			Host:      "127.0.0.1",
			Port:      5000,
			BodyLimit: 1 << 20,
		},
		CORS:    config.CORS{ClientURL: "https://app.example.com"},
		Workers: config.Workers{DBMonitorInterval: time.Second},
	}
}

func TestNew_BuildVersionReplacesDefault(t *testing.T) {
	a, err := New(testConfig(), NewBuildInfo("2.4.0", "", ""), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close(context.Background()) })

	assert.Equal(t, "2.4.0", a.Config().App.Version)
}

func TestNew_ExplicitVersionKept(t *testing.T) {
	cfg := testConfig()
	cfg.App.Version = "3.0.0"

	a, err := New(cfg, NewBuildInfo("2.4.0", "", ""), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close(context.Background()) })

	assert.Equal(t, "3.0.0", a.Config().App.Version)
	assert.Equal(t, config.DefaultVersion, testConfig().App.Version)
}

func TestNew_UnknownBuildVersionIgnored(t *testing.T) {
	a, err := New(testConfig(), NewBuildInfo("", "", ""), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close(context.Background()) })

	assert.Equal(t, config.DefaultVersion, a.Config().App.Version)
}

func TestHTTPHandler_WithoutDatabase(t *testing.T) {
	a, err := New(testConfig(), NewBuildInfo("", "", ""), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close(context.Background()) })

	h := a.HTTPHandler()

	t.Run("health reports disconnected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var health models.Health
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
		assert.Equal(t, "OK", health.Status)
		assert.Equal(t, models.DatabaseDisconnected, health.Database)
	})

	t.Run("login answers 503", func(t *testing.T) {
		body := strings.NewReader(`{"email":"ann@example.com","password":"secret1"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", body)
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("unknown route answers 404", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/nope", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"message":"Route not found"}`, rec.Body.String())
	})
}

func TestNewServer(t *testing.T) {
	a, err := New(testConfig(), NewBuildInfo("", "", ""), logger.Nop())
	require.NoError(t, err)

	srv, err := a.NewServer()
	require.NoError(t, err)
	assert.NotNil(t, srv)
	require.NoError(t, a.Close(context.Background()))
}

func TestNewServer_NoTransports(t *testing.T) {
	cfg := testConfig()
	cfg.Server.Port = 0

	a, err := New(cfg, NewBuildInfo("", "", ""), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close(context.Background()) })

	_, err = a.NewServer()
	assert.Error(t, err)
}

func TestPrintBuildInfo(t *testing.T) {
	var buf bytes.Buffer
	PrintBuildInfo(&buf, NewBuildInfo("1.0.0", "", "abc123"))

	assert.Equal(t, "Build version: 1.0.0\nBuild date: N/A\nBuild commit: abc123\n", buf.String())
}
