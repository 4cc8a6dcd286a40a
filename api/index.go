// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler is the Vercel serverless entrypoint. The application is
// assembled once per cold start; the database is connected lazily by the
// first request that needs it.
package handler

import (
	"net/http"
	"os"
	"sync"

	"github.com/MKhiriev/go-quiz-api/internal/app"
	"github.com/MKhiriev/go-quiz-api/internal/config"
	"github.com/MKhiriev/go-quiz-api/internal/logger"
	"github.com/MKhiriev/go-quiz-api/internal/utils"
)

var (
	initOnce sync.Once
	router   http.Handler
	initErr  error

	loadConfig = config.GetEnvConfig
)

// Handler serves every request routed to the function.
func Handler(w http.ResponseWriter, r *http.Request) {
	initOnce.Do(initRouter)

	if initErr != nil {
		utils.WriteMessage(w, "Server initialization failed", http.StatusInternalServerError)
		return
	}
	router.ServeHTTP(w, r)
}

func initRouter() {
	cfg, err := loadConfig()
	if err != nil {
		logger.NewLogger("quiz-serverless").Error().Err(err).Msg("error getting configs")
		initErr = err
		return
	}

	log := logger.New(os.Stdout, "quiz-serverless", logger.LevelForEnv(cfg.App.Env))

	application, err := app.New(cfg, app.NewBuildInfo("", "", ""), log)
	if err != nil {
		log.Error().Err(err).Msg("error assembling application")
		initErr = err
		return
	}

	router = application.HTTPHandler()
}
