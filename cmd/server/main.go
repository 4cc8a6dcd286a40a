// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"os"

	"github.com/MKhiriev/go-quiz-api/internal/app"
	"github.com/MKhiriev/go-quiz-api/internal/config"
	"github.com/MKhiriev/go-quiz-api/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := app.NewBuildInfo(buildVersion, buildDate, buildCommit)
	app.PrintBuildInfo(os.Stdout, buildInfo)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("quiz-server").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.New(os.Stdout, "quiz-server", logger.LevelForEnv(cfg.App.Env))
	log.Debug().Any("config", cfg.Redacted()).Msg("received configs")

	application, err := app.New(cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error assembling application")
	}

	srv, err := application.NewServer()
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
