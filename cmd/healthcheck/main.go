// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command healthcheck probes a running quiz API and exits non-zero when it is
// unhealthy. It is meant for container HEALTHCHECK instructions.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-quiz-api/internal/adapter"
	"github.com/MKhiriev/go-quiz-api/internal/logger"
	"github.com/MKhiriev/go-quiz-api/models"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("healthcheck", flag.ContinueOnError)
	address := fs.String("a", defaultAddress(), "quiz API base URL")
	timeout := fs.Duration("t", 5*time.Second, "probe timeout")
	requireDB := fs.Bool("db", false, "fail when the database is disconnected")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	log := logger.New(os.Stderr, "healthcheck", logger.LevelForEnv(os.Getenv("APP_ENV")))

	client, err := adapter.NewHTTPAPIClient(*address, *timeout, log)
	if err != nil {
		log.Error().Err(err).Msg("invalid address")
		return 2
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	health, err := client.Health(ctx)
	if err != nil {
		log.Error().Err(err).Str("address", *address).Msg("health check failed")
		return 1
	}

	if *requireDB && health.Database != models.DatabaseConnected {
		log.Error().Str("database", health.Database).Msg("database is not connected")
		return 1
	}

	fmt.Printf("%s version=%s database=%s\n", health.Status, health.Version, health.Database)
	return 0
}

func defaultAddress() string {
	if addr := os.Getenv("HEALTHCHECK_URL"); addr != "" {
		return addr
	}
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	return "http://127.0.0.1:" + port
}
