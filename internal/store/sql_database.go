// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/go-quiz-api/internal/config"
	"github.com/MKhiriev/go-quiz-api/internal/logger"
	"github.com/MKhiriev/go-quiz-api/migrations"
)

// DB wraps the PostgreSQL pool together with the error classifier used to
// tell transient failures from permanent ones.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB wraps an open *sql.DB.
func NewDB(conn *sql.DB, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             log,
	}
}

// Migrate applies the embedded goose migrations.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB)
}

// Driver implements [Connection].
func (db *DB) Driver() string { return config.BackendPostgres }

// Ping implements [Connection].
func (db *DB) Ping(ctx context.Context) error {
	return db.PingContext(ctx)
}

// Close implements [Connection].
func (db *DB) Close(_ context.Context) error {
	return db.DB.Close()
}
