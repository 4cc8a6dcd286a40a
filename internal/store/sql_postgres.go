// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-quiz-api/internal/config"
	"github.com/MKhiriev/go-quiz-api/internal/logger"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// DialPostgres returns a [Dialer] that opens a pgx pool, pings it and applies
// the migrations.
func DialPostgres(cfg config.Storage, log *logger.Logger) Dialer {
	return func(ctx context.Context) (Connection, error) {
		db, err := NewConnectPostgres(ctx, cfg.Postgres, log)
		if err != nil {
			return nil, err
		}

		if err = db.Migrate(ctx); err != nil {
			log.Err(err).Str("func", "DialPostgres").Msg("error applying migrations")
			_ = db.DB.Close()
			return nil, err
		}

		return db, nil
	}
}

// NewConnectPostgres opens and pings a PostgreSQL pool.
func NewConnectPostgres(ctx context.Context, cfg config.Postgres, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occurred during database connection")
		return nil, fmt.Errorf("error occurred during database connection: %w", err)
	}

	// serverless instances keep few connections
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("error pinging postgres: %w", err)
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return NewDB(conn, log), nil
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// classify maps a driver error onto the package sentinels.
func (db *DB) classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return ErrNotFound
	case postgresError(err) == pgerrcode.UniqueViolation:
		return fmt.Errorf("%w: %w", ErrDuplicate, err)
	case db.errorClassificator.Classify(err) == Retryable, errors.Is(err, sql.ErrConnDone):
		return fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	default:
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}
