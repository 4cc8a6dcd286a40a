// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-quiz-api/internal/logger"
)

// DBMonitor checks the database on an interval and publishes the result to
// its reporters. Without a connection it dials through the shared connector,
// so a failed startup connect is retried on every tick.
type DBMonitor struct {
	db        Database
	reporters []HealthReporter
	interval  time.Duration

	// up is the last reported state; nil before the first check.
	up *bool

	logger *logger.Logger
}

func NewDBMonitor(db Database, interval time.Duration, logger *logger.Logger, reporters ...HealthReporter) *DBMonitor {
	return &DBMonitor{
		db:        db,
		reporters: reporters,
		interval:  interval,
		logger:    logger,
	}
}

// Run checks once immediately and then on every tick until ctx is cancelled.
func (m *DBMonitor) Run(ctx context.Context) {
	m.logger.Info().Dur("interval", m.interval).Msg("database monitor started")

	m.check(ctx)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.logger.Info().Msg("database monitor stopped")
			return
		case <-ticker.C:
			m.check(ctx)
		}
	}
}

// check runs one probe bounded by the interval and reports the outcome.
func (m *DBMonitor) check(ctx context.Context) bool {
	if m.db.Driver() == "" {
		m.report(false, nil)
		return false
	}

	checkCtx, cancel := context.WithTimeout(ctx, m.interval)
	defer cancel()

	var err error
	if m.db.Connected() {
		err = m.db.Ping(checkCtx)
	} else {
		_, err = m.db.Get(checkCtx)
	}

	up := err == nil
	m.report(up, err)
	return up
}

func (m *DBMonitor) report(up bool, err error) {
	if m.up == nil || *m.up != up {
		if up {
			m.logger.Info().Str("driver", m.db.Driver()).Msg("database is up")
		} else {
			m.logger.Warn().Err(err).Str("driver", m.db.Driver()).Msg("database is down")
		}
	}
	m.up = &up

	for _, r := range m.reporters {
		r.SetDatabaseUp(up)
	}
}
