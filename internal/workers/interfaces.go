// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import (
	"context"

	"github.com/MKhiriev/go-quiz-api/internal/store"
)

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is cancelled.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    <-ctx.Done()
//	}
type Worker interface {
	Run(ctx context.Context)
}

// Database is the connection the monitor watches. [store.Connector]
// implements it.
type Database interface {
	Driver() string
	Connected() bool
	Get(ctx context.Context) (store.Connection, error)
	Ping(ctx context.Context) error
}

// HealthReporter receives the result of every database check.
type HealthReporter interface {
	SetDatabaseUp(up bool)
}
