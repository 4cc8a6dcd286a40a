// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-quiz-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Repository is the persistence contract for one document collection. The
// same contract is served by the MongoDB and the PostgreSQL backend.
//
// Owner-scoped methods match on both id and owner, so a document owned by
// someone else behaves exactly like a missing one.
type Repository[T models.Document] interface {
	// Insert stores a new document. Unique index violations yield
	// [ErrDuplicate].
	Insert(ctx context.Context, doc T) error

	// InsertMany stores several documents. Duplicates yield [ErrDuplicate];
	// documents stored before the violation stay stored.
	InsertMany(ctx context.Context, docs []T) error

	// Get returns the document with the given id owned by ownerID.
	Get(ctx context.Context, ownerID, id string) (T, error)

	// FindOne returns the first document whose field equals value, for any
	// owner.
	FindOne(ctx context.Context, field, value string) (T, error)

	// List returns one page of documents matching q and the total number of
	// matches.
	List(ctx context.Context, q models.ListQuery) ([]T, int64, error)

	// Replace overwrites the stored document with the same id and owner.
	Replace(ctx context.Context, doc T) error

	// Delete removes the document with the given id owned by ownerID.
	Delete(ctx context.Context, ownerID, id string) error

	// DeleteMany removes every document matching q's owner and equality
	// conditions and returns how many were removed.
	DeleteMany(ctx context.Context, q models.ListQuery) (int64, error)

	// SetField sets field to value on every document matching q's owner and
	// equality conditions and returns how many were modified.
	SetField(ctx context.Context, q models.ListQuery, field, value string) (int64, error)
}

// Connection is an established database connection pool.
type Connection interface {
	// Driver names the backend ("mongodb" or "postgres").
	Driver() string

	// Ping checks that the database answers.
	Ping(ctx context.Context) error

	// Close releases the pool.
	Close(ctx context.Context) error
}

// Dialer opens a new [Connection]. It is called with a context that carries
// the connect timeout and is detached from any single request.
type Dialer func(ctx context.Context) (Connection, error)

// ConnectObserver receives connection lifecycle events. Implemented by the
// metrics registry.
type ConnectObserver interface {
	ObserveConnectAttempt(driver string, err error)
	SetDatabaseUp(up bool)
}

// TokenDenylist records revoked token ids until they expire.
type TokenDenylist interface {
	// Revoke marks jti revoked for ttl.
	Revoke(ctx context.Context, jti string, ttl time.Duration) error

	// IsRevoked reports whether jti has been revoked.
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// ErrorClassificator decides whether a driver error is transient.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
