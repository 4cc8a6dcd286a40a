// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNotFound is returned when no document matches the id and owner, or
	// when an update or delete touches nothing.
	ErrNotFound = errors.New("document not found")

	// ErrDuplicate is returned when an insert violates a unique index
	// (user email, bookmark per owner and quiz).
	ErrDuplicate = errors.New("document already exists")

	// ErrDatabaseUnavailable is returned when the database cannot be reached:
	// the connect attempt failed or a transient connection error occurred.
	ErrDatabaseUnavailable = errors.New("database unavailable")

	// ErrNoBackend is returned by the connector when neither MONGODB_URI nor
	// DATABASE_URL is configured.
	ErrNoBackend = errors.New("no database configured")

	// ErrNotConnected is returned by operations that never trigger a connect
	// (ping, close) while no connection exists yet.
	ErrNotConnected = errors.New("database is not connected")

	// ErrConnectorClosed is returned by the connector once Close has run.
	ErrConnectorClosed = errors.New("database connector closed")

	// ErrInvalidQuery is returned when a list query names a field that is not
	// a plain identifier.
	ErrInvalidQuery = errors.New("invalid query")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a driver-level operation fails before any domain
// logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query or command fails.
	ErrExecutingQuery = errors.New("error executing query")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan document row")

	// ErrEncodingDocument is returned when a document cannot be serialized
	// for storage.
	ErrEncodingDocument = errors.New("failed to encode document")

	// ErrDecodingDocument is returned when a stored document cannot be
	// deserialized.
	ErrDecodingDocument = errors.New("failed to decode document")
)
