// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is a typed HTTP client for the quiz API. It is used by the
// container health probe and by integration tooling that talks to a running
// deployment.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-quiz-api/models"
)

// APIClient is the client-side view of the quiz API.
//
// Authenticated calls send the token held by the client as a bearer
// Authorization header. Register and Login store the issued token.
//
// Non-2xx answers are returned as errors wrapping one of the sentinels in
// errors.go, so callers can branch with errors.Is.
type APIClient interface {
	// SetToken replaces the bearer token used by authenticated calls.
	SetToken(token string)
	// Token returns the bearer token currently held by the client.
	Token() string

	// Root calls GET /.
	Root(ctx context.Context) (models.RootResponse, error)
	// Health calls GET /api/health.
	Health(ctx context.Context) (models.Health, error)
	// Version calls GET /api/version.
	Version(ctx context.Context) (string, error)

	// Register calls POST /api/auth/register.
	Register(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error)
	// Login calls POST /api/auth/login.
	Login(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error)
	// Me calls GET /api/auth/me.
	Me(ctx context.Context) (models.PublicUser, error)
	// Logout calls POST /api/auth/logout and forgets the held token.
	Logout(ctx context.Context) error
}
