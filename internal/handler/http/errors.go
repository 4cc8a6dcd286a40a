// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself.
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// request carries neither an "Authorization" header nor a token cookie.
	ErrEmptyAuthorizationHeader = errors.New("no token provided")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but is not a bearer token.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrInvalidQueryParam is returned when limit or skip is not a
	// non-negative integer.
	ErrInvalidQueryParam = errors.New("invalid query parameter")

	// ErrMissingUpload is returned when a multipart request has no file part.
	ErrMissingUpload = errors.New("no file uploaded")
)
