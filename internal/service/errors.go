// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

// Error classes. Every service error matches exactly one of them with
// [errors.Is]; the HTTP layer maps them to statuses.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrConflict     = errors.New("conflict")
)

var (
	ErrInvalidCredentials      = fmt.Errorf("%w: invalid email or password", ErrUnauthorized)
	ErrTokenIsExpiredOrInvalid = fmt.Errorf("%w: token is expired or invalid", ErrUnauthorized)
	ErrTokenRevoked            = fmt.Errorf("%w: token has been revoked", ErrUnauthorized)
	ErrNoOwner                 = fmt.Errorf("%w: no user in request context", ErrUnauthorized)

	ErrEmailTaken        = fmt.Errorf("%w: user with this email already exists", ErrConflict)
	ErrAlreadyBookmarked = fmt.Errorf("%w: quiz is already bookmarked", ErrConflict)

	ErrQuizNotAccessible = fmt.Errorf("%w: quiz is private", ErrForbidden)

	ErrFolderNotFound      = fmt.Errorf("%w: folder does not exist", ErrInvalidInput)
	ErrQuizNotFound        = fmt.Errorf("%w: quiz does not exist", ErrInvalidInput)
	ErrStudentNotFound     = fmt.Errorf("%w: student does not exist", ErrInvalidInput)
	ErrUnsupportedSort     = fmt.Errorf("%w: unsupported sort field", ErrInvalidInput)
	ErrInvalidSpreadsheet  = fmt.Errorf("%w: spreadsheet cannot be read", ErrInvalidInput)
	ErrMissingNameColumn   = fmt.Errorf("%w: spreadsheet has no name column", ErrInvalidInput)
	ErrTooManyRosterRows   = fmt.Errorf("%w: spreadsheet has too many rows", ErrInvalidInput)
	ErrInvalidDataProvided = fmt.Errorf("%w: invalid data provided", ErrInvalidInput)
)

var (
	ErrTokenCreationFailed   = errors.New("token creation failed")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
