// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business rules of the quiz API: account and
// token handling, ownership checks between records and the cascades that
// keep references consistent.
package service

import (
	"context"
	"io"

	"github.com/MKhiriev/go-quiz-api/models"
)

// Patch applies client changes to a stored document before it is saved.
type Patch[T any] func(doc *T) error

// ResourceService is the owner-scoped CRUD contract shared by every
// resource.
type ResourceService[T models.Document] interface {
	// Create assigns id, owner and timestamps to doc and stores it.
	Create(ctx context.Context, ownerID string, doc T) (T, error)

	// Get returns the owner's document with the given id.
	Get(ctx context.Context, ownerID, id string) (T, error)

	// List returns one page of the owner's documents. q.OwnerID must be set.
	List(ctx context.Context, q models.ListQuery) (models.ListResponse[T], error)

	// Update loads the owner's document, applies patch and saves the result.
	// Identity, owner and creation time cannot be changed by patch.
	Update(ctx context.Context, ownerID, id string, patch Patch[T]) (T, error)

	// Delete removes the owner's document and everything that depends on it.
	Delete(ctx context.Context, ownerID, id string) error
}

type QuizService interface {
	ResourceService[models.Quiz]
}

type FolderService interface {
	ResourceService[models.Folder]

	// ListQuizzes lists the owner's quizzes filed in folderID.
	ListQuizzes(ctx context.Context, folderID string, q models.ListQuery) (models.ListResponse[models.Quiz], error)
}

type BookmarkService interface {
	ResourceService[models.Bookmark]
}

type StudentService interface {
	ResourceService[models.Student]

	// Import reads an xlsx roster and stores its rows as students.
	Import(ctx context.Context, ownerID string, r io.Reader) (models.ImportResult, error)

	// Export writes the owner's students as an xlsx roster.
	Export(ctx context.Context, ownerID string, w io.Writer) error
}

type StudentQuizService interface {
	ResourceService[models.StudentQuiz]
}

type AuthService interface {
	// Register creates an account and returns it with a fresh token.
	Register(ctx context.Context, creds models.Credentials) (models.User, models.Token, error)

	// Login checks the password and returns the account with a fresh token.
	Login(ctx context.Context, creds models.Credentials) (models.User, models.Token, error)

	// Logout revokes token until it expires. A no-op without a denylist.
	Logout(ctx context.Context, token models.Token) error

	// Me returns the account of userID.
	Me(ctx context.Context, userID string) (models.User, error)

	// ParseToken validates a raw JWT and rejects revoked tokens.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string

	// Health reports liveness and the database state without connecting.
	Health(ctx context.Context) models.Health

	// MailStatus reports which mail settings are present.
	MailStatus(ctx context.Context) models.MailStatus
}
