// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/go-quiz-api/internal/mock"
	"github.com/MKhiriev/go-quiz-api/internal/store"
	"github.com/MKhiriev/go-quiz-api/models"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// sequentialIDs returns id-1, id-2, ...
type sequentialIDs struct {
	n int
}

func (s *sequentialIDs) Generate() string {
	s.n++
	return fmt.Sprintf("id-%d", s.n)
}

type testRepos struct {
	users          *mock.MockRepository[models.User]
	quizzes        *mock.MockRepository[models.Quiz]
	folders        *mock.MockRepository[models.Folder]
	bookmarks      *mock.MockRepository[models.Bookmark]
	students       *mock.MockRepository[models.Student]
	studentQuizzes *mock.MockRepository[models.StudentQuiz]
	denylist       *mock.MockTokenDenylist
}

func newTestRepos(t *testing.T) (*testRepos, *store.Storages) {
	t.Helper()
	ctrl := gomock.NewController(t)

	r := &testRepos{
		users:          mock.NewMockRepository[models.User](ctrl),
		quizzes:        mock.NewMockRepository[models.Quiz](ctrl),
		folders:        mock.NewMockRepository[models.Folder](ctrl),
		bookmarks:      mock.NewMockRepository[models.Bookmark](ctrl),
		students:       mock.NewMockRepository[models.Student](ctrl),
		studentQuizzes: mock.NewMockRepository[models.StudentQuiz](ctrl),
		denylist:       mock.NewMockTokenDenylist(ctrl),
	}

	return r, &store.Storages{
		Users:          r.users,
		Quizzes:        r.quizzes,
		Folders:        r.folders,
		Bookmarks:      r.bookmarks,
		Students:       r.students,
		StudentQuizzes: r.studentQuizzes,
		Denylist:       r.denylist,
	}
}

// frozen pins the clock of a resource service.
func frozen[T models.Document, PT document[T]](s *resourceService[T, PT]) {
	s.now = func() time.Time { return testNow }
}

func jwtDate(t time.Time) *jwt.NumericDate {
	return jwt.NewNumericDate(t)
}
