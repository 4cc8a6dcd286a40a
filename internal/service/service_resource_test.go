// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-quiz-api/internal/store"
	"github.com/MKhiriev/go-quiz-api/internal/validators"
	"github.com/MKhiriev/go-quiz-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newQuizzes(t *testing.T) (*testRepos, *quizService) {
	t.Helper()
	repos, storages := newTestRepos(t)
	svc := NewQuizService(storages, validators.NewStructValidator(), &sequentialIDs{}).(*quizService)
	frozen(svc.resourceService)
	return repos, svc
}

// ─────────────────────────────────────────────
// Create
// ─────────────────────────────────────────────

func TestQuizService_Create_StampsAndStores(t *testing.T) {
	repos, svc := newQuizzes(t)
	ctx := context.Background()

	repos.folders.EXPECT().Get(ctx, "u-1", "f-1").Return(models.Folder{}, nil)
	repos.quizzes.EXPECT().Insert(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, q models.Quiz) error {
		assert.Equal(t, "id-1", q.ID)
		assert.Equal(t, "u-1", q.OwnerID)
		assert.Equal(t, testNow, q.CreatedAt)
		assert.Equal(t, testNow, q.UpdatedAt)
		assert.Equal(t, "Week 1", q.Title)
		require.Len(t, q.Questions, 1)
		assert.Equal(t, "id-2", q.Questions[0].ID)
		assert.NotNil(t, q.Tags)
		return nil
	})

	quiz, err := svc.Create(ctx, "u-1", models.Quiz{
		Title:     "  Week 1 ",
		FolderID:  "f-1",
		Questions: []models.Question{{Text: "2+2?", Points: 1}},
	})

	require.NoError(t, err)
	assert.Equal(t, "id-1", quiz.ID)
}

func TestQuizService_Create_ForeignFolder(t *testing.T) {
	repos, svc := newQuizzes(t)
	ctx := context.Background()

	repos.folders.EXPECT().Get(ctx, "u-1", "f-9").Return(models.Folder{}, store.ErrNotFound)

	_, err := svc.Create(ctx, "u-1", models.Quiz{Title: "t", FolderID: "f-9"})

	require.ErrorIs(t, err, ErrFolderNotFound)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestQuizService_Create_ValidationError(t *testing.T) {
	_, svc := newQuizzes(t)

	_, err := svc.Create(context.Background(), "u-1", models.Quiz{})

	assert.ErrorIs(t, err, validators.ErrValidation)
}

func TestQuizService_Create_NoOwner(t *testing.T) {
	_, svc := newQuizzes(t)

	_, err := svc.Create(context.Background(), "", models.Quiz{Title: "t"})

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestQuizService_Create_StoreUnavailable(t *testing.T) {
	repos, svc := newQuizzes(t)

	repos.quizzes.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(store.ErrDatabaseUnavailable)

	_, err := svc.Create(context.Background(), "u-1", models.Quiz{Title: "t"})

	assert.ErrorIs(t, err, store.ErrDatabaseUnavailable)
}

// ─────────────────────────────────────────────
// Update
// ─────────────────────────────────────────────

func TestQuizService_Update_KeepsIdentity(t *testing.T) {
	repos, svc := newQuizzes(t)
	ctx := context.Background()

	stored := models.Quiz{Base: models.Base{ID: "q-1", OwnerID: "u-1", CreatedAt: testNow.AddDate(0, 0, -1)}, Title: "Old", FolderID: "f-1"}
	repos.quizzes.EXPECT().Get(ctx, "u-1", "q-1").Return(stored, nil)
	repos.quizzes.EXPECT().Replace(ctx, gomock.Any()).Return(nil)

	patch := func(q *models.Quiz) error {
		return json.Unmarshal([]byte(`{"id":"hijack","ownerId":"u-2","title":"New","isPublic":true}`), q)
	}

	got, err := svc.Update(ctx, "u-1", "q-1", patch)

	require.NoError(t, err)
	assert.Equal(t, "q-1", got.ID)
	assert.Equal(t, "u-1", got.OwnerID)
	assert.Equal(t, stored.CreatedAt, got.CreatedAt)
	assert.Equal(t, testNow, got.UpdatedAt)
	assert.Equal(t, "New", got.Title)
	assert.True(t, got.IsPublic)
	assert.Equal(t, "f-1", got.FolderID)
}

func TestQuizService_Update_NotFound(t *testing.T) {
	repos, svc := newQuizzes(t)

	repos.quizzes.EXPECT().Get(gomock.Any(), "u-1", "q-1").Return(models.Quiz{}, store.ErrNotFound)

	_, err := svc.Update(context.Background(), "u-1", "q-1", nil)

	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestQuizService_Update_PatchError(t *testing.T) {
	repos, svc := newQuizzes(t)
	patchErr := errors.New("bad body")

	repos.quizzes.EXPECT().Get(gomock.Any(), "u-1", "q-1").Return(models.Quiz{Title: "t"}, nil)

	_, err := svc.Update(context.Background(), "u-1", "q-1", func(*models.Quiz) error { return patchErr })

	assert.ErrorIs(t, err, patchErr)
}

// ─────────────────────────────────────────────
// List
// ─────────────────────────────────────────────

func TestQuizService_List_Defaults(t *testing.T) {
	repos, svc := newQuizzes(t)

	repos.quizzes.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, q models.ListQuery) ([]models.Quiz, int64, error) {
			assert.Equal(t, "u-1", q.OwnerID)
			assert.Equal(t, int64(models.DefaultListLimit), q.Limit)
			assert.Equal(t, models.FieldCreatedAt, q.SortField)
			assert.True(t, q.SortDesc)
			assert.Equal(t, models.FieldTitle, q.SearchField)
			return nil, 0, nil
		})

	page, err := svc.List(context.Background(), models.ListQuery{OwnerID: "u-1", SearchTerm: "alg"})

	require.NoError(t, err)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
}

func TestNormalizeListQuery(t *testing.T) {
	q, err := normalizeListQuery(models.ListQuery{Limit: 1000, Skip: -5, SortField: models.FieldUpdatedAt}, models.FieldName)
	require.NoError(t, err)
	assert.Equal(t, int64(models.MaxListLimit), q.Limit)
	assert.Equal(t, int64(0), q.Skip)
	assert.False(t, q.SortDesc)

	_, err = normalizeListQuery(models.ListQuery{SortField: models.FieldName}, models.FieldName)
	assert.NoError(t, err)

	_, err = normalizeListQuery(models.ListQuery{SortField: "passwordHash"}, models.FieldName)
	assert.ErrorIs(t, err, ErrUnsupportedSort)

	_, err = normalizeListQuery(models.ListQuery{SortField: models.FieldName}, "")
	assert.ErrorIs(t, err, ErrUnsupportedSort)
}

func TestQuizService_List_NoOwner(t *testing.T) {
	_, svc := newQuizzes(t)

	_, err := svc.List(context.Background(), models.ListQuery{})

	assert.ErrorIs(t, err, ErrNoOwner)
}

// ─────────────────────────────────────────────
// Delete cascades
// ─────────────────────────────────────────────

func TestQuizService_Delete_RemovesReferences(t *testing.T) {
	repos, svc := newQuizzes(t)
	ctx := context.Background()
	refs := models.ListQuery{OwnerID: "u-1"}.Where(models.FieldQuizID, "q-1")

	repos.quizzes.EXPECT().Delete(ctx, "u-1", "q-1").Return(nil)
	repos.bookmarks.EXPECT().DeleteMany(ctx, refs).Return(int64(2), nil)
	repos.studentQuizzes.EXPECT().DeleteMany(ctx, refs).Return(int64(0), nil)

	require.NoError(t, svc.Delete(ctx, "u-1", "q-1"))
}

func TestQuizService_Delete_NotFoundSkipsCascade(t *testing.T) {
	repos, svc := newQuizzes(t)

	repos.quizzes.EXPECT().Delete(gomock.Any(), "u-1", "q-1").Return(store.ErrNotFound)

	assert.ErrorIs(t, svc.Delete(context.Background(), "u-1", "q-1"), store.ErrNotFound)
}

func TestFolderService_Delete_DetachesQuizzes(t *testing.T) {
	repos, storages := newTestRepos(t)
	svc := NewFolderService(storages, validators.NewStructValidator(), &sequentialIDs{})
	ctx := context.Background()

	repos.folders.EXPECT().Delete(ctx, "u-1", "f-1").Return(nil)
	repos.quizzes.EXPECT().
		SetField(ctx, models.ListQuery{OwnerID: "u-1"}.Where(models.FieldFolderID, "f-1"), models.FieldFolderID, "").
		Return(int64(3), nil)

	require.NoError(t, svc.Delete(ctx, "u-1", "f-1"))
}

func TestFolderService_Delete_CascadeFailure(t *testing.T) {
	repos, storages := newTestRepos(t)
	svc := NewFolderService(storages, validators.NewStructValidator(), &sequentialIDs{})

	repos.folders.EXPECT().Delete(gomock.Any(), "u-1", "f-1").Return(nil)
	repos.quizzes.EXPECT().SetField(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(int64(0), store.ErrDatabaseUnavailable)

	assert.ErrorIs(t, svc.Delete(context.Background(), "u-1", "f-1"), store.ErrDatabaseUnavailable)
}

func TestFolderService_ListQuizzes(t *testing.T) {
	repos, storages := newTestRepos(t)
	svc := NewFolderService(storages, validators.NewStructValidator(), &sequentialIDs{})
	ctx := context.Background()

	repos.folders.EXPECT().Get(ctx, "u-1", "f-1").Return(models.Folder{}, nil)
	repos.quizzes.EXPECT().List(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, q models.ListQuery) ([]models.Quiz, int64, error) {
			assert.Equal(t, "f-1", q.Equals[models.FieldFolderID])
			return []models.Quiz{{Title: "a"}}, 1, nil
		})

	page, err := svc.ListQuizzes(ctx, "f-1", models.ListQuery{OwnerID: "u-1"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
}

func TestFolderService_ListQuizzes_UnknownFolder(t *testing.T) {
	repos, storages := newTestRepos(t)
	svc := NewFolderService(storages, validators.NewStructValidator(), &sequentialIDs{})

	repos.folders.EXPECT().Get(gomock.Any(), "u-1", "f-1").Return(models.Folder{}, store.ErrNotFound)

	_, err := svc.ListQuizzes(context.Background(), "f-1", models.ListQuery{OwnerID: "u-1"})

	assert.ErrorIs(t, err, store.ErrNotFound)
}

// ─────────────────────────────────────────────
// Bookmarks
// ─────────────────────────────────────────────

func TestBookmarkService_Create(t *testing.T) {
	tests := []struct {
		name     string
		quiz     models.Quiz
		findErr  error
		insert   bool
		inserErr error
		wantErr  error
	}{
		{name: "own quiz", quiz: models.Quiz{Base: models.Base{OwnerID: "u-1"}}, insert: true},
		{name: "public quiz", quiz: models.Quiz{Base: models.Base{OwnerID: "u-2"}, IsPublic: true}, insert: true},
		{name: "private foreign quiz", quiz: models.Quiz{Base: models.Base{OwnerID: "u-2"}}, wantErr: ErrQuizNotAccessible},
		{name: "missing quiz", findErr: store.ErrNotFound, wantErr: ErrQuizNotFound},
		{name: "duplicate", quiz: models.Quiz{Base: models.Base{OwnerID: "u-1"}}, insert: true, inserErr: store.ErrDuplicate, wantErr: ErrAlreadyBookmarked},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repos, storages := newTestRepos(t)
			svc := NewBookmarkService(storages, validators.NewStructValidator(), &sequentialIDs{})

			repos.quizzes.EXPECT().FindOne(gomock.Any(), models.FieldID, "q-1").Return(tt.quiz, tt.findErr)
			if tt.insert {
				repos.bookmarks.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(tt.inserErr)
			}

			_, err := svc.Create(context.Background(), "u-1", models.Bookmark{QuizID: "q-1"})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestBookmarkService_DuplicateIsConflict(t *testing.T) {
	repos, storages := newTestRepos(t)
	svc := NewBookmarkService(storages, validators.NewStructValidator(), &sequentialIDs{})

	repos.quizzes.EXPECT().FindOne(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.Quiz{Base: models.Base{OwnerID: "u-1"}}, nil)
	repos.bookmarks.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(store.ErrDuplicate)

	_, err := svc.Create(context.Background(), "u-1", models.Bookmark{QuizID: "q-1"})

	assert.ErrorIs(t, err, ErrConflict)
	assert.ErrorIs(t, err, store.ErrDuplicate)
}

// ─────────────────────────────────────────────
// Student quizzes
// ─────────────────────────────────────────────

func newStudentQuizzes(t *testing.T) (*testRepos, *studentQuizService) {
	t.Helper()
	repos, storages := newTestRepos(t)
	svc := NewStudentQuizService(storages, validators.NewStructValidator(), &sequentialIDs{}).(*studentQuizService)
	frozen(svc.resourceService)
	return repos, svc
}

func TestStudentQuizService_Create_DefaultsToAssigned(t *testing.T) {
	repos, svc := newStudentQuizzes(t)

	repos.students.EXPECT().Get(gomock.Any(), "u-1", "s-1").Return(models.Student{}, nil)
	repos.quizzes.EXPECT().Get(gomock.Any(), "u-1", "q-1").Return(models.Quiz{}, nil)
	repos.studentQuizzes.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

	got, err := svc.Create(context.Background(), "u-1", models.StudentQuiz{StudentID: "s-1", QuizID: "q-1"})

	require.NoError(t, err)
	assert.Equal(t, models.StatusAssigned, got.Status)
	assert.Nil(t, got.SubmittedAt)
}

func TestStudentQuizService_Create_ForeignStudent(t *testing.T) {
	repos, svc := newStudentQuizzes(t)

	repos.students.EXPECT().Get(gomock.Any(), "u-1", "s-1").Return(models.Student{}, store.ErrNotFound)

	_, err := svc.Create(context.Background(), "u-1", models.StudentQuiz{StudentID: "s-1", QuizID: "q-1"})

	assert.ErrorIs(t, err, ErrStudentNotFound)
}

func TestStudentQuizService_Update_SubmitStampsTime(t *testing.T) {
	repos, svc := newStudentQuizzes(t)

	stored := models.StudentQuiz{
		Base:      models.Base{ID: "sq-1", OwnerID: "u-1"},
		StudentID: "s-1",
		QuizID:    "q-1",
		Status:    models.StatusInProgress,
	}
	repos.studentQuizzes.EXPECT().Get(gomock.Any(), "u-1", "sq-1").Return(stored, nil)
	repos.studentQuizzes.EXPECT().Replace(gomock.Any(), gomock.Any()).Return(nil)

	got, err := svc.Update(context.Background(), "u-1", "sq-1", func(sq *models.StudentQuiz) error {
		sq.Status = models.StatusSubmitted
		return nil
	})

	require.NoError(t, err)
	require.NotNil(t, got.SubmittedAt)
	assert.Equal(t, testNow, *got.SubmittedAt)
}

func TestStudentQuizService_Update_ReopenClearsSubmittedAt(t *testing.T) {
	submittedAt := testNow.Add(-time.Hour)
	stored := models.StudentQuiz{
		Base:        models.Base{ID: "sq-1", OwnerID: "u-1"},
		StudentID:   "s-1",
		QuizID:      "q-1",
		Status:      models.StatusSubmitted,
		SubmittedAt: &submittedAt,
	}

	tests := []struct {
		name   string
		status string
		want   *time.Time
	}{
		{name: "back to assigned", status: models.StatusAssigned},
		{name: "back to in progress", status: models.StatusInProgress},
		{name: "still submitted keeps time", status: models.StatusSubmitted, want: &submittedAt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repos, svc := newStudentQuizzes(t)

			var saved models.StudentQuiz
			repos.studentQuizzes.EXPECT().Get(gomock.Any(), "u-1", "sq-1").Return(stored, nil)
			repos.studentQuizzes.EXPECT().Replace(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, sq models.StudentQuiz) error {
					saved = sq
					return nil
				})

			got, err := svc.Update(context.Background(), "u-1", "sq-1", func(sq *models.StudentQuiz) error {
				sq.Status = tt.status
				return nil
			})

			require.NoError(t, err)
			if tt.want == nil {
				assert.Nil(t, got.SubmittedAt)
				assert.Nil(t, saved.SubmittedAt)
				return
			}
			require.NotNil(t, got.SubmittedAt)
			assert.Equal(t, *tt.want, *got.SubmittedAt)
		})
	}
}

func TestStudentQuizService_Update_InvalidStatus(t *testing.T) {
	repos, svc := newStudentQuizzes(t)

	repos.studentQuizzes.EXPECT().Get(gomock.Any(), "u-1", "sq-1").
		Return(models.StudentQuiz{StudentID: "s-1", QuizID: "q-1", Status: models.StatusAssigned}, nil)

	_, err := svc.Update(context.Background(), "u-1", "sq-1", func(sq *models.StudentQuiz) error {
		sq.Status = "graded"
		return nil
	})

	assert.ErrorIs(t, err, validators.ErrValidation)
}

func TestStudentService_Delete_RemovesAttempts(t *testing.T) {
	repos, storages := newTestRepos(t)
	svc := NewStudentService(storages, validators.NewStructValidator(), &sequentialIDs{})

	repos.students.EXPECT().Delete(gomock.Any(), "u-1", "s-1").Return(nil)
	repos.studentQuizzes.EXPECT().
		DeleteMany(gomock.Any(), models.ListQuery{OwnerID: "u-1"}.Where(models.FieldStudentID, "s-1")).
		Return(int64(1), nil)

	require.NoError(t, svc.Delete(context.Background(), "u-1", "s-1"))
}
