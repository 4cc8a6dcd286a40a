// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-quiz-api/internal/store"
	"github.com/MKhiriev/go-quiz-api/internal/validators"
	"github.com/MKhiriev/go-quiz-api/models"
)

type quizService struct {
	*resourceService[models.Quiz, *models.Quiz]
}

// NewQuizService returns the quiz service. A quiz may only be filed in one
// of its owner's folders; deleting it removes the owner's bookmarks and
// attempts for it.
func NewQuizService(storages *store.Storages, v validators.Validator, ids IDGenerator) QuizService {
	s := newResourceService[models.Quiz, *models.Quiz]("quiz", storages.Quizzes, v, ids, models.FieldTitle)

	s.normalize = func(q *models.Quiz, _ *models.Quiz) {
		q.Title = strings.TrimSpace(q.Title)
		q.FolderID = strings.TrimSpace(q.FolderID)
		if q.Questions == nil {
			q.Questions = []models.Question{}
		}
		if q.Tags == nil {
			q.Tags = []string{}
		}
		for i := range q.Questions {
			if q.Questions[i].ID == "" {
				q.Questions[i].ID = ids.Generate()
			}
			if q.Questions[i].Options == nil {
				q.Questions[i].Options = []string{}
			}
		}
	}

	s.check = func(ctx context.Context, ownerID string, q *models.Quiz, stored *models.Quiz) error {
		if q.FolderID == "" || (stored != nil && stored.FolderID == q.FolderID) {
			return nil
		}
		return requireOwned(ctx, storages.Folders, ownerID, q.FolderID, ErrFolderNotFound)
	}

	s.afterDelete = func(ctx context.Context, ownerID, id string) error {
		q := models.ListQuery{OwnerID: ownerID}.Where(models.FieldQuizID, id)

		_, errBookmarks := storages.Bookmarks.DeleteMany(ctx, q)
		_, errAttempts := storages.StudentQuizzes.DeleteMany(ctx, q)
		if err := errors.Join(errBookmarks, errAttempts); err != nil {
			return fmt.Errorf("remove quiz references: %w", err)
		}
		return nil
	}

	return &quizService{resourceService: s}
}
