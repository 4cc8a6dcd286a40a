// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-quiz-api/internal/store"
	"github.com/MKhiriev/go-quiz-api/internal/validators"
	"github.com/MKhiriev/go-quiz-api/models"
)

type studentQuizService struct {
	*resourceService[models.StudentQuiz, *models.StudentQuiz]
}

// NewStudentQuizService returns the attempt service. An attempt links one of
// the owner's students to one of the owner's quizzes.
func NewStudentQuizService(storages *store.Storages, v validators.Validator, ids IDGenerator) StudentQuizService {
	s := newResourceService[models.StudentQuiz, *models.StudentQuiz]("student quiz", storages.StudentQuizzes, v, ids, "")

	s.normalize = func(sq *models.StudentQuiz, stored *models.StudentQuiz) {
		sq.StudentID = strings.TrimSpace(sq.StudentID)
		sq.QuizID = strings.TrimSpace(sq.QuizID)
		if sq.Status == "" {
			sq.Status = models.StatusAssigned
		}
		if sq.Answers == nil {
			sq.Answers = []models.QuizAnswer{}
		}

		wasSubmitted := stored != nil && stored.Status == models.StatusSubmitted
		switch {
		case sq.Status != models.StatusSubmitted:
			sq.SubmittedAt = nil
		case !wasSubmitted || sq.SubmittedAt == nil:
			submittedAt := sq.UpdatedAt
			sq.SubmittedAt = &submittedAt
		}
	}

	s.check = func(ctx context.Context, ownerID string, sq *models.StudentQuiz, stored *models.StudentQuiz) error {
		if stored == nil || stored.StudentID != sq.StudentID {
			if err := requireOwned(ctx, storages.Students, ownerID, sq.StudentID, ErrStudentNotFound); err != nil {
				return err
			}
		}
		if stored == nil || stored.QuizID != sq.QuizID {
			if err := requireOwned(ctx, storages.Quizzes, ownerID, sq.QuizID, ErrQuizNotFound); err != nil {
				return err
			}
		}
		return nil
	}

	return &studentQuizService{resourceService: s}
}
