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

type bookmarkService struct {
	*resourceService[models.Bookmark, *models.Bookmark]
}

// NewBookmarkService returns the bookmark service. A bookmark points at a
// quiz the caller owns or a public one, at most once per quiz.
func NewBookmarkService(storages *store.Storages, v validators.Validator, ids IDGenerator) BookmarkService {
	s := newResourceService[models.Bookmark, *models.Bookmark]("bookmark", storages.Bookmarks, v, ids, "")
	s.duplicate = ErrAlreadyBookmarked

	s.normalize = func(b *models.Bookmark, _ *models.Bookmark) {
		b.QuizID = strings.TrimSpace(b.QuizID)
	}

	s.check = func(ctx context.Context, ownerID string, b *models.Bookmark, stored *models.Bookmark) error {
		if stored != nil && stored.QuizID == b.QuizID {
			return nil
		}

		quiz, err := storages.Quizzes.FindOne(ctx, models.FieldID, b.QuizID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrQuizNotFound
			}
			return fmt.Errorf("lookup bookmarked quiz: %w", err)
		}
		if quiz.OwnerID != ownerID && !quiz.IsPublic {
			return ErrQuizNotAccessible
		}
		return nil
	}

	return &bookmarkService{resourceService: s}
}
