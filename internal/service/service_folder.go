// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-quiz-api/internal/store"
	"github.com/MKhiriev/go-quiz-api/internal/validators"
	"github.com/MKhiriev/go-quiz-api/models"
)

type folderService struct {
	*resourceService[models.Folder, *models.Folder]

	quizzes *resourceService[models.Quiz, *models.Quiz]
}

// NewFolderService returns the folder service. Deleting a folder keeps its
// quizzes and clears their folder reference.
func NewFolderService(storages *store.Storages, v validators.Validator, ids IDGenerator) FolderService {
	s := newResourceService[models.Folder, *models.Folder]("folder", storages.Folders, v, ids, models.FieldName)

	s.normalize = func(f *models.Folder, _ *models.Folder) {
		f.Name = strings.TrimSpace(f.Name)
		f.Color = strings.TrimSpace(f.Color)
	}

	s.afterDelete = func(ctx context.Context, ownerID, id string) error {
		q := models.ListQuery{OwnerID: ownerID}.Where(models.FieldFolderID, id)
		if _, err := storages.Quizzes.SetField(ctx, q, models.FieldFolderID, ""); err != nil {
			return fmt.Errorf("detach quizzes from folder: %w", err)
		}
		return nil
	}

	return &folderService{
		resourceService: s,
		quizzes:         newResourceService[models.Quiz, *models.Quiz]("quiz", storages.Quizzes, v, ids, models.FieldTitle),
	}
}

func (s *folderService) ListQuizzes(ctx context.Context, folderID string, q models.ListQuery) (models.ListResponse[models.Quiz], error) {
	if _, err := s.Get(ctx, q.OwnerID, folderID); err != nil {
		return models.ListResponse[models.Quiz]{}, err
	}

	return s.quizzes.List(ctx, q.Where(models.FieldFolderID, folderID))
}
