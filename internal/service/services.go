// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-quiz-api/internal/config"
	"github.com/MKhiriev/go-quiz-api/internal/logger"
	"github.com/MKhiriev/go-quiz-api/internal/store"
	"github.com/MKhiriev/go-quiz-api/internal/utils"
	"github.com/MKhiriev/go-quiz-api/internal/validators"
)

type Services struct {
	AuthService        AuthService
	QuizService        QuizService
	FolderService      FolderService
	BookmarkService    BookmarkService
	StudentService     StudentService
	StudentQuizService StudentQuizService
	AppInfoService     AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	validator := validators.NewStructValidator()
	ids := utils.NewUUIDGenerator()

	appInfo, err := NewAppInfoService(cfg, storages.Connector, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:        NewAuthService(storages.Users, storages.Denylist, validator, ids, cfg.Auth, logger),
		QuizService:        NewQuizService(storages, validator, ids),
		FolderService:      NewFolderService(storages, validator, ids),
		BookmarkService:    NewBookmarkService(storages, validator, ids),
		StudentService:     NewStudentService(storages, validator, ids),
		StudentQuizService: NewStudentQuizService(storages, validator, ids),
		AppInfoService:     appInfo,
	}, nil
}
