// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"

	"github.com/MKhiriev/go-quiz-api/internal/config"
	"github.com/MKhiriev/go-quiz-api/internal/logger"
	"github.com/MKhiriev/go-quiz-api/internal/metrics"
	"github.com/MKhiriev/go-quiz-api/internal/service"
	"github.com/MKhiriev/go-quiz-api/internal/store"
	"github.com/MKhiriev/go-quiz-api/models"
)

// Database is the lazily connected database guarded by [Handler.requireDatabase].
type Database interface {
	Get(ctx context.Context) (store.Connection, error)
}

type Handler struct {
	services *service.Services
	database Database
	metrics  *metrics.Metrics
	origins  *originPolicy
	cfg      config.StructuredConfig

	quizzes        *resourceHandler[models.Quiz]
	folders        *resourceHandler[models.Folder]
	bookmarks      *resourceHandler[models.Bookmark]
	students       *resourceHandler[models.Student]
	studentQuizzes *resourceHandler[models.StudentQuiz]

	logger *logger.Logger
}

func NewHandler(services *service.Services, database Database, m *metrics.Metrics, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	if m == nil {
		m = metrics.New()
	}

	h := &Handler{
		services: services,
		database: database,
		metrics:  m,
		origins:  newOriginPolicy(cfg.CORS),
		cfg:      cfg,
		logger:   logger,
	}

	h.quizzes = newResourceHandler[models.Quiz](h, services.QuizService, "Quiz", models.FieldFolderID)
	h.folders = newResourceHandler[models.Folder](h, services.FolderService, "Folder")
	h.bookmarks = newResourceHandler[models.Bookmark](h, services.BookmarkService, "Bookmark", models.FieldQuizID)
	h.students = newResourceHandler[models.Student](h, services.StudentService, "Student")
	h.studentQuizzes = newResourceHandler[models.StudentQuiz](h, services.StudentQuizService, "Student quiz",
		models.FieldStudentID, models.FieldQuizID, models.FieldStatus)

	logger.Info().Strs("origins", h.origins.List()).Msg("http handler created")
	return h
}
