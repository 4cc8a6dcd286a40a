// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-quiz-api/internal/config"
	"github.com/MKhiriev/go-quiz-api/internal/logger"
	"github.com/MKhiriev/go-quiz-api/models"
)

// DatabaseState reports the state of the shared connection without dialing.
type DatabaseState interface {
	Connected() bool
	Driver() string
}

type appInfoService struct {
	appVersion string
	mail       config.Mail
	db         DatabaseState
	now        func() time.Time

	logger *logger.Logger
}

func NewAppInfoService(cfg config.StructuredConfig, db DatabaseState, logger *logger.Logger) (AppInfoService, error) {
	if cfg.App.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.App.Version,
		mail:       cfg.Mail,
		db:         db,
		now:        time.Now,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) Health(ctx context.Context) models.Health {
	health := models.Health{
		Status:    "OK",
		Database:  models.DatabaseDisconnected,
		Version:   s.appVersion,
		Timestamp: s.now().UTC(),
	}
	if s.db != nil && s.db.Connected() {
		health.Database = models.DatabaseConnected
		health.Driver = s.db.Driver()
	}
	return health
}

func (s *appInfoService) MailStatus(ctx context.Context) models.MailStatus {
	return models.MailStatus{
		Configured: s.mail.Host != "" && s.mail.User != "",
		Host:       s.mail.Host,
		Port:       s.mail.Port,
		User:       s.mail.User,
		From:       s.mail.From,
	}
}
