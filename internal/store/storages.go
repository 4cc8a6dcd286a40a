// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-quiz-api/internal/config"
	"github.com/MKhiriev/go-quiz-api/internal/logger"
	"github.com/MKhiriev/go-quiz-api/models"
	"github.com/go-redis/redis/v8"
)

// Storages is the container of every repository the service layer uses.
type Storages struct {
	Connector *Connector

	Users          Repository[models.User]
	Quizzes        Repository[models.Quiz]
	Folders        Repository[models.Folder]
	Bookmarks      Repository[models.Bookmark]
	Students       Repository[models.Student]
	StudentQuizzes Repository[models.StudentQuiz]

	Denylist TokenDenylist

	redis *redis.Client
}

// NewStorages builds the connector for the configured backend and the
// repositories on top of it. Nothing is dialed here.
func NewStorages(cfg config.Storage, observer ConnectObserver, log *logger.Logger) (*Storages, error) {
	var dial Dialer
	backend := cfg.Backend()
	switch backend {
	case config.BackendMongo:
		dial = DialMongo(cfg, log)
	case config.BackendPostgres:
		dial = DialPostgres(cfg, log)
	default:
		log.Warn().Msg("no database configured, data routes will answer 503")
	}

	connector := NewConnector(backend, dial, cfg.ConnectTimeout, observer, log)
	storages := NewStoragesWithConnector(connector)

	if cfg.Redis.URL != "" {
		denylist, client, err := NewRedisDenylist(cfg.Redis.URL)
		if err != nil {
			return nil, err
		}
		storages.Denylist = denylist
		storages.redis = client
		log.Info().Msg("token revocation enabled")
	}

	return storages, nil
}

// NewStoragesWithConnector wires the repositories to an existing connector,
// without token revocation.
func NewStoragesWithConnector(connector *Connector) *Storages {
	return &Storages{
		Connector:      connector,
		Users:          NewRepository[models.User](connector, models.UsersCollection),
		Quizzes:        NewRepository[models.Quiz](connector, models.QuizzesCollection),
		Folders:        NewRepository[models.Folder](connector, models.FoldersCollection),
		Bookmarks:      NewRepository[models.Bookmark](connector, models.BookmarksCollection),
		Students:       NewRepository[models.Student](connector, models.StudentsCollection),
		StudentQuizzes: NewRepository[models.StudentQuiz](connector, models.StudentQuizzesCollection),
		Denylist:       NewNopDenylist(),
	}
}

// Close closes the database connection and the Redis client.
func (s *Storages) Close(ctx context.Context) error {
	err := s.Connector.Close(ctx)
	if s.redis != nil {
		err = errors.Join(err, s.redis.Close())
	}
	return err
}
