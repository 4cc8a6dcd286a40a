// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-quiz-api/internal/config"
	"github.com/MKhiriev/go-quiz-api/internal/logger"
	"github.com/MKhiriev/go-quiz-api/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
)

// MongoConnection is a [Connection] to a MongoDB database.
type MongoConnection struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewMongoConnection wraps an already connected database handle.
func NewMongoConnection(db *mongo.Database) *MongoConnection {
	return &MongoConnection{client: db.Client(), db: db}
}

// Driver implements [Connection].
func (c *MongoConnection) Driver() string { return config.BackendMongo }

// Ping implements [Connection].
func (c *MongoConnection) Ping(ctx context.Context) error {
	return c.client.Ping(ctx, readpref.Primary())
}

// Close implements [Connection].
func (c *MongoConnection) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}

// Database returns the underlying database handle.
func (c *MongoConnection) Database() *mongo.Database {
	return c.db
}

// DialMongo returns a [Dialer] that connects to MongoDB, pings the primary
// and ensures the indexes of every collection.
//
// The database name is taken from the URI path when present, otherwise from
// cfg.Mongo.Database.
func DialMongo(cfg config.Storage, log *logger.Logger) Dialer {
	return func(ctx context.Context) (Connection, error) {
		uri := cfg.MongoURI()
		dbName, err := mongoDatabaseName(uri, cfg.Mongo.Database)
		if err != nil {
			return nil, err
		}

		opts := options.Client().ApplyURI(uri)
		if cfg.ConnectTimeout > 0 {
			opts.SetServerSelectionTimeout(cfg.ConnectTimeout).SetConnectTimeout(cfg.ConnectTimeout)
		}

		client, err := mongo.Connect(ctx, opts)
		if err != nil {
			return nil, fmt.Errorf("error connecting to mongodb: %w", err)
		}

		if err = client.Ping(ctx, readpref.Primary()); err != nil {
			_ = client.Disconnect(context.WithoutCancel(ctx))
			return nil, fmt.Errorf("error pinging mongodb: %w", err)
		}

		db := client.Database(dbName)
		if err = EnsureMongoIndexes(ctx, db); err != nil {
			_ = client.Disconnect(context.WithoutCancel(ctx))
			return nil, err
		}

		log.Info().Str("database", dbName).Msg("mongodb connected, indexes ensured")
		return NewMongoConnection(db), nil
	}
}

func mongoDatabaseName(uri, fallback string) (string, error) {
	cs, err := connstring.Parse(uri)
	if err != nil {
		return "", fmt.Errorf("invalid mongodb uri: %w", err)
	}
	if cs.Database != "" {
		return cs.Database, nil
	}
	if fallback == "" {
		return "", errors.New("mongodb database name is not set")
	}
	return fallback, nil
}

// mongoIndexes lists the indexes of every collection. Creating an index that
// already exists with the same definition is a no-op on the server.
var mongoIndexes = map[string][]mongo.IndexModel{
	models.UsersCollection: {
		{Keys: bson.D{{Key: models.FieldEmail, Value: 1}}, Options: options.Index().SetName("email_unique").SetUnique(true)},
	},
	models.QuizzesCollection: {
		{Keys: bson.D{{Key: models.FieldOwnerID, Value: 1}, {Key: models.FieldCreatedAt, Value: -1}}, Options: options.Index().SetName("owner_created")},
		{Keys: bson.D{{Key: models.FieldFolderID, Value: 1}}, Options: options.Index().SetName("folder")},
	},
	models.FoldersCollection: {
		{Keys: bson.D{{Key: models.FieldOwnerID, Value: 1}, {Key: models.FieldName, Value: 1}}, Options: options.Index().SetName("owner_name")},
	},
	models.BookmarksCollection: {
		{Keys: bson.D{{Key: models.FieldOwnerID, Value: 1}, {Key: models.FieldQuizID, Value: 1}}, Options: options.Index().SetName("owner_quiz_unique").SetUnique(true)},
	},
	models.StudentsCollection: {
		{Keys: bson.D{{Key: models.FieldOwnerID, Value: 1}, {Key: models.FieldEmail, Value: 1}}, Options: options.Index().SetName("owner_email")},
	},
	models.StudentQuizzesCollection: {
		{Keys: bson.D{{Key: models.FieldOwnerID, Value: 1}, {Key: models.FieldStudentID, Value: 1}}, Options: options.Index().SetName("owner_student")},
		{Keys: bson.D{{Key: models.FieldQuizID, Value: 1}}, Options: options.Index().SetName("quiz")},
	},
}

// EnsureMongoIndexes creates the indexes of every collection.
func EnsureMongoIndexes(ctx context.Context, db *mongo.Database) error {
	for collection, indexes := range mongoIndexes {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, indexes); err != nil {
			return fmt.Errorf("error creating indexes on %s: %w", collection, err)
		}
	}
	return nil
}

// mongoError maps driver errors onto the package sentinels.
func mongoError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%w: %w", ErrDuplicate, err)
	case mongo.IsNetworkError(err), mongo.IsTimeout(err), errors.Is(err, mongo.ErrClientDisconnected):
		return fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	default:
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}
