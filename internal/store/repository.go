// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-quiz-api/models"
)

// lazyRepository implements [Repository] for one collection by resolving the
// backend on every call through the [Connector]. The first call that needs
// the database triggers the connect.
type lazyRepository[T models.Document] struct {
	connector *Connector
	name      string
}

// NewRepository returns a [Repository] for the named collection on whichever
// backend the connector dials.
func NewRepository[T models.Document](connector *Connector, name string) Repository[T] {
	return &lazyRepository[T]{connector: connector, name: name}
}

func (r *lazyRepository[T]) resolve(ctx context.Context) (Repository[T], error) {
	conn, err := r.connector.Get(ctx)
	if err != nil {
		return nil, err
	}
	return collectionFor[T](conn, r.name)
}

// collectionFor binds a collection name to an established connection.
func collectionFor[T models.Document](conn Connection, name string) (Repository[T], error) {
	switch c := conn.(type) {
	case *MongoConnection:
		return newMongoCollection[T](c.db, name), nil
	case *DB:
		return newPostgresCollection[T](c, name), nil
	default:
		return nil, fmt.Errorf("unsupported connection type %T", conn)
	}
}

func (r *lazyRepository[T]) Insert(ctx context.Context, doc T) error {
	repo, err := r.resolve(ctx)
	if err != nil {
		return err
	}
	return repo.Insert(ctx, doc)
}

func (r *lazyRepository[T]) InsertMany(ctx context.Context, docs []T) error {
	repo, err := r.resolve(ctx)
	if err != nil {
		return err
	}
	return repo.InsertMany(ctx, docs)
}

func (r *lazyRepository[T]) Get(ctx context.Context, ownerID, id string) (T, error) {
	repo, err := r.resolve(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	return repo.Get(ctx, ownerID, id)
}

func (r *lazyRepository[T]) FindOne(ctx context.Context, field, value string) (T, error) {
	repo, err := r.resolve(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	return repo.FindOne(ctx, field, value)
}

func (r *lazyRepository[T]) List(ctx context.Context, q models.ListQuery) ([]T, int64, error) {
	repo, err := r.resolve(ctx)
	if err != nil {
		return nil, 0, err
	}
	return repo.List(ctx, q)
}

func (r *lazyRepository[T]) Replace(ctx context.Context, doc T) error {
	repo, err := r.resolve(ctx)
	if err != nil {
		return err
	}
	return repo.Replace(ctx, doc)
}

func (r *lazyRepository[T]) Delete(ctx context.Context, ownerID, id string) error {
	repo, err := r.resolve(ctx)
	if err != nil {
		return err
	}
	return repo.Delete(ctx, ownerID, id)
}

func (r *lazyRepository[T]) DeleteMany(ctx context.Context, q models.ListQuery) (int64, error) {
	repo, err := r.resolve(ctx)
	if err != nil {
		return 0, err
	}
	return repo.DeleteMany(ctx, q)
}

func (r *lazyRepository[T]) SetField(ctx context.Context, q models.ListQuery, field, value string) (int64, error) {
	repo, err := r.resolve(ctx)
	if err != nil {
		return 0, err
	}
	return repo.SetField(ctx, q, field, value)
}
