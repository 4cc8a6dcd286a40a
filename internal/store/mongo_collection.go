// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"regexp"

	"github.com/MKhiriev/go-quiz-api/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mongoCollection implements [Repository] on one MongoDB collection. Documents
// are stored with their bson tags; the id lives in _id.
type mongoCollection[T models.Document] struct {
	coll *mongo.Collection
}

func newMongoCollection[T models.Document](db *mongo.Database, name string) *mongoCollection[T] {
	return &mongoCollection[T]{coll: db.Collection(name)}
}

func (m *mongoCollection[T]) Insert(ctx context.Context, doc T) error {
	if _, err := m.coll.InsertOne(ctx, doc); err != nil {
		return mongoError(err)
	}
	return nil
}

func (m *mongoCollection[T]) InsertMany(ctx context.Context, docs []T) error {
	if len(docs) == 0 {
		return nil
	}

	batch := make([]any, 0, len(docs))
	for _, doc := range docs {
		batch = append(batch, doc)
	}

	if _, err := m.coll.InsertMany(ctx, batch, options.InsertMany().SetOrdered(true)); err != nil {
		return mongoError(err)
	}
	return nil
}

func (m *mongoCollection[T]) Get(ctx context.Context, ownerID, id string) (T, error) {
	return m.findOne(ctx, bson.M{models.FieldID: id, models.FieldOwnerID: ownerID})
}

func (m *mongoCollection[T]) FindOne(ctx context.Context, field, value string) (T, error) {
	return m.findOne(ctx, bson.M{field: value})
}

func (m *mongoCollection[T]) findOne(ctx context.Context, filter bson.M) (T, error) {
	var doc T
	if err := m.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		return doc, mongoError(err)
	}
	return doc, nil
}

func (m *mongoCollection[T]) List(ctx context.Context, q models.ListQuery) ([]T, int64, error) {
	filter, err := mongoFilter(q, true)
	if err != nil {
		return nil, 0, err
	}

	total, err := m.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, mongoError(err)
	}

	opts := options.Find()
	if q.SortField != "" {
		direction := 1
		if q.SortDesc {
			direction = -1
		}
		opts.SetSort(bson.D{{Key: q.SortField, Value: direction}, {Key: models.FieldID, Value: direction}})
	}
	if q.Limit > 0 {
		opts.SetLimit(q.Limit)
	}
	if q.Skip > 0 {
		opts.SetSkip(q.Skip)
	}

	cursor, err := m.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, mongoError(err)
	}

	items := make([]T, 0)
	if err = cursor.All(ctx, &items); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrDecodingDocument, err)
	}

	return items, total, nil
}

func (m *mongoCollection[T]) Replace(ctx context.Context, doc T) error {
	filter := bson.M{models.FieldID: doc.DocumentID(), models.FieldOwnerID: doc.DocumentOwner()}
	res, err := m.coll.ReplaceOne(ctx, filter, doc)
	if err != nil {
		return mongoError(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *mongoCollection[T]) Delete(ctx context.Context, ownerID, id string) error {
	res, err := m.coll.DeleteOne(ctx, bson.M{models.FieldID: id, models.FieldOwnerID: ownerID})
	if err != nil {
		return mongoError(err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *mongoCollection[T]) DeleteMany(ctx context.Context, q models.ListQuery) (int64, error) {
	filter, err := mongoFilter(q, false)
	if err != nil {
		return 0, err
	}

	res, err := m.coll.DeleteMany(ctx, filter)
	if err != nil {
		return 0, mongoError(err)
	}
	return res.DeletedCount, nil
}

func (m *mongoCollection[T]) SetField(ctx context.Context, q models.ListQuery, field, value string) (int64, error) {
	if !validField(field) {
		return 0, ErrInvalidQuery
	}

	filter, err := mongoFilter(q, false)
	if err != nil {
		return 0, err
	}

	res, err := m.coll.UpdateMany(ctx, filter, bson.M{"$set": bson.M{field: value}})
	if err != nil {
		return 0, mongoError(err)
	}
	return res.ModifiedCount, nil
}

// mongoFilter translates a list query into a filter document. The search
// condition is applied only when withSearch is set.
func mongoFilter(q models.ListQuery, withSearch bool) (bson.M, error) {
	filter := bson.M{}
	if q.OwnerID != "" {
		filter[models.FieldOwnerID] = q.OwnerID
	}

	for field, value := range q.Equals {
		if !validField(field) {
			return nil, ErrInvalidQuery
		}
		filter[field] = value
	}

	if withSearch && q.SearchField != "" && q.SearchTerm != "" {
		if !validField(q.SearchField) {
			return nil, ErrInvalidQuery
		}
		filter[q.SearchField] = primitive.Regex{Pattern: regexp.QuoteMeta(q.SearchTerm), Options: "i"}
	}

	if q.SortField != "" && !validField(q.SortField) {
		return nil, ErrInvalidQuery
	}

	return filter, nil
}

var fieldPattern = regexp.MustCompile(`^_?[A-Za-z][A-Za-z0-9]*$`)

func validField(field string) bool {
	return fieldPattern.MatchString(field)
}
