// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-quiz-api/internal/logger"
	"github.com/MKhiriev/go-quiz-api/internal/store"
	"github.com/MKhiriev/go-quiz-api/internal/validators"
	"github.com/MKhiriev/go-quiz-api/models"
)

// IDGenerator issues document ids.
type IDGenerator interface {
	Generate() string
}

// document is the pointer form of an owned entity.
type document[T any] interface {
	*T
	Stamp(id, ownerID string, now time.Time)
	Touch(stored models.Document, now time.Time)
}

// resourceService implements [ResourceService] on top of one repository.
// Resource specific rules are plugged in through the hook fields.
type resourceService[T models.Document, PT document[T]] struct {
	name       string
	repo       store.Repository[T]
	validator  validators.Validator
	ids        IDGenerator
	now        func() time.Time
	searchable string

	// normalize fills defaults and trims input. stored is nil on create.
	normalize func(doc PT, stored *T)

	// check verifies references to other records. stored is nil on create.
	check func(ctx context.Context, ownerID string, doc PT, stored *T) error

	// afterDelete removes or detaches dependent records.
	afterDelete func(ctx context.Context, ownerID, id string) error

	// duplicate replaces [store.ErrDuplicate] on insert and replace.
	duplicate error
}

func newResourceService[T models.Document, PT document[T]](name string, repo store.Repository[T], v validators.Validator, ids IDGenerator, searchable string) *resourceService[T, PT] {
	return &resourceService[T, PT]{
		name:       name,
		repo:       repo,
		validator:  v,
		ids:        ids,
		now:        time.Now,
		searchable: searchable,
	}
}

func (s *resourceService[T, PT]) Create(ctx context.Context, ownerID string, doc T) (T, error) {
	var zero T
	if ownerID == "" {
		return zero, ErrNoOwner
	}

	p := PT(&doc)
	p.Stamp(s.ids.Generate(), ownerID, s.now().UTC())

	if err := s.prepare(ctx, ownerID, p, nil); err != nil {
		return zero, err
	}

	if err := s.repo.Insert(ctx, doc); err != nil {
		return zero, s.storeError(ctx, "create", err)
	}

	return doc, nil
}

func (s *resourceService[T, PT]) Get(ctx context.Context, ownerID, id string) (T, error) {
	doc, err := s.repo.Get(ctx, ownerID, id)
	if err != nil {
		var zero T
		return zero, s.storeError(ctx, "get", err)
	}
	return doc, nil
}

func (s *resourceService[T, PT]) List(ctx context.Context, q models.ListQuery) (models.ListResponse[T], error) {
	if q.OwnerID == "" {
		return models.ListResponse[T]{}, ErrNoOwner
	}

	q, err := normalizeListQuery(q, s.searchable)
	if err != nil {
		return models.ListResponse[T]{}, err
	}

	items, total, err := s.repo.List(ctx, q)
	if err != nil {
		return models.ListResponse[T]{}, s.storeError(ctx, "list", err)
	}
	if items == nil {
		items = []T{}
	}

	return models.ListResponse[T]{Items: items, Total: total, Limit: q.Limit, Skip: q.Skip}, nil
}

func (s *resourceService[T, PT]) Update(ctx context.Context, ownerID, id string, patch Patch[T]) (T, error) {
	var zero T

	stored, err := s.repo.Get(ctx, ownerID, id)
	if err != nil {
		return zero, s.storeError(ctx, "get", err)
	}

	doc := stored
	if patch != nil {
		if err = patch(&doc); err != nil {
			return zero, fmt.Errorf("apply %s changes: %w", s.name, err)
		}
	}

	p := PT(&doc)
	p.Touch(stored, s.now().UTC())

	if err = s.prepare(ctx, ownerID, p, &stored); err != nil {
		return zero, err
	}

	if err = s.repo.Replace(ctx, doc); err != nil {
		return zero, s.storeError(ctx, "update", err)
	}

	return doc, nil
}

func (s *resourceService[T, PT]) Delete(ctx context.Context, ownerID, id string) error {
	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		return s.storeError(ctx, "delete", err)
	}

	if s.afterDelete != nil {
		if err := s.afterDelete(ctx, ownerID, id); err != nil {
			logger.FromContext(ctx).Err(err).Str(s.name+"_id", id).Msg("cleanup of dependent records failed")
			return fmt.Errorf("delete %s dependents: %w", s.name, err)
		}
	}

	return nil
}

func (s *resourceService[T, PT]) prepare(ctx context.Context, ownerID string, doc PT, stored *T) error {
	if s.normalize != nil {
		s.normalize(doc, stored)
	}

	if err := s.validator.Validate(ctx, *doc); err != nil {
		return fmt.Errorf("validate %s: %w", s.name, err)
	}

	if s.check != nil {
		return s.check(ctx, ownerID, doc, stored)
	}
	return nil
}

func (s *resourceService[T, PT]) storeError(ctx context.Context, op string, err error) error {
	if s.duplicate != nil && errors.Is(err, store.ErrDuplicate) {
		return fmt.Errorf("%w: %w", s.duplicate, err)
	}
	if !errors.Is(err, store.ErrNotFound) {
		logger.FromContext(ctx).Err(err).Str("op", op).Str("resource", s.name).Msg("store operation failed")
	}
	return fmt.Errorf("%s %s: %w", op, s.name, err)
}

// normalizeListQuery applies paging limits and checks the sort field.
func normalizeListQuery(q models.ListQuery, searchable string) (models.ListQuery, error) {
	switch {
	case q.Limit <= 0:
		q.Limit = models.DefaultListLimit
	case q.Limit > models.MaxListLimit:
		q.Limit = models.MaxListLimit
	}
	if q.Skip < 0 {
		q.Skip = 0
	}

	switch q.SortField {
	case "":
		q.SortField = models.FieldCreatedAt
		q.SortDesc = true
	case models.FieldCreatedAt, models.FieldUpdatedAt:
	default:
		if q.SortField != searchable || searchable == "" {
			return q, fmt.Errorf("%w: %q", ErrUnsupportedSort, q.SortField)
		}
	}

	if q.SearchTerm != "" {
		q.SearchField = searchable
	} else {
		q.SearchField = ""
	}

	return q, nil
}

// requireOwned returns errMissing when the owner has no record with id.
func requireOwned[T models.Document](ctx context.Context, repo store.Repository[T], ownerID, id string, errMissing error) error {
	if _, err := repo.Get(ctx, ownerID, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return errMissing
		}
		return fmt.Errorf("lookup referenced record: %w", err)
	}
	return nil
}
