// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-quiz-api/internal/service"
	"github.com/MKhiriev/go-quiz-api/internal/store"
	"github.com/MKhiriev/go-quiz-api/internal/utils"
	"github.com/MKhiriev/go-quiz-api/models"
)

// resourceHandler serves the owner-scoped CRUD routes of one resource.
type resourceHandler[T models.Document] struct {
	h       *Handler
	service service.ResourceService[T]

	// name is used in messages, e.g. "Quiz not found".
	name string

	// filters are the query parameters accepted as exact-match filters.
	filters []string
}

func newResourceHandler[T models.Document](h *Handler, svc service.ResourceService[T], name string, filters ...string) *resourceHandler[T] {
	return &resourceHandler[T]{h: h, service: svc, name: name, filters: filters}
}

func (rh *resourceHandler[T]) routes(r chi.Router) {
	r.Get("/", rh.list)
	r.Post("/", rh.create)
	r.Get("/{id}", rh.get)
	r.Put("/{id}", rh.update)
	r.Delete("/{id}", rh.remove)
}

func (rh *resourceHandler[T]) list(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		rh.fail(w, r, service.ErrNoOwner)
		return
	}

	q, err := parseListQuery(r, ownerID, rh.filters...)
	if err != nil {
		rh.fail(w, r, err)
		return
	}

	page, err := rh.service.List(r.Context(), q)
	if err != nil {
		rh.fail(w, r, err)
		return
	}

	utils.WriteJSON(w, page, http.StatusOK)
}

func (rh *resourceHandler[T]) create(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		rh.fail(w, r, service.ErrNoOwner)
		return
	}

	var doc T
	if err := utils.DecodeJSON(r, &doc); err != nil {
		rh.fail(w, r, err)
		return
	}

	created, err := rh.service.Create(r.Context(), ownerID, doc)
	if err != nil {
		rh.fail(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (rh *resourceHandler[T]) get(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		rh.fail(w, r, service.ErrNoOwner)
		return
	}

	doc, err := rh.service.Get(r.Context(), ownerID, chi.URLParam(r, "id"))
	if err != nil {
		rh.fail(w, r, err)
		return
	}

	utils.WriteJSON(w, doc, http.StatusOK)
}

// update merges the request body into the stored document.
func (rh *resourceHandler[T]) update(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		rh.fail(w, r, service.ErrNoOwner)
		return
	}

	updated, err := rh.service.Update(r.Context(), ownerID, chi.URLParam(r, "id"), func(doc *T) error {
		return utils.DecodeJSON(r, doc)
	})
	if err != nil {
		rh.fail(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (rh *resourceHandler[T]) remove(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		rh.fail(w, r, service.ErrNoOwner)
		return
	}

	if err := rh.service.Delete(r.Context(), ownerID, chi.URLParam(r, "id")); err != nil {
		rh.fail(w, r, err)
		return
	}

	utils.WriteMessage(w, rh.name+" deleted", http.StatusOK)
}

// fail reports a missing document by resource name and defers everything
// else to the shared error mapping.
func (rh *resourceHandler[T]) fail(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, store.ErrNotFound) {
		utils.WriteMessage(w, rh.name+" not found", http.StatusNotFound)
		return
	}
	rh.h.writeError(w, r, err)
}

// parseListQuery reads limit, skip, sort, q and the given exact-match
// filters from the query string. Range checks happen in the service.
func parseListQuery(r *http.Request, ownerID string, filters ...string) (models.ListQuery, error) {
	values := r.URL.Query()
	q := models.ListQuery{OwnerID: ownerID}

	var err error
	if q.Limit, err = parseCount(values.Get("limit")); err != nil {
		return models.ListQuery{}, fmt.Errorf("%w: limit: %w", ErrInvalidQueryParam, err)
	}
	if q.Skip, err = parseCount(values.Get("skip")); err != nil {
		return models.ListQuery{}, fmt.Errorf("%w: skip: %w", ErrInvalidQueryParam, err)
	}

	if sort := strings.TrimSpace(values.Get("sort")); sort != "" {
		q.SortField, q.SortDesc = strings.TrimPrefix(sort, "-"), strings.HasPrefix(sort, "-")
	}

	q.SearchTerm = strings.TrimSpace(values.Get("q"))

	for _, field := range filters {
		if value := strings.TrimSpace(values.Get(field)); value != "" {
			q = q.Where(field, value)
		}
	}

	return q, nil
}

func parseCount(raw string) (int64, error) {
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, errors.New("must not be negative")
	}
	return n, nil
}
