// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-quiz-api/internal/logger"
	"github.com/MKhiriev/go-quiz-api/internal/store"
	"github.com/MKhiriev/go-quiz-api/internal/utils"
)

// requireDatabase makes sure the shared connection exists before a data
// route runs. The first request connects; concurrent ones share that attempt.
func (h *Handler) requireDatabase(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.database == nil {
			h.databaseFailed(w, r, store.ErrNoBackend)
			return
		}

		if _, err := h.database.Get(r.Context()); err != nil {
			h.databaseFailed(w, r, err)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (h *Handler) databaseFailed(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromRequest(r).Err(err).Msg("database connection failed")

	body := errorResponse{Message: msgDatabaseFailed}
	if h.cfg.App.IsDevelopment() {
		body.Error = err.Error()
	}
	utils.WriteJSON(w, body, http.StatusServiceUnavailable)
}
