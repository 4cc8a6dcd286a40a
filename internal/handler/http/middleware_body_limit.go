// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-quiz-api/internal/utils"
)

// withBodyLimit answers 413 when the declared body exceeds limit and caps
// the body reader for requests that do not declare their length.
// A non-positive limit disables the check.
func withBodyLimit(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if limit <= 0 {
			return next
		}

		capped := middleware.RequestSize(limit)(next)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > limit {
				utils.WriteJSON(w, errorResponse{Message: msgRequestTooLarge}, http.StatusRequestEntityTooLarge)
				return
			}
			capped.ServeHTTP(w, r)
		})
	}
}
