// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/rs/cors"

	"github.com/MKhiriev/go-quiz-api/internal/logger"
	"github.com/MKhiriev/go-quiz-api/internal/utils"
)

const corsMaxAge = 600

// withCORS rejects requests from origins outside the allow-list with 403 and
// hands the rest to rs/cors, which echoes the origin with credentials and
// answers preflights with 204. Requests without an Origin header pass through.
func (h *Handler) withCORS(next http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowOriginFunc: h.origins.Allowed,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With", traceIDHeader},
		ExposedHeaders:   []string{"Authorization", "Content-Disposition", traceIDHeader},
		AllowCredentials: true,
		MaxAge:           corsMaxAge,
	})
	allowed := c.Handler(next)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && !h.origins.Allowed(origin) {
			h.metrics.CORSRejected()
			logger.FromRequest(r).Warn().Str("origin", origin).Msg("origin rejected by CORS")
			utils.WriteMessage(w, msgNotAllowedByCORS, http.StatusForbidden)
			return
		}

		allowed.ServeHTTP(w, r)
	})
}
