// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-quiz-api/internal/logger"
	"github.com/MKhiriev/go-quiz-api/internal/utils"
)

// withRecovery turns a panic in a downstream handler into a JSON 500.
// [http.ErrAbortHandler] is re-raised so the server can abort the connection.
func (h *Handler) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}

			h.metrics.PanicRecovered()
			logger.FromRequest(r).Error().
				Str("panic", fmt.Sprint(rvr)).
				Bytes("stack", debug.Stack()).
				Msg("panic recovered")

			body := errorResponse{Message: msgInternalError}
			if h.cfg.App.IsDevelopment() {
				body.Error = fmt.Sprint(rvr)
			}
			utils.WriteJSON(w, body, http.StatusInternalServerError)
		}()

		next.ServeHTTP(w, r)
	})
}
