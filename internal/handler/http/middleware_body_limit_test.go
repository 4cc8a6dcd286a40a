// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-quiz-api/internal/utils"
)

func TestWithBodyLimit(t *testing.T) {
	decode := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var v map[string]any
		if err := utils.DecodeJSON(r, &v); err != nil {
			(&Handler{}).writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name          string
		limit         int64
		body          string
		unknownLength bool
		wantStatus    int
	}{
		{"within limit", 64, `{"a":1}`, false, http.StatusOK},
		{"declared length over limit", 8, `{"a":"0123456789"}`, false, http.StatusRequestEntityTooLarge},
		{"streamed body over limit", 8, `{"a":"0123456789"}`, true, http.StatusRequestEntityTooLarge},
		{"limit disabled", 0, `{"a":"0123456789"}`, false, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body io.Reader = strings.NewReader(tt.body)
			if tt.unknownLength {
				body = io.NopCloser(body)
			}
			req := httptest.NewRequest(http.MethodPost, "/", body)
			if tt.unknownLength {
				req.ContentLength = -1
			}
			rr := httptest.NewRecorder()

			withBodyLimit(tt.limit)(decode).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}
