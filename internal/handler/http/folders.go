// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-quiz-api/internal/service"
	"github.com/MKhiriev/go-quiz-api/internal/utils"
)

// folderQuizzes lists the caller's quizzes filed in one folder.
func (h *Handler) folderQuizzes(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		h.folders.fail(w, r, service.ErrNoOwner)
		return
	}

	q, err := parseListQuery(r, ownerID)
	if err != nil {
		h.folders.fail(w, r, err)
		return
	}

	page, err := h.services.FolderService.ListQuizzes(r.Context(), chi.URLParam(r, "id"), q)
	if err != nil {
		h.folders.fail(w, r, err)
		return
	}

	utils.WriteJSON(w, page, http.StatusOK)
}
