// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-quiz-api/internal/utils"
	"github.com/MKhiriev/go-quiz-api/models"
)

const rootMessage = "Quiz API is running"

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.RootResponse{
		Message: rootMessage,
		Version: h.services.AppInfoService.GetAppVersion(r.Context()),
	}, http.StatusOK)
}

// health never dials the database; it only reports the connector state.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.AppInfoService.Health(r.Context()), http.StatusOK)
}

// testMail reports which mail settings are present. Nothing is sent.
func (h *Handler) testMail(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.AppInfoService.MailStatus(r.Context()), http.StatusOK)
}

func (h *Handler) routeNotFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteMessage(w, msgRouteNotFound, http.StatusNotFound)
}
