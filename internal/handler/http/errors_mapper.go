// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-quiz-api/internal/logger"
	"github.com/MKhiriev/go-quiz-api/internal/service"
	"github.com/MKhiriev/go-quiz-api/internal/store"
	"github.com/MKhiriev/go-quiz-api/internal/utils"
	"github.com/MKhiriev/go-quiz-api/internal/validators"
)

// Messages shared by several responses.
const (
	msgRouteNotFound      = "Route not found"
	msgInternalError      = "Internal server error"
	msgDatabaseFailed     = "Database connection failed"
	msgNotAllowedByCORS   = "Not allowed by CORS"
	msgNotAuthorized      = "Not authorized"
	msgValidationFailed   = "Validation failed"
	msgRequestTooLarge    = "Request body too large"
	msgInvalidJSON        = "Invalid JSON was passed"
	msgInvalidQueryParams = "Invalid query parameters"
)

type errorMapping struct {
	target  error
	status  int
	message string
}

// errorStatusMap is ordered: specific errors precede the classes they wrap.
var errorStatusMap = []errorMapping{
	{validators.ErrValidation, http.StatusBadRequest, msgValidationFailed},
	{utils.ErrInvalidJSON, http.StatusBadRequest, msgInvalidJSON},
	{utils.ErrRequestTooLarge, http.StatusRequestEntityTooLarge, msgRequestTooLarge},
	{ErrInvalidQueryParam, http.StatusBadRequest, msgInvalidQueryParams},
	{ErrMissingUpload, http.StatusBadRequest, "No file uploaded"},
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized, "Not authorized, no token"},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized, msgNotAuthorized},

	{service.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
	{service.ErrTokenRevoked, http.StatusUnauthorized, "Not authorized, token revoked"},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, "Not authorized, token failed"},
	{service.ErrUnauthorized, http.StatusUnauthorized, msgNotAuthorized},
	{service.ErrQuizNotAccessible, http.StatusForbidden, "Quiz is private"},
	{service.ErrForbidden, http.StatusForbidden, "Forbidden"},
	{service.ErrEmailTaken, http.StatusConflict, "User already exists"},
	{service.ErrAlreadyBookmarked, http.StatusConflict, "Quiz already bookmarked"},
	{service.ErrConflict, http.StatusConflict, "Conflict"},
	{service.ErrFolderNotFound, http.StatusBadRequest, "Folder not found"},
	{service.ErrQuizNotFound, http.StatusBadRequest, "Quiz not found"},
	{service.ErrStudentNotFound, http.StatusBadRequest, "Student not found"},
	{service.ErrUnsupportedSort, http.StatusBadRequest, "Unsupported sort field"},
	{service.ErrInvalidSpreadsheet, http.StatusBadRequest, "Spreadsheet cannot be read"},
	{service.ErrMissingNameColumn, http.StatusBadRequest, "Spreadsheet has no name column"},
	{service.ErrTooManyRosterRows, http.StatusBadRequest, "Spreadsheet has too many rows"},
	{service.ErrInvalidInput, http.StatusBadRequest, "Invalid input"},

	{store.ErrInvalidQuery, http.StatusBadRequest, msgInvalidQueryParams},
	{store.ErrNotFound, http.StatusNotFound, "Not found"},
	{store.ErrDuplicate, http.StatusConflict, "Already exists"},
	{store.ErrNoBackend, http.StatusServiceUnavailable, msgDatabaseFailed},
	{store.ErrNotConnected, http.StatusServiceUnavailable, msgDatabaseFailed},
	{store.ErrDatabaseUnavailable, http.StatusServiceUnavailable, msgDatabaseFailed},
}

// classifyError returns the response status and the client-facing message
// for err. Unknown errors are internal.
func classifyError(err error) (int, string) {
	for _, m := range errorStatusMap {
		if errors.Is(err, m.target) {
			return m.status, m.message
		}
	}
	return http.StatusInternalServerError, msgInternalError
}

func statusFromError(err error) int {
	status, _ := classifyError(err)
	return status
}

// errorResponse is the JSON body of every failed request.
type errorResponse struct {
	Message string                  `json:"message"`
	Error   string                  `json:"error,omitempty"`
	Errors  []validators.FieldError `json:"errors,omitempty"`
}

// writeError logs err and answers with its mapped status. Internal error
// details are exposed only in development.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status, message := classifyError(err)

	body := errorResponse{Message: message}

	var verr *validators.ValidationError
	if errors.As(err, &verr) {
		body.Errors = verr.Fields
	}

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
		if status == http.StatusInternalServerError && h.cfg.App.IsDevelopment() {
			body.Error = err.Error()
		}
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, body, status)
}
