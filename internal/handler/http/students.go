// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-quiz-api/internal/logger"
	"github.com/MKhiriev/go-quiz-api/internal/service"
	"github.com/MKhiriev/go-quiz-api/internal/utils"
)

const (
	rosterUploadField = "file"
	rosterFileName    = "students.xlsx"
	xlsxContentType   = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	// multipartMemory is how much of an upload is kept in memory before
	// spilling to temporary files.
	multipartMemory = 8 << 20
)

// importStudents reads an xlsx roster from the multipart field "file".
func (h *Handler) importStudents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ownerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		h.writeError(w, r, service.ErrNoOwner)
		return
	}

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.writeError(w, r, fmt.Errorf("%w: %w", utils.ErrRequestTooLarge, err))
			return
		}
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrMissingUpload, err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile(rosterUploadField)
	if err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrMissingUpload, err))
		return
	}
	defer file.Close()

	result, err := h.services.StudentService.Import(ctx, ownerID, file)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().
		Str("file", header.Filename).
		Int("imported", result.Imported).
		Int("skipped", len(result.Skipped)).
		Msg("student roster imported")

	utils.WriteJSON(w, result, http.StatusOK)
}

// exportStudents answers with the caller's students as an xlsx attachment.
// The workbook is built in memory so a failure can still produce a JSON error.
func (h *Handler) exportStudents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ownerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		h.writeError(w, r, service.ErrNoOwner)
		return
	}

	var buf bytes.Buffer
	if err := h.services.StudentService.Export(ctx, ownerID, &buf); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", rosterFileName))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
