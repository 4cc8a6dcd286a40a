// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-quiz-api/internal/service"
	"github.com/MKhiriev/go-quiz-api/models"
)

// multipartUpload builds a request body with one file part.
func multipartUpload(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestImportStudents(t *testing.T) {
	svcs := newTestServices()
	students := &mockStudentService{mockResourceService: &mockResourceService[models.Student]{}}
	students.importFn = func(_ context.Context, ownerID string, r io.Reader) (models.ImportResult, error) {
		assert.Equal(t, "user-1", ownerID)
		data, err := io.ReadAll(r)
		require.NoError(t, err)
		assert.Equal(t, "xlsx-bytes", string(data))
		return models.ImportResult{Imported: 2, Skipped: []string{"row 4: name is required"}}, nil
	}
	svcs.StudentService = students

	body, contentType := multipartUpload(t, rosterUploadField, "roster.xlsx", []byte("xlsx-bytes"))
	req := httptest.NewRequest(http.MethodPost, "/api/students/import", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer good")
	rr := httptest.NewRecorder()

	newTestHandler(t, svcs).Init().ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	result := decodeBody[models.ImportResult](t, rr)
	assert.Equal(t, 2, result.Imported)
	assert.Len(t, result.Skipped, 1)
}

func TestImportStudents_Errors(t *testing.T) {
	tests := []struct {
		name       string
		field      string
		importErr  error
		wantStatus int
	}{
		{name: "wrong field", field: "upload", wantStatus: http.StatusBadRequest},
		{name: "unreadable workbook", field: rosterUploadField, importErr: service.ErrInvalidSpreadsheet, wantStatus: http.StatusBadRequest},
		{name: "no name column", field: rosterUploadField, importErr: service.ErrMissingNameColumn, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcs := newTestServices()
			students := &mockStudentService{mockResourceService: &mockResourceService[models.Student]{}}
			students.importFn = func(context.Context, string, io.Reader) (models.ImportResult, error) {
				return models.ImportResult{}, tt.importErr
			}
			svcs.StudentService = students

			body, contentType := multipartUpload(t, tt.field, "roster.xlsx", []byte("x"))
			req := httptest.NewRequest(http.MethodPost, "/api/students/import", body)
			req.Header.Set("Content-Type", contentType)
			req.Header.Set("Authorization", "Bearer good")
			rr := httptest.NewRecorder()

			newTestHandler(t, svcs).Init().ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestImportStudents_NotMultipart(t *testing.T) {
	rr := serve(t, newTestHandler(t, newTestServices()), http.MethodPost, "/api/students/import", `{"file":"x"}`, authed...)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "No file uploaded", decodeBody[errorResponse](t, rr).Message)
}

func TestExportStudents(t *testing.T) {
	svcs := newTestServices()
	students := &mockStudentService{mockResourceService: &mockResourceService[models.Student]{}}
	students.exportFn = func(_ context.Context, ownerID string, w io.Writer) error {
		assert.Equal(t, "user-1", ownerID)
		_, err := w.Write([]byte("PK-workbook"))
		return err
	}
	svcs.StudentService = students

	rr := serve(t, newTestHandler(t, svcs), http.MethodGet, "/api/students/export", "", authed...)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, xlsxContentType, rr.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="students.xlsx"`, rr.Header().Get("Content-Disposition"))
	assert.Equal(t, "PK-workbook", rr.Body.String())
}

func TestExportStudents_FailureIsJSON(t *testing.T) {
	svcs := newTestServices()
	students := &mockStudentService{mockResourceService: &mockResourceService[models.Student]{}}
	students.exportFn = func(_ context.Context, _ string, w io.Writer) error {
		_, _ = w.Write([]byte("partial"))
		return assert.AnError
	}
	svcs.StudentService = students

	rr := serve(t, newTestHandler(t, svcs), http.MethodGet, "/api/students/export", "", authed...)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "partial")
}
