// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-quiz-api/internal/config"
	"github.com/MKhiriev/go-quiz-api/internal/logger"
	"github.com/MKhiriev/go-quiz-api/internal/metrics"
	"github.com/MKhiriev/go-quiz-api/internal/service"
	"github.com/MKhiriev/go-quiz-api/internal/store"
	"github.com/MKhiriev/go-quiz-api/models"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerFn   func(ctx context.Context, creds models.Credentials) (models.User, models.Token, error)
	loginFn      func(ctx context.Context, creds models.Credentials) (models.User, models.Token, error)
	logoutFn     func(ctx context.Context, token models.Token) error
	meFn         func(ctx context.Context, userID string) (models.User, error)
	parseTokenFn func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Register(ctx context.Context, creds models.Credentials) (models.User, models.Token, error) {
	return m.registerFn(ctx, creds)
}

func (m *mockAuthService) Login(ctx context.Context, creds models.Credentials) (models.User, models.Token, error) {
	return m.loginFn(ctx, creds)
}

func (m *mockAuthService) Logout(ctx context.Context, token models.Token) error {
	return m.logoutFn(ctx, token)
}

func (m *mockAuthService) Me(ctx context.Context, userID string) (models.User, error) {
	return m.meFn(ctx, userID)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// acceptingAuth accepts the token "good" for user "user-1".
func acceptingAuth() *mockAuthService {
	return &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			if tokenString != "good" {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			}
			return stubToken("good", "user-1"), nil
		},
	}
}

// mockAppInfoService implements service.AppInfoService.
type mockAppInfoService struct {
	version string
	health  models.Health
	mail    models.MailStatus
}

func (m *mockAppInfoService) GetAppVersion(context.Context) string { return m.version }

func (m *mockAppInfoService) Health(context.Context) models.Health { return m.health }

func (m *mockAppInfoService) MailStatus(context.Context) models.MailStatus { return m.mail }

// mockResourceService implements service.ResourceService[T].
type mockResourceService[T models.Document] struct {
	createFn func(ctx context.Context, ownerID string, doc T) (T, error)
	getFn    func(ctx context.Context, ownerID, id string) (T, error)
	listFn   func(ctx context.Context, q models.ListQuery) (models.ListResponse[T], error)
	updateFn func(ctx context.Context, ownerID, id string, patch service.Patch[T]) (T, error)
	deleteFn func(ctx context.Context, ownerID, id string) error
}

func (m *mockResourceService[T]) Create(ctx context.Context, ownerID string, doc T) (T, error) {
	return m.createFn(ctx, ownerID, doc)
}

func (m *mockResourceService[T]) Get(ctx context.Context, ownerID, id string) (T, error) {
	return m.getFn(ctx, ownerID, id)
}

func (m *mockResourceService[T]) List(ctx context.Context, q models.ListQuery) (models.ListResponse[T], error) {
	return m.listFn(ctx, q)
}

func (m *mockResourceService[T]) Update(ctx context.Context, ownerID, id string, patch service.Patch[T]) (T, error) {
	return m.updateFn(ctx, ownerID, id, patch)
}

func (m *mockResourceService[T]) Delete(ctx context.Context, ownerID, id string) error {
	return m.deleteFn(ctx, ownerID, id)
}

type mockFolderService struct {
	*mockResourceService[models.Folder]
	listQuizzesFn func(ctx context.Context, folderID string, q models.ListQuery) (models.ListResponse[models.Quiz], error)
}

func (m *mockFolderService) ListQuizzes(ctx context.Context, folderID string, q models.ListQuery) (models.ListResponse[models.Quiz], error) {
	return m.listQuizzesFn(ctx, folderID, q)
}

type mockStudentService struct {
	*mockResourceService[models.Student]
	importFn func(ctx context.Context, ownerID string, r io.Reader) (models.ImportResult, error)
	exportFn func(ctx context.Context, ownerID string, w io.Writer) error
}

func (m *mockStudentService) Import(ctx context.Context, ownerID string, r io.Reader) (models.ImportResult, error) {
	return m.importFn(ctx, ownerID, r)
}

func (m *mockStudentService) Export(ctx context.Context, ownerID string, w io.Writer) error {
	return m.exportFn(ctx, ownerID, w)
}

// stubDatabase implements Database.
type stubDatabase struct {
	err   error
	calls int
}

func (s *stubDatabase) Get(context.Context) (store.Connection, error) {
	s.calls++
	return nil, s.err
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestServices returns services whose methods panic unless overridden.
func newTestServices() *service.Services {
	return &service.Services{
		AuthService:        acceptingAuth(),
		AppInfoService:     &mockAppInfoService{version: "test-version"},
		QuizService:        &mockResourceService[models.Quiz]{},
		FolderService:      &mockFolderService{mockResourceService: &mockResourceService[models.Folder]{}},
		BookmarkService:    &mockResourceService[models.Bookmark]{},
		StudentService:     &mockStudentService{mockResourceService: &mockResourceService[models.Student]{}},
		StudentQuizService: &mockResourceService[models.StudentQuiz]{},
	}
}

func testConfig() config.StructuredConfig {
	return config.StructuredConfig{
		App:    config.App{Env: "test", Version: "test-version"},
		Server: config.Server{BodyLimit: 1 << 20},
		CORS:   config.CORS{ClientURL: "https://app.example.com"},
	}
}

// newTestHandler builds a Handler over svcs with a healthy database.
func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()
	return NewHandler(svcs, &stubDatabase{}, metrics.New(), testConfig(), logger.Nop())
}

// serve runs one request through the full router.
func serve(t *testing.T, h *Handler, method, target, body string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	require.Zero(t, len(headers)%2, "headers must be key/value pairs")

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	for i := 0; i < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}

// authed is the header pair accepted by acceptingAuth.
var authed = []string{"Authorization", "Bearer good"}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

// stubToken returns a token with the given signed string and subject.
func stubToken(signed, userID string) models.Token {
	return models.Token{
		SignedString: signed,
		UserID:       userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "jti-" + signed,
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}
