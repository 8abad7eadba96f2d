// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/popayan-tourism/internal/logger"
	"github.com/MKhiriev/popayan-tourism/internal/service"
	"github.com/MKhiriev/popayan-tourism/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// service mocks
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerFn     func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn        func(ctx context.Context, username, password string) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	verifyTokenFn  func(ctx context.Context, token string) service.AuthResult
	checkResetFn   func(ctx context.Context, uid, token string) (models.User, error)
	requestResetFn func(ctx context.Context, email, baseURL string) error
	consumeResetFn func(ctx context.Context, uid, token, newPassword string) error
}

func (m *mockAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return m.registerFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, username, password string) (models.User, error) {
	return m.loginFn(ctx, username, password)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) VerifyToken(ctx context.Context, token string) service.AuthResult {
	if m.verifyTokenFn == nil {
		return service.AuthResult{Reason: service.AuthMalformed}
	}
	return m.verifyTokenFn(ctx, token)
}

func (m *mockAuthService) GeneratePasswordResetToken(models.User) (string, string) {
	return "", ""
}

func (m *mockAuthService) CheckPasswordResetToken(ctx context.Context, uid, token string) (models.User, error) {
	return m.checkResetFn(ctx, uid, token)
}

func (m *mockAuthService) RequestPasswordReset(ctx context.Context, email, baseURL string) error {
	return m.requestResetFn(ctx, email, baseURL)
}

func (m *mockAuthService) ConsumePasswordReset(ctx context.Context, uid, token, newPassword string) error {
	return m.consumeResetFn(ctx, uid, token, newPassword)
}

type mockPlaceService struct {
	listFn       func(ctx context.Context, actor models.User, page, perPage int) (models.Page[models.CulturalPlace], error)
	getFn        func(ctx context.Context, actor models.User, id uuid.UUID) (models.CulturalPlace, error)
	createFn     func(ctx context.Context, actor models.User, req models.CulturalPlaceRequest) (models.CulturalPlace, error)
	updateFn     func(ctx context.Context, actor models.User, id uuid.UUID, req models.CulturalPlaceRequest) (models.CulturalPlace, error)
	deleteFn     func(ctx context.Context, actor models.User, id uuid.UUID) error
	deactivateFn func(ctx context.Context, actor models.User, id uuid.UUID) (models.CulturalPlace, error)
}

func (m *mockPlaceService) List(ctx context.Context, actor models.User, page, perPage int) (models.Page[models.CulturalPlace], error) {
	return m.listFn(ctx, actor, page, perPage)
}

func (m *mockPlaceService) Get(ctx context.Context, actor models.User, id uuid.UUID) (models.CulturalPlace, error) {
	return m.getFn(ctx, actor, id)
}

func (m *mockPlaceService) Create(ctx context.Context, actor models.User, req models.CulturalPlaceRequest) (models.CulturalPlace, error) {
	return m.createFn(ctx, actor, req)
}

func (m *mockPlaceService) Update(ctx context.Context, actor models.User, id uuid.UUID, req models.CulturalPlaceRequest) (models.CulturalPlace, error) {
	return m.updateFn(ctx, actor, id, req)
}

func (m *mockPlaceService) Delete(ctx context.Context, actor models.User, id uuid.UUID) error {
	return m.deleteFn(ctx, actor, id)
}

func (m *mockPlaceService) Deactivate(ctx context.Context, actor models.User, id uuid.UUID) (models.CulturalPlace, error) {
	return m.deactivateFn(ctx, actor, id)
}

type mockPreferenceService struct {
	upsertFn func(ctx context.Context, actor models.User, req models.PreferenceRequest) (models.UserPlacePreference, bool, error)
	listFn   func(ctx context.Context, actor models.User) ([]models.UserPlacePreference, error)
}

func (m *mockPreferenceService) Upsert(ctx context.Context, actor models.User, req models.PreferenceRequest) (models.UserPlacePreference, bool, error) {
	return m.upsertFn(ctx, actor, req)
}

func (m *mockPreferenceService) ListForActor(ctx context.Context, actor models.User) ([]models.UserPlacePreference, error) {
	return m.listFn(ctx, actor)
}

type mockActivityService struct {
	categoriesFn func(ctx context.Context) ([]models.ActivityCategory, error)
	listFn       func(ctx context.Context, actor models.User, categoryID *uuid.UUID, page, perPage int) (models.Page[models.LeisureActivity], error)
	getFn        func(ctx context.Context, actor models.User, id uuid.UUID) (models.LeisureActivity, error)
	upsertPrefFn func(ctx context.Context, actor models.User, req models.ActivityPreferenceRequest) (models.UserActivityPreference, bool, error)
	listPrefsFn  func(ctx context.Context, actor models.User) ([]models.UserActivityPreference, error)
}

func (m *mockActivityService) ListCategories(ctx context.Context) ([]models.ActivityCategory, error) {
	return m.categoriesFn(ctx)
}

func (m *mockActivityService) List(ctx context.Context, actor models.User, categoryID *uuid.UUID, page, perPage int) (models.Page[models.LeisureActivity], error) {
	return m.listFn(ctx, actor, categoryID, page, perPage)
}

func (m *mockActivityService) Get(ctx context.Context, actor models.User, id uuid.UUID) (models.LeisureActivity, error) {
	return m.getFn(ctx, actor, id)
}

func (m *mockActivityService) UpsertPreference(ctx context.Context, actor models.User, req models.ActivityPreferenceRequest) (models.UserActivityPreference, bool, error) {
	return m.upsertPrefFn(ctx, actor, req)
}

func (m *mockActivityService) ListPreferences(ctx context.Context, actor models.User) ([]models.UserActivityPreference, error) {
	return m.listPrefsFn(ctx, actor)
}

type mockAppInfoService struct {
	version models.VersionResponse
}

func (m *mockAppInfoService) GetAppVersion(context.Context) string {
	return m.version.Version
}

func (m *mockAppInfoService) GetVersionInfo(context.Context) models.VersionResponse {
	return m.version
}

var (
	_ service.AuthService            = (*mockAuthService)(nil)
	_ service.CulturalPlaceService   = (*mockPlaceService)(nil)
	_ service.PreferenceService      = (*mockPreferenceService)(nil)
	_ service.LeisureActivityService = (*mockActivityService)(nil)
	_ service.AppInfoService         = (*mockAppInfoService)(nil)
)

// ─────────────────────────────────────────────
// helpers
// ─────────────────────────────────────────────

const testBearer = "Bearer valid-token"

var (
	tourist = models.User{UserID: uuid.MustParse("0190b6a4-0000-7000-8000-000000000001"), Username: "tourist"}
	admin   = models.User{UserID: uuid.MustParse("0190b6a4-0000-7000-8000-000000000002"), Username: "admin", IsSuperuser: true}
)

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}

// authenticatingAs returns an auth service accepting testBearer for actor.
func authenticatingAs(actor models.User) *mockAuthService {
	return &mockAuthService{
		verifyTokenFn: func(_ context.Context, token string) service.AuthResult {
			if token != "valid-token" {
				return service.AuthResult{Reason: service.AuthMalformed}
			}
			return service.AuthResult{User: actor, Reason: service.AuthOK}
		},
	}
}

func newTestHandler(services *service.Services, settings Settings) *Handler {
	if services.AppInfoService == nil {
		services.AppInfoService = &mockAppInfoService{}
	}
	return NewHandler(services, settings, logger.Nop())
}

// serve runs a request through the full router. A non-empty bearer is sent
// as the Authorization header.
func serve(t *testing.T, router http.Handler, method, path, body, bearer string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", bearer)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out), "body: %s", rr.Body.String())
	return out
}
