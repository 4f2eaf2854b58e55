// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-blog-keeper/internal/config"
	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/MKhiriev/go-blog-keeper/internal/service"
	"github.com/MKhiriev/go-blog-keeper/internal/utils"
	"github.com/MKhiriev/go-blog-keeper/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, credentials models.Credentials) (models.User, error)
	loginFn        func(ctx context.Context, credentials models.Credentials) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error) {
	return m.registerUserFn(ctx, credentials)
}

func (m *mockAuthService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	return m.loginFn(ctx, credentials)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// ─────────────────────────────────────────────
// Mock PostService
// ─────────────────────────────────────────────

type mockPostService struct {
	createPostFn func(ctx context.Context, author models.User, post models.Post) (models.Post, error)
	getPostFn    func(ctx context.Context, postID string) (models.Post, error)
	listPostsFn  func(ctx context.Context, filter models.PostFilter) ([]models.Post, int, error)
	updatePostFn func(ctx context.Context, postID string, update models.PostUpdate) (models.Post, error)
	deletePostFn func(ctx context.Context, postID string) error
}

func (m *mockPostService) CreatePost(ctx context.Context, author models.User, post models.Post) (models.Post, error) {
	return m.createPostFn(ctx, author, post)
}

func (m *mockPostService) GetPost(ctx context.Context, postID string) (models.Post, error) {
	return m.getPostFn(ctx, postID)
}

func (m *mockPostService) ListPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, int, error) {
	return m.listPostsFn(ctx, filter)
}

func (m *mockPostService) UpdatePost(ctx context.Context, postID string, update models.PostUpdate) (models.Post, error) {
	return m.updatePostFn(ctx, postID, update)
}

func (m *mockPostService) DeletePost(ctx context.Context, postID string) error {
	return m.deletePostFn(ctx, postID)
}

// ─────────────────────────────────────────────
// Mock AppInfoService
// ─────────────────────────────────────────────

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// testTokenDuration matches the default session lifetime.
const testTokenDuration = 7 * 24 * time.Hour

// newTestHandler builds a Handler with the given services and the default
// session lifetime.
func newTestHandler(t *testing.T, services *service.Services) *Handler {
	t.Helper()
	return NewHandler(services, config.App{TokenDuration: testTokenDuration}, logger.Nop())
}

// sessionToken returns a models.Token resembling a freshly issued session
// token: the expiry lies far enough in the future that the sliding renewal
// does not trigger.
func sessionToken(userID, username string) models.Token {
	return models.Token{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(testTokenDuration)),
		},
		Username:     username,
		SignedString: "signed." + userID,
	}
}

// withSessionContext attaches a resolved session to the request context,
// bypassing the cookie middleware.
func withSessionContext(r *http.Request, token models.Token) *http.Request {
	ctx := context.WithValue(r.Context(), utils.SessionCtxKey, token)
	return r.WithContext(ctx)
}

// withPostContext attaches a loaded post to the request context, bypassing
// the withPost middleware.
func withPostContext(r *http.Request, post models.Post) *http.Request {
	ctx := context.WithValue(r.Context(), utils.PostCtxKey, post)
	return r.WithContext(ctx)
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// responseCookie finds the named cookie in the recorded response, failing the
// test when it is absent.
func responseCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("cookie %q not set in response", name)
	return nil
}
