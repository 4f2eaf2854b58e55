// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-blog-keeper/internal/service"
	"github.com/MKhiriev/go-blog-keeper/internal/store"
	"github.com/MKhiriev/go-blog-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newHandlerWithAuth builds a Handler with the given AuthService mock.
func newHandlerWithAuth(t *testing.T, auth service.AuthService) *Handler {
	t.Helper()
	return newTestHandler(t, &service.Services{
		AuthService:    auth,
		AppInfoService: &mockAppInfoService{version: "test"},
	})
}

// stubToken returns a models.Token with the given signed string.
func stubToken(signed string) models.Token {
	return models.Token{SignedString: signed}
}

// validCredentials is a convenience fixture used across multiple tests.
var validCredentials = models.Credentials{
	Username: "alice",
	Password: "super-secret",
}

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

// TestRegister_Success verifies that a valid registration request results in
// 201 Created, a session cookie carrying the issued token, and the public
// user projection in the body.
func TestRegister_Success(t *testing.T) {
	const signedToken = "signed.jwt.token"

	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, c models.Credentials) (models.User, error) {
			return models.User{UserID: "user-1", Username: c.Username, PasswordHash: "bcrypt-digest"}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return stubToken(signedToken), nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(jsonBody(t, validCredentials)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	cookie := responseCookie(t, rec, sessionCookieName)
	assert.Equal(t, signedToken, cookie.Value)
	assert.True(t, cookie.HttpOnly, "session cookie must be HTTP-only")
	assert.Equal(t, int(testTokenDuration.Seconds()), cookie.MaxAge)

	var body models.PublicUser
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, models.PublicUser{ID: "user-1", Username: "alice"}, body)
	assert.NotContains(t, rec.Body.String(), "bcrypt-digest", "password hash must never leave the server")
}

func TestRegister_InvalidJSON(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestRegister_InvalidUsername verifies that the username rule is enforced
// before the service is ever called (the mock would panic otherwise).
func TestRegister_InvalidUsername(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	tests := []struct {
		name        string
		credentials models.Credentials
	}{
		{name: "too short", credentials: models.Credentials{Username: "ab", Password: "secret"}},
		{name: "too long", credentials: models.Credentials{Username: strings.Repeat("a", 21), Password: "secret"}},
		{name: "non-alphanumeric", credentials: models.Credentials{Username: "al ice!", Password: "secret"}},
		{name: "empty password", credentials: models.Credentials{Username: "alice"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(jsonBody(t, tt.credentials)))
			rec := httptest.NewRecorder()

			h.register(rec, req)

			require.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestRegister_UsernameTaken(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, _ models.Credentials) (models.User, error) {
			return models.User{}, store.ErrUsernameTaken
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(jsonBody(t, validCredentials)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestRegister_UnexpectedServiceError(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, _ models.Credentials) (models.User, error) {
			return models.User{}, errors.New("db is down")
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(jsonBody(t, validCredentials)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRegister_TokenCreationFails(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, c models.Credentials) (models.User, error) {
			return models.User{UserID: "user-1", Username: c.Username}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return models.Token{}, service.ErrTokenCreationFailed
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(jsonBody(t, validCredentials)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Empty(t, rec.Result().Cookies(), "no session cookie on failure")
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	const signedToken = "signed.jwt.token"

	auth := &mockAuthService{
		loginFn: func(_ context.Context, c models.Credentials) (models.User, error) {
			return models.User{UserID: "user-1", Username: c.Username}, nil
		},
		createTokenFn: func(_ context.Context, u models.User) (models.Token, error) {
			assert.Equal(t, "user-1", u.UserID)
			return stubToken(signedToken), nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(jsonBody(t, validCredentials)))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	cookie := responseCookie(t, rec, sessionCookieName)
	assert.Equal(t, signedToken, cookie.Value)
	assert.True(t, cookie.HttpOnly)

	var body models.PublicUser
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "alice", body.Username)
}

func TestLogin_InvalidJSON(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(""))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestLogin_BadCredentials verifies that an unknown user and a wrong password
// are indistinguishable to the caller: both yield 401.
func TestLogin_BadCredentials(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "user not found", err: store.ErrNoUserWasFound},
		{name: "wrong password", err: service.ErrWrongPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				loginFn: func(_ context.Context, _ models.Credentials) (models.User, error) {
					return models.User{}, tt.err
				},
			}

			h := newHandlerWithAuth(t, auth)
			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(jsonBody(t, validCredentials)))
			rec := httptest.NewRecorder()

			h.login(rec, req)

			require.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Empty(t, rec.Body.String())
			assert.Empty(t, rec.Result().Cookies())
		})
	}
}

// TestLogin_EmptyCredentials verifies that missing credentials are treated as
// a failed login rather than a malformed request: 401 with an empty body.
func TestLogin_EmptyCredentials(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.Credentials) (models.User, error) {
			return models.User{}, service.ErrInvalidDataProvided
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Empty(t, rec.Result().Cookies())
}

// ─────────────────────────────────────────────
// check
// ─────────────────────────────────────────────

func TestCheck_WithSession(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/check", nil)
	req = withSessionContext(req, sessionToken("user-1", "alice"))
	rec := httptest.NewRecorder()

	h.check(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body models.PublicUser
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, models.PublicUser{ID: "user-1", Username: "alice"}, body)
}

func TestCheck_MissingSessionContext(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/check", nil)
	rec := httptest.NewRecorder()

	h.check(rec, req)

	// requireAuth guards the route; reaching the handler without a session is
	// an internal fault, not an auth failure
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// logout
// ─────────────────────────────────────────────

func TestLogout_ClearsCookie(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	rec := httptest.NewRecorder()

	h.logout(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)

	cookie := responseCookie(t, rec, sessionCookieName)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge, "cookie must be expired")
}

func TestLogout_WithoutSessionStillSucceeds(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	rec := httptest.NewRecorder()

	h.logout(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
}
