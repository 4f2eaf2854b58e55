package http

import (
	"context"
	"net/http"
	"time"

	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/MKhiriev/go-blog-keeper/internal/utils"
	"github.com/MKhiriev/go-blog-keeper/models"
)

// sessionCookieName is the cookie carrying the signed session token.
const sessionCookieName = "access_token"

// withSession resolves the session token cookie into a request-scoped session.
//
// The middleware never rejects a request on its own: a missing cookie, an
// expired token, or a token that fails validation all downgrade the request
// to anonymous and pass it on. Stale or forged cookies are cleared so that
// clients stop resending them. Route groups that need an authenticated caller
// layer [Handler.requireAuth] on top.
//
// A valid session whose token has consumed more than half of its lifetime is
// transparently renewed: a fresh token is issued for the same user and the
// cookie is replaced in the response.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		ctx := r.Context()

		cookie, err := r.Cookie(sessionCookieName)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		token, err := h.services.AuthService.ParseToken(ctx, cookie.Value)
		if err != nil {
			log.Debug().Err(err).Msg("session cookie rejected, continuing as anonymous")
			h.clearSessionCookie(w)
			next.ServeHTTP(w, r)
			return
		}

		h.renewSessionIfStale(ctx, w, token)

		ctx = context.WithValue(ctx, utils.SessionCtxKey, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// renewSessionIfStale re-issues the session cookie when the token has less
// than half of the configured session lifetime left. A renewal failure is
// logged and ignored: the current token is still valid.
func (h *Handler) renewSessionIfStale(ctx context.Context, w http.ResponseWriter, token models.Token) {
	expiresAt, err := token.GetExpirationTime()
	if err != nil || expiresAt == nil {
		return
	}

	if time.Until(expiresAt.Time) >= h.tokenDuration/2 {
		return
	}

	userID, err := token.GetUserID()
	if err != nil {
		return
	}

	renewed, err := h.services.AuthService.CreateToken(ctx, models.User{UserID: userID, Username: token.Username})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("id", userID).Msg("session renewal failed")
		return
	}

	h.setSessionCookie(w, renewed.SignedString)
}

// requireAuth rejects requests that carry no resolved session with
// HTTP 401 Unauthorized. It must run after [Handler.withSession].
func (h *Handler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.SessionFromContext(r.Context()); !ok {
			logger.FromRequest(r).Debug().Err(ErrAuthenticationRequired).Send()
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// setSessionCookie attaches the signed session token to the response.
// The cookie is HTTP-only so that page scripts cannot read the token.
func (h *Handler) setSessionCookie(w http.ResponseWriter, signedToken string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    signedToken,
		Path:     "/",
		MaxAge:   int(h.tokenDuration.Seconds()),
		HttpOnly: true,
	})
}

// clearSessionCookie instructs the client to drop the session cookie.
func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}
