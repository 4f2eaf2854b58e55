package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/MKhiriev/go-blog-keeper/internal/service"
	"github.com/MKhiriev/go-blog-keeper/internal/store"
	"github.com/MKhiriev/go-blog-keeper/internal/utils"
	"github.com/MKhiriev/go-blog-keeper/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, credentials); err != nil {
		log.Err(err).Msg("invalid credentials provided")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, credentials)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrUsernameTaken):
			log.Err(err).Msg("username already taken")
			w.WriteHeader(http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.setSessionCookie(w, token.SignedString)
	utils.WriteJSON(w, registeredUser.Serialize(), http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		switch {
		// missing credentials are a failed login, not a malformed request
		case errors.Is(err, service.ErrInvalidDataProvided),
			errors.Is(err, store.ErrNoUserWasFound),
			errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Msg("login rejected")
			w.WriteHeader(http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Str("id", foundUser.UserID).Str("username", foundUser.Username).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.setSessionCookie(w, token.SignedString)
	utils.WriteJSON(w, foundUser.Serialize(), http.StatusOK)
}

// check reports the identity bound to the current session. The requireAuth
// middleware has already rejected anonymous callers, so a missing session
// here is an internal wiring fault.
func (h *Handler) check(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	session, ok := utils.SessionFromContext(ctx)
	if !ok {
		log.Error().Msg("session is missing from request context")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	userID, err := session.GetUserID()
	if err != nil {
		log.Err(err).Msg("session token carries no subject")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.PublicUser{ID: userID, Username: session.Username}, http.StatusOK)
}

// logout drops the session cookie. The operation is idempotent: logging out
// without a session still succeeds.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.clearSessionCookie(w)
	w.WriteHeader(http.StatusNoContent)
}
