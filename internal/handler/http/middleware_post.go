package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/MKhiriev/go-blog-keeper/internal/store"
	"github.com/MKhiriev/go-blog-keeper/internal/utils"
	"github.com/go-chi/chi/v5"
)

// withPost loads the post addressed by the {postID} URL parameter and stores
// it in the request context under [utils.PostCtxKey].
//
// Requests are rejected before any database round trip when the identifier
// does not parse as a UUID (HTTP 400). A missing post yields HTTP 404.
func (h *Handler) withPost(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		ctx := r.Context()

		postID := chi.URLParam(r, "postID")
		if !utils.IsValidUUID(postID) {
			log.Debug().Str("postID", postID).Err(ErrInvalidPostID).Send()
			http.Error(w, ErrInvalidPostID.Error(), http.StatusBadRequest)
			return
		}

		post, err := h.services.PostService.GetPost(ctx, postID)
		if err != nil {
			if errors.Is(err, store.ErrPostNotFound) {
				http.Error(w, "post not found", http.StatusNotFound)
				return
			}
			log.Err(err).Str("postID", postID).Msg("unexpected error occurred during post lookup")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		ctx = context.WithValue(ctx, utils.PostCtxKey, post)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// checkPostOwner rejects post mutations issued by anyone other than the
// post's author with HTTP 403 Forbidden.
//
// It must run after both [Handler.withSession] (for the session) and
// [Handler.withPost] (for the post). The comparison is an exact match of the
// session subject against the stored owner id; both are canonical UUID
// strings produced by the same generator.
func (h *Handler) checkPostOwner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		ctx := r.Context()

		session, ok := utils.SessionFromContext(ctx)
		if !ok {
			log.Debug().Err(ErrAuthenticationRequired).Send()
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		post, ok := utils.PostFromContext(ctx)
		if !ok {
			log.Error().Msg("post is missing from request context")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		userID, err := session.GetUserID()
		if err != nil || userID != post.UserID {
			log.Debug().
				Str("id", userID).
				Str("postID", post.PostID).
				Err(ErrNotPostOwner).
				Send()
			w.WriteHeader(http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
