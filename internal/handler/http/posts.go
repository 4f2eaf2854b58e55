package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/MKhiriev/go-blog-keeper/internal/store"
	"github.com/MKhiriev/go-blog-keeper/internal/utils"
	"github.com/MKhiriev/go-blog-keeper/models"
)

// bodyPreviewLimit is the maximum number of characters of a post body
// returned by the listing endpoint.
const bodyPreviewLimit = 200

// lastPageHeader tells listing clients how many pages the current filter has.
const lastPageHeader = "Last-Page"

func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	page := 1
	if pageParam := r.URL.Query().Get("page"); pageParam != "" {
		parsed, err := strconv.Atoi(pageParam)
		if err != nil {
			log.Debug().Str("page", pageParam).Msg("page is not a number")
			http.Error(w, "page must be a number", http.StatusBadRequest)
			return
		}
		page = parsed
	}

	filter := models.PostFilter{
		Page:     page,
		Username: r.URL.Query().Get("username"),
		Tag:      r.URL.Query().Get("tag"),
	}

	if err := h.validator.Validate(ctx, filter); err != nil {
		log.Debug().Err(err).Msg("invalid listing filter")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	posts, lastPage, err := h.services.PostService.ListPosts(ctx, filter)
	if err != nil {
		log.Err(err).Any("filter", filter).Msg("unexpected error occurred during post listing")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	// listing returns body previews, not full texts
	for i := range posts {
		posts[i] = posts[i].Preview(bodyPreviewLimit)
	}

	w.Header().Set(lastPageHeader, strconv.Itoa(lastPage))
	utils.WriteJSON(w, posts, http.StatusOK)
}

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
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

	var post models.Post
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, post); err != nil {
		log.Debug().Err(err).Msg("invalid post provided")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	author := models.User{UserID: userID, Username: session.Username}

	createdPost, err := h.services.PostService.CreatePost(ctx, author, post)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during post creation")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, createdPost, http.StatusCreated)
}

func (h *Handler) getPost(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	post, ok := utils.PostFromContext(r.Context())
	if !ok {
		log.Error().Msg("post is missing from request context")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, post, http.StatusOK)
}

func (h *Handler) updatePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	post, ok := utils.PostFromContext(ctx)
	if !ok {
		log.Error().Msg("post is missing from request context")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var update models.PostUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, update); err != nil {
		log.Debug().Err(err).Msg("invalid post update provided")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	updatedPost, err := h.services.PostService.UpdatePost(ctx, post.PostID, update)
	if err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			http.Error(w, "post not found", http.StatusNotFound)
			return
		}
		log.Err(err).Str("postID", post.PostID).Msg("unexpected error occurred during post update")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, updatedPost, http.StatusOK)
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	post, ok := utils.PostFromContext(ctx)
	if !ok {
		log.Error().Msg("post is missing from request context")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if err := h.services.PostService.DeletePost(ctx, post.PostID); err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			http.Error(w, "post not found", http.StatusNotFound)
			return
		}
		log.Err(err).Str("postID", post.PostID).Msg("unexpected error occurred during post deletion")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
