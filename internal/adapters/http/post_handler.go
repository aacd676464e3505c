package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"inkwell/internal/adapters/http/middleware"
	"inkwell/internal/adapters/http/response"
	"inkwell/internal/domain"
	"inkwell/internal/logger"
)

type PostHandler struct {
	svc domain.PostService
	log logger.Logger
}

func NewPostHandler(svc domain.PostService, log logger.Logger) *PostHandler {
	return &PostHandler{
		svc: svc,
		log: log,
	}
}

func (h *PostHandler) Index(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Could not validate credentials")
		return
	}

	posts, err := h.svc.List(r.Context(), user.ID)
	if err != nil {
		h.log.Error("post: list failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "Failed to list posts")
		return
	}

	response.JSON(w, http.StatusOK, posts)
}

func (h *PostHandler) Store(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	user, ok := middleware.GetUser(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Could not validate credentials")
		return
	}

	var req domain.PostSaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := ValidateStruct(&req); len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	post, err := h.svc.Create(r.Context(), req, user.ID)
	if err != nil {
		h.log.Error("post: create failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "Failed to create post")
		return
	}

	response.JSON(w, http.StatusOK, post)
}

func (h *PostHandler) Show(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Could not validate credentials")
		return
	}

	postID, err := postIDFromPath(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Id doesn't specified")
		return
	}

	post, err := h.svc.Get(r.Context(), postID, user.ID)
	if err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			response.Error(w, http.StatusNotFound, "Post doesn't exists")
			return
		}

		h.log.Error("post: get failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "Failed to get post")
		return
	}

	response.JSON(w, http.StatusOK, post)
}

func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	user, ok := middleware.GetUser(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Could not validate credentials")
		return
	}

	postID, err := postIDFromPath(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Id doesn't specified")
		return
	}

	var req domain.PostSaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := ValidateStruct(&req); len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	if err := h.svc.Update(r.Context(), req, postID, user.ID); err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			response.Error(w, http.StatusNotFound, "Post doesn't exists")
			return
		}

		h.log.Error("post: update failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "Failed to update post")
		return
	}

	response.Message(w, http.StatusOK, "Success")
}

func (h *PostHandler) Destroy(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Could not validate credentials")
		return
	}

	postID, err := postIDFromPath(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Id doesn't specified")
		return
	}

	if err := h.svc.Delete(r.Context(), postID, user.ID); err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			response.Error(w, http.StatusNotFound, "Post doesn't exists")
			return
		}

		h.log.Error("post: delete failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "Failed to delete post")
		return
	}

	response.Message(w, http.StatusOK, "Success")
}

func postIDFromPath(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}
