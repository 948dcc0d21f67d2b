package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/VitaminP8/blogery/internal/comment"
	"github.com/VitaminP8/blogery/internal/dto"
)

// CommentHandler обрабатывает HTTP-запросы по комментариям
type CommentHandler struct {
	service comment.CommentService
}

func NewCommentHandler(service comment.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

// Create - POST /api/comments
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.CreateComment(req.PostID, req.Text)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/comments/%d", result.ID))
	writeJSON(w, http.StatusCreated, result)
}

// GetById - GET /api/comments/{id}
func (h *CommentHandler) GetById(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid comment id")
		return
	}

	result, err := h.service.GetCommentById(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// ListByPost - GET /api/posts/{id}/comments
func (h *CommentHandler) ListByPost(w http.ResponseWriter, r *http.Request) {
	postID, err := idParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid post id")
		return
	}

	results, err := h.service.GetCommentsByPostId(postID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, results)
}

// Delete - DELETE /api/comments/{id}
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid comment id")
		return
	}

	if err := h.service.DeleteCommentById(id); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
