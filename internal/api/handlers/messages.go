package handlers

import (
	"errors"
	"net/http"

	"github.com/bargom/sitekit/internal/api/types"
	"github.com/bargom/sitekit/internal/database/models"
	"github.com/bargom/sitekit/internal/database/repository"
	"github.com/bargom/sitekit/internal/pagination"
)

// ListMessages handles GET /api/messages. An optional status query parameter
// narrows the result to messages in that state.
func (h *Handler) ListMessages(w http.ResponseWriter, r *http.Request) {
	page := pagination.ParsePageRequest(r)

	status := r.URL.Query().Get("status")
	if status != "" && !models.ValidMessageStatus(status) {
		h.respondError(w, http.StatusBadRequest, "invalid status")
		return
	}

	items, err := h.messages.Find(r.Context(), page.Limit, page.Offset(), page.Search, status)
	if err != nil {
		h.respondStoreError(w, r, "messages.find", err)
		return
	}
	total, err := h.messages.Count(r.Context(), page.Search, status)
	if err != nil {
		h.respondStoreError(w, r, "messages.count", err)
		return
	}

	resp := pagination.NewPageResponse(types.MessagesFromModels(items), page, total)
	h.respondJSON(w, http.StatusOK, resp)
}

// GetMessage handles GET /api/messages/{id}.
func (h *Handler) GetMessage(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	message, err := h.messages.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.respondError(w, http.StatusNotFound, "message not found")
			return
		}
		h.respondStoreError(w, r, "messages.get", err)
		return
	}
	h.respondJSON(w, http.StatusOK, types.MessageFromModel(message))
}

// CreateMessage handles POST /api/messages. New messages always start in the
// pending state.
func (h *Handler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	var req types.CreateMessageRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.respondValidationError(w, err)
		return
	}

	message, err := h.messages.Create(r.Context(), repository.MessageInput{
		Name:    req.Name,
		Email:   req.Email,
		Content: req.Content,
	})
	if err != nil {
		h.respondStoreError(w, r, "messages.create", err)
		return
	}
	h.respondJSON(w, http.StatusCreated, types.MessageFromModel(message))
}

// UpdateMessage handles PUT /api/messages/{id}.
func (h *Handler) UpdateMessage(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req types.UpdateMessageRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.respondValidationError(w, err)
		return
	}

	patch := repository.MessagePatch{
		Name:    req.Name,
		Email:   req.Email,
		Content: req.Content,
	}
	if req.Status != nil {
		status := models.MessageStatus(*req.Status)
		patch.Status = &status
	}

	message, err := h.messages.Update(r.Context(), id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.respondError(w, http.StatusNotFound, "message not found")
			return
		}
		h.respondStoreError(w, r, "messages.update", err)
		return
	}
	h.respondJSON(w, http.StatusOK, types.MessageFromModel(message))
}

// DeleteMessage handles DELETE /api/messages/{id}.
func (h *Handler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.messages.Delete(r.Context(), id); err != nil {
		h.respondStoreError(w, r, "messages.delete", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
