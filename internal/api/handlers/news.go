package handlers

import (
	"errors"
	"net/http"

	"github.com/bargom/sitekit/internal/api/types"
	"github.com/bargom/sitekit/internal/database/repository"
	"github.com/bargom/sitekit/internal/pagination"
)

// ListNews handles GET /api/news.
func (h *Handler) ListNews(w http.ResponseWriter, r *http.Request) {
	page := pagination.ParsePageRequest(r)

	items, err := h.news.Find(r.Context(), page.Limit, page.Offset(), page.Search)
	if err != nil {
		h.respondStoreError(w, r, "news.find", err)
		return
	}
	total, err := h.news.Count(r.Context(), page.Search)
	if err != nil {
		h.respondStoreError(w, r, "news.count", err)
		return
	}

	resp := pagination.NewPageResponse(types.NewsFromModels(items), page, total)
	h.respondJSON(w, http.StatusOK, resp)
}

// GetNews handles GET /api/news/{id}.
func (h *Handler) GetNews(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	item, err := h.news.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.respondError(w, http.StatusNotFound, "news item not found")
			return
		}
		h.respondStoreError(w, r, "news.get", err)
		return
	}
	h.respondJSON(w, http.StatusOK, types.NewsFromModel(item))
}

// CreateNews handles POST /api/news.
func (h *Handler) CreateNews(w http.ResponseWriter, r *http.Request) {
	var req types.CreateNewsRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.respondValidationError(w, err)
		return
	}

	item, err := h.news.Create(r.Context(), repository.NewsInput{
		Title:      req.Title,
		Content:    req.Content,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		h.respondStoreError(w, r, "news.create", err)
		return
	}
	h.respondJSON(w, http.StatusCreated, types.NewsFromModel(item))
}

// UpdateNews handles PUT /api/news/{id}.
func (h *Handler) UpdateNews(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req types.UpdateNewsRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.respondValidationError(w, err)
		return
	}

	item, err := h.news.Update(r.Context(), id, repository.NewsPatch{
		Title:      req.Title,
		Content:    req.Content,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.respondError(w, http.StatusNotFound, "news item not found")
			return
		}
		h.respondStoreError(w, r, "news.update", err)
		return
	}
	h.respondJSON(w, http.StatusOK, types.NewsFromModel(item))
}

// DeleteNews handles DELETE /api/news/{id}.
func (h *Handler) DeleteNews(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.news.Delete(r.Context(), id); err != nil {
		h.respondStoreError(w, r, "news.delete", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// BatchDeleteNews handles DELETE /api/news with a JSON body of ids.
func (h *Handler) BatchDeleteNews(w http.ResponseWriter, r *http.Request) {
	var req types.BatchDeleteNewsRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.respondValidationError(w, err)
		return
	}

	if err := h.news.DeleteMany(r.Context(), req.IDs); err != nil {
		if errors.Is(err, repository.ErrEmptyIDSet) {
			h.respondError(w, http.StatusBadRequest, "ids must not be empty")
			return
		}
		h.respondStoreError(w, r, "news.batch_delete", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
