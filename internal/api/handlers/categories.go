package handlers

import (
	"errors"
	"net/http"

	"github.com/bargom/sitekit/internal/api/types"
	"github.com/bargom/sitekit/internal/database/repository"
	"github.com/bargom/sitekit/internal/pagination"
)

// ListCategories handles GET /api/categories.
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	page := pagination.ParsePageRequest(r)

	items, err := h.categories.Find(r.Context(), page.Limit, page.Offset(), page.Search)
	if err != nil {
		h.respondStoreError(w, r, "categories.find", err)
		return
	}
	total, err := h.categories.Count(r.Context(), page.Search)
	if err != nil {
		h.respondStoreError(w, r, "categories.count", err)
		return
	}

	resp := pagination.NewPageResponse(types.CategoriesFromModels(items), page, total)
	h.respondJSON(w, http.StatusOK, resp)
}

// GetCategory handles GET /api/categories/{id}.
func (h *Handler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	category, err := h.categories.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.respondError(w, http.StatusNotFound, "category not found")
			return
		}
		h.respondStoreError(w, r, "categories.get", err)
		return
	}
	h.respondJSON(w, http.StatusOK, types.CategoryFromModel(category))
}

// CreateCategory handles POST /api/categories.
func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req types.CreateCategoryRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.respondValidationError(w, err)
		return
	}

	category, err := h.categories.Create(r.Context(), repository.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.respondStoreError(w, r, "categories.create", err)
		return
	}
	h.respondJSON(w, http.StatusCreated, types.CategoryFromModel(category))
}

// UpdateCategory handles PUT /api/categories/{id}.
func (h *Handler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req types.UpdateCategoryRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.respondValidationError(w, err)
		return
	}

	category, err := h.categories.Update(r.Context(), id, repository.CategoryPatch{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.respondError(w, http.StatusNotFound, "category not found")
			return
		}
		h.respondStoreError(w, r, "categories.update", err)
		return
	}
	h.respondJSON(w, http.StatusOK, types.CategoryFromModel(category))
}

// DeleteCategory handles DELETE /api/categories/{id}.
func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.categories.Delete(r.Context(), id); err != nil {
		h.respondStoreError(w, r, "categories.delete", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
