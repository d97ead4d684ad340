package handlers

import (
	"errors"
	"net/http"

	"github.com/bargom/sitekit/internal/api/types"
	"github.com/bargom/sitekit/internal/database/repository"
	"github.com/bargom/sitekit/internal/pagination"
)

// ListProducts handles GET /api/products.
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	page := pagination.ParsePageRequest(r)

	items, err := h.products.Find(r.Context(), page.Limit, page.Offset(), page.Search)
	if err != nil {
		h.respondStoreError(w, r, "products.find", err)
		return
	}
	total, err := h.products.Count(r.Context(), page.Search)
	if err != nil {
		h.respondStoreError(w, r, "products.count", err)
		return
	}

	resp := pagination.NewPageResponse(types.ProductsFromModels(items), page, total)
	h.respondJSON(w, http.StatusOK, resp)
}

// GetProduct handles GET /api/products/{id}.
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	product, err := h.products.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.respondError(w, http.StatusNotFound, "product not found")
			return
		}
		h.respondStoreError(w, r, "products.get", err)
		return
	}
	h.respondJSON(w, http.StatusOK, types.ProductFromModel(product))
}

// CreateProduct handles POST /api/products.
func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req types.CreateProductRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.respondValidationError(w, err)
		return
	}

	product, err := h.products.Create(r.Context(), repository.ProductInput{
		Name:          req.Name,
		Description:   req.Description,
		Price:         *req.Price,
		StockQuantity: req.StockQuantity,
	})
	if err != nil {
		h.respondStoreError(w, r, "products.create", err)
		return
	}
	h.respondJSON(w, http.StatusCreated, types.ProductFromModel(product))
}

// UpdateProduct handles PUT /api/products/{id}.
func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req types.UpdateProductRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.respondValidationError(w, err)
		return
	}

	product, err := h.products.Update(r.Context(), id, repository.ProductPatch{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.respondError(w, http.StatusNotFound, "product not found")
			return
		}
		h.respondStoreError(w, r, "products.update", err)
		return
	}
	h.respondJSON(w, http.StatusOK, types.ProductFromModel(product))
}

// DeleteProduct handles DELETE /api/products/{id}.
func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.products.Delete(r.Context(), id); err != nil {
		h.respondStoreError(w, r, "products.delete", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
