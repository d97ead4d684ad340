// Package handlers contains HTTP request handlers for the API.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/bargom/sitekit/internal/api/types"
	"github.com/bargom/sitekit/internal/database/repository"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// Handler provides HTTP handlers for the API.
type Handler struct {
	categories repository.CategoryRepo
	news       repository.NewsRepo
	products   repository.ProductRepo
	messages   repository.MessageRepo
	validate   *validator.Validate
	logger     *slog.Logger
}

// NewHandler creates a new Handler from a Repositories struct.
func NewHandler(repos *repository.Repositories, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		categories: repos.Categories,
		news:       repos.News,
		products:   repos.Products,
		messages:   repos.Messages,
		validate:   validator.New(),
		logger:     logger,
	}
}

// respondJSON writes a JSON response with the given status code.
func (h *Handler) respondJSON(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			h.logger.Error("encoding response", "error", err)
		}
	}
}

// respondError writes a JSON error response with the given status code.
func (h *Handler) respondError(w http.ResponseWriter, code int, message string) {
	h.respondJSON(w, code, types.ErrorResponse{Error: message})
}

// respondStoreError logs the underlying store failure and returns an opaque
// 500 to the client.
func (h *Handler) respondStoreError(w http.ResponseWriter, r *http.Request, op string, err error) {
	h.logger.Error("store operation failed",
		"op", op,
		"path", r.URL.Path,
		"error", err,
	)
	h.respondError(w, http.StatusInternalServerError, "internal server error")
}

// respondValidationError writes a JSON validation error response.
func (h *Handler) respondValidationError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		details := make(map[string]string)
		for _, e := range validationErrs {
			details[e.Field()] = formatValidationError(e)
		}
		h.respondJSON(w, http.StatusBadRequest, types.ErrorResponse{
			Error:   "validation failed",
			Details: details,
		})
		return
	}
	h.respondError(w, http.StatusBadRequest, "invalid input")
}

// formatValidationError formats a validation error into a human-readable message.
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + e.Param()
	case "max":
		return "must be at most " + e.Param()
	case "gt":
		return "must be greater than " + e.Param()
	case "gte":
		return "must be at least " + e.Param()
	case "email":
		return "must be a valid email address"
	case "oneof":
		return "must be one of: " + e.Param()
	default:
		return "is invalid"
	}
}

// decodeJSON decodes a JSON request body into the given value.
func (h *Handler) decodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return errors.New("request body is required")
	}
	return json.NewDecoder(r.Body).Decode(v)
}

// decodeAndValidate decodes and validates a JSON request.
func (h *Handler) decodeAndValidate(r *http.Request, v interface{}) error {
	if err := h.decodeJSON(r, v); err != nil {
		return err
	}
	return h.validate.Struct(v)
}

// urlID extracts and parses the {id} URL parameter.
func urlID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
