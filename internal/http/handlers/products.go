package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/luminashop/storefront-be/internal/http/respond"
	"github.com/luminashop/storefront-be/internal/middleware"
	"github.com/luminashop/storefront-be/internal/models"
	"github.com/luminashop/storefront-be/internal/models/dto"
	"github.com/luminashop/storefront-be/internal/storage"
)

// ProductHandler owns the catalog CRUD endpoints. Reads require an
// authenticated session; mutations require the admin role, enforced
// server-side rather than by UI visibility.
type ProductHandler struct {
	store storage.ProductStore
	log   *slog.Logger
}

// NewProductHandler constructs the handler.
func NewProductHandler(store storage.ProductStore, log *slog.Logger) *ProductHandler {
	return &ProductHandler{store: store, log: log}
}

// Register attaches product routes to the mux with their role gates.
func (h *ProductHandler) Register(mux *http.ServeMux) {
	mux.Handle("GET /api/products", middleware.RequireAuth(http.HandlerFunc(h.handleList)))
	mux.Handle("POST /api/products", middleware.RequireAdmin(http.HandlerFunc(h.handleCreate)))
	mux.Handle("PUT /api/products", middleware.RequireAdmin(http.HandlerFunc(h.handleUpdate)))
	mux.Handle("DELETE /api/products", middleware.RequireAdmin(http.HandlerFunc(h.handleDelete)))
}

func (h *ProductHandler) handleList(w http.ResponseWriter, r *http.Request) {
	products, err := h.store.ListActiveProducts(r.Context())
	if err != nil {
		h.log.Error("list products failed", "error", err)
		respond.ErrorDetails(w, http.StatusInternalServerError, "failed to list products", err.Error())
		return
	}

	// An empty catalog is a successful, empty listing.
	items := make([]dto.CatalogItem, 0, len(products))
	for _, product := range products {
		items = append(items, dto.CatalogItemFromProduct(product))
	}
	respond.JSON(w, http.StatusOK, items)
}

func (h *ProductHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if strings.TrimSpace(req.Name) == "" || req.Price == nil {
		respond.Error(w, http.StatusBadRequest, "name and price are required")
		return
	}
	if req.Price.IsNegative() {
		respond.Error(w, http.StatusBadRequest, "price must not be negative")
		return
	}

	created, err := h.store.CreateProduct(r.Context(), models.Product{
		Name:        strings.TrimSpace(req.Name),
		Price:       *req.Price,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		IsActive:    true,
	})
	if err != nil {
		h.log.Error("create product failed", "error", err)
		respond.ErrorDetails(w, http.StatusInternalServerError, "failed to create product", err.Error())
		return
	}
	respond.JSON(w, http.StatusCreated, created)
}

func (h *ProductHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if strings.TrimSpace(req.ID) == "" {
		respond.Error(w, http.StatusBadRequest, "product ID is required")
		return
	}
	if err := validatePatch(req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.store.UpdateProduct(r.Context(), strings.TrimSpace(req.ID), storage.ProductPatch{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		IsActive:    req.IsActive,
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "product not found")
			return
		}
		h.log.Error("update product failed", "id", req.ID, "error", err)
		respond.ErrorDetails(w, http.StatusInternalServerError, "failed to update product", err.Error())
		return
	}
	respond.JSON(w, http.StatusOK, updated)
}

func (h *ProductHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.URL.Query().Get("id"))
	if id == "" {
		respond.Error(w, http.StatusBadRequest, "product ID is required")
		return
	}

	if err := h.store.DeleteProduct(r.Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "product not found")
			return
		}
		h.log.Error("delete product failed", "id", id, "error", err)
		respond.ErrorDetails(w, http.StatusInternalServerError, "failed to delete product", err.Error())
		return
	}
	respond.Message(w, http.StatusOK, "product successfully deleted")
}

// validatePatch rejects values a presence-based partial update cannot
// apply: null or negative prices, null names or flags, empty names.
func validatePatch(req dto.UpdateProductRequest) error {
	if req.Name.Set && (req.Name.Null || strings.TrimSpace(req.Name.Value) == "") {
		return errors.New("name must not be empty")
	}
	if req.Price.Set {
		if req.Price.Null {
			return errors.New("price must not be null")
		}
		if req.Price.Value.IsNegative() {
			return errors.New("price must not be negative")
		}
	}
	if req.IsActive.Set && req.IsActive.Null {
		return errors.New("is_active must be true or false")
	}
	return nil
}
