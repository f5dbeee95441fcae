package handler

import (
	"net/http"
	"strconv"
	"strings"

	"air-store/internal/catalog"

	"github.com/rs/zerolog"
)

// ProductHandler handles product catalogue HTTP requests.
type ProductHandler struct {
	catalog *catalog.Catalog
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(c *catalog.Catalog, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		catalog: c,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// GetAll handles GET /api/products requests with an optional category
// filter.
func (h *ProductHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed", h.logger)
		return
	}

	category := r.URL.Query().Get("category")
	products := h.catalog.Products()
	if category != "" {
		products = h.catalog.ByCategory(category)
	}

	h.logger.Debug().
		Str("category", category).
		Int("count", len(products)).
		Msg("retrieved products")

	writeJSON(w, http.StatusOK, products)
}

// GetByID handles GET /api/products/{id} requests.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed", h.logger)
		return
	}

	idStr := strings.TrimPrefix(r.URL.Path, "/api/products/")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_PRODUCT_ID", "invalid product ID format", h.logger)
		return
	}

	product := h.catalog.ByID(id)
	if product == nil {
		writeError(w, http.StatusNotFound, "PRODUCT_NOT_FOUND", "product not found", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// Categories handles GET /api/categories requests.
func (h *ProductHandler) Categories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, h.catalog.Categories())
}
