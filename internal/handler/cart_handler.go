package handler

import (
	"net/http"
	"strings"

	"air-store/internal/cart"
	"air-store/internal/catalog"
	"air-store/internal/model"
	"air-store/internal/money"

	"github.com/rs/zerolog"
)

// CartHandler handles cart HTTP requests. It resolves products against
// the catalogue before delegating to the cart store.
type CartHandler struct {
	store   *cart.Store
	catalog *catalog.Catalog
	logger  zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(store *cart.Store, c *catalog.Catalog, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		store:   store,
		catalog: c,
		logger:  logger.With().Str("handler", "cart").Logger(),
	}
}

// cartView is the cart state returned to clients.
type cartView struct {
	Items      []model.CartItem `json:"items"`
	TotalCents money.Cents      `json:"totalCents"`
	Total      float64          `json:"total"`
	Count      int              `json:"count"`
	IsOpen     bool             `json:"isOpen"`
}

func (h *CartHandler) view() cartView {
	total := h.store.Total()
	return cartView{
		Items:      h.store.Items(),
		TotalCents: total,
		Total:      total.Amount(),
		Count:      h.store.Count(),
		IsOpen:     h.store.IsOpen(),
	}
}

// Get handles GET /api/cart requests.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.view())
}

// addItemRequest is the payload for adding a product to the cart.
type addItemRequest struct {
	ProductID int    `json:"productId" validate:"required"`
	Size      string `json:"size" validate:"required"`
}

// AddItem handles POST /api/cart/items requests.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	product := h.catalog.ByID(req.ProductID)
	if product == nil {
		writeDomainError(w, model.ErrProductNotFound, h.logger)
		return
	}
	if !product.InStock {
		writeDomainError(w, model.ErrProductOutOfStock, h.logger)
		return
	}
	if !product.HasSize(req.Size) {
		writeDomainError(w, model.ErrInvalidSize, h.logger)
		return
	}

	h.store.AddItem(r.Context(), product, req.Size)
	writeJSON(w, http.StatusOK, h.view())
}

// updateQuantityRequest is the payload for a quantity change. The
// quantity may legitimately be zero or negative (both remove the
// line), so no validation tag constrains it.
type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateItem handles PUT /api/cart/items/{lineId} requests.
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	lineID := strings.TrimPrefix(r.URL.Path, "/api/cart/items/")
	if lineID == "" {
		writeError(w, http.StatusBadRequest, "INVALID_LINE_ID", "line ID is required", h.logger)
		return
	}

	var req updateQuantityRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	h.store.UpdateQuantity(r.Context(), lineID, req.Quantity)
	writeJSON(w, http.StatusOK, h.view())
}

// RemoveItem handles DELETE /api/cart/items/{lineId} requests.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	lineID := strings.TrimPrefix(r.URL.Path, "/api/cart/items/")
	if lineID == "" {
		writeError(w, http.StatusBadRequest, "INVALID_LINE_ID", "line ID is required", h.logger)
		return
	}

	h.store.RemoveItem(r.Context(), lineID)
	writeJSON(w, http.StatusOK, h.view())
}

// Clear handles DELETE /api/cart requests.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.store.Clear(r.Context())
	writeJSON(w, http.StatusOK, h.view())
}

// visibilityRequest is the payload for setting panel visibility.
type visibilityRequest struct {
	Open bool `json:"open"`
}

// SetVisibility handles PUT /api/cart/visibility requests.
func (h *CartHandler) SetVisibility(w http.ResponseWriter, r *http.Request) {
	var req visibilityRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	h.store.SetOpen(req.Open)
	writeJSON(w, http.StatusOK, h.view())
}

// Toggle handles POST /api/cart/toggle requests.
func (h *CartHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	h.store.Toggle()
	writeJSON(w, http.StatusOK, h.view())
}
