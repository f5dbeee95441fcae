package handler

import (
	"errors"
	"net/http"
	"sync"

	"air-store/internal/cart"
	"air-store/internal/checkout"
	"air-store/internal/model"
	"air-store/internal/orders"

	"github.com/rs/zerolog"
)

// CheckoutHandler manages the active checkout flow instance. A new
// instance is created by Start; a confirmed flow stays readable until
// the next Start replaces it.
type CheckoutHandler struct {
	mu        sync.Mutex
	flow      *checkout.Flow
	cart      *cart.Store
	submitter orders.Submitter
	logger    zerolog.Logger
}

// NewCheckoutHandler creates a new checkout handler.
func NewCheckoutHandler(cartStore *cart.Store, submitter orders.Submitter, logger zerolog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		cart:      cartStore,
		submitter: submitter,
		logger:    logger.With().Str("handler", "checkout").Logger(),
	}
}

func (h *CheckoutHandler) currentFlow() *checkout.Flow {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.flow
}

// checkoutView is the flow state returned to clients.
type checkoutView struct {
	State    checkout.State    `json:"state"`
	Form     checkout.FormData `json:"form"`
	Complete bool              `json:"complete"`
	OrderID  string            `json:"orderId,omitempty"`
}

func viewOf(flow *checkout.Flow) checkoutView {
	form := flow.Form()
	return checkoutView{
		State:    flow.State(),
		Form:     form,
		Complete: form.Complete(),
		OrderID:  flow.OrderID(),
	}
}

// Start handles POST /api/checkout requests: it begins a fresh
// checkout instance over the current cart. The cart must be non-empty.
func (h *CheckoutHandler) Start(w http.ResponseWriter, r *http.Request) {
	if len(h.cart.Items()) == 0 {
		writeDomainError(w, model.ErrEmptyCart, h.logger)
		return
	}

	h.mu.Lock()
	h.flow = checkout.NewFlow(h.cart, h.submitter, h.logger)
	flow := h.flow
	h.mu.Unlock()

	h.logger.Info().Msg("checkout started")
	writeJSON(w, http.StatusCreated, viewOf(flow))
}

// Get handles GET /api/checkout requests.
func (h *CheckoutHandler) Get(w http.ResponseWriter, r *http.Request) {
	flow := h.currentFlow()
	if flow == nil {
		writeError(w, http.StatusNotFound, "NO_CHECKOUT", "no checkout in progress", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, viewOf(flow))
}

// UpdateInfo handles PUT /api/checkout/info requests.
func (h *CheckoutHandler) UpdateInfo(w http.ResponseWriter, r *http.Request) {
	flow := h.currentFlow()
	if flow == nil {
		writeError(w, http.StatusNotFound, "NO_CHECKOUT", "no checkout in progress", h.logger)
		return
	}

	var form checkout.FormData
	if err := decodeJSON(r, &form); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	if err := flow.UpdateInfo(form); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, viewOf(flow))
}

// Continue handles POST /api/checkout/continue requests.
func (h *CheckoutHandler) Continue(w http.ResponseWriter, r *http.Request) {
	flow := h.currentFlow()
	if flow == nil {
		writeError(w, http.StatusNotFound, "NO_CHECKOUT", "no checkout in progress", h.logger)
		return
	}

	if err := flow.Continue(); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, viewOf(flow))
}

// Back handles POST /api/checkout/back requests.
func (h *CheckoutHandler) Back(w http.ResponseWriter, r *http.Request) {
	flow := h.currentFlow()
	if flow == nil {
		writeError(w, http.StatusNotFound, "NO_CHECKOUT", "no checkout in progress", h.logger)
		return
	}

	if err := flow.Back(); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, viewOf(flow))
}

// paymentRequest is the payload for selecting a payment method.
type paymentRequest struct {
	MetodoPago string `json:"metodo_pago" validate:"required"`
}

// SelectPayment handles POST /api/checkout/payment requests: it
// submits the composed order and confirms the flow on success.
func (h *CheckoutHandler) SelectPayment(w http.ResponseWriter, r *http.Request) {
	flow := h.currentFlow()
	if flow == nil {
		writeError(w, http.StatusNotFound, "NO_CHECKOUT", "no checkout in progress", h.logger)
		return
	}

	var req paymentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	conf, err := flow.SelectPayment(r.Context(), req.MetodoPago)
	if err != nil {
		var domainErr *model.DomainError
		var subErr *model.SubmissionError
		switch {
		case errors.As(err, &domainErr), errors.As(err, &subErr):
			writeDomainError(w, err, h.logger)
		default:
			// Transport-level failure: the order never reached the
			// backend; surface the generic retryable message.
			h.logger.Warn().Err(err).Msg("order submission transport failure")
			writeError(w, http.StatusBadGateway, model.ErrCodeSubmissionFailed,
				(&model.SubmissionError{}).Error(), h.logger)
		}
		return
	}

	writeJSON(w, http.StatusOK, struct {
		checkoutView
		Confirmation *checkout.Confirmation `json:"confirmation"`
	}{viewOf(flow), conf})
}
