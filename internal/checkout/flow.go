package checkout

import (
	"context"
	"strings"
	"sync"

	"air-store/internal/cart"
	"air-store/internal/model"
	"air-store/internal/money"
	"air-store/internal/orders"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// State identifies a step in the checkout flow.
type State string

const (
	StateCollectingInfo   State = "collecting_info"
	StateSelectingPayment State = "selecting_payment"
	StateConfirmed        State = "confirmed"
)

// IsTerminal reports whether the flow instance has finished.
func (s State) IsTerminal() bool {
	return s == StateConfirmed
}

// String representation (for logging)
func (s State) String() string {
	return string(s)
}

// PaymentMethods are the offered payment method labels. They are
// labels only; no gateway integration happens here.
var PaymentMethods = []string{"Visa", "Mastercard", "Apple Pay"}

// ValidPaymentMethod reports whether the label is one of the offered
// methods.
func ValidPaymentMethod(method string) bool {
	for _, m := range PaymentMethods {
		if m == method {
			return true
		}
	}
	return false
}

// FormData accumulates the customer identity, contact preference and
// shipping address entered during checkout. It lives only as long as
// the flow instance; abandoning checkout discards it.
type FormData struct {
	Nombre            string `json:"nombre"`
	Email             string `json:"email"`
	Telefono          string `json:"telefono"`
	DNIRNC            string `json:"dni_rnc"`
	DocumentoTipo     string `json:"documento_tipo"`
	ContactoPreferido string `json:"contacto_preferido"`
	Whatsapp          string `json:"whatsapp"`
	Instagram         string `json:"instagram"`
	Provincia         string `json:"provincia"`
	Ciudad            string `json:"ciudad"`
	Direccion         string `json:"direccion"`
	CodigoPostal      string `json:"codigo_postal"`
	Referencias       string `json:"referencias"`
}

// Complete reports whether every required field is non-empty after
// trimming whitespace. No format validation is applied; an email's or
// phone number's shape is a backend concern.
func (f *FormData) Complete() bool {
	required := []string{
		f.Nombre,
		f.Email,
		f.DNIRNC,
		f.Telefono,
		f.Provincia,
		f.Ciudad,
		f.Direccion,
	}
	for _, v := range required {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}

// Flow is one checkout instance: a linear three-step state machine
// that reads the cart store, collects the form data and submits the
// composed order. Confirmed is terminal; a new checkout needs a new
// Flow.
type Flow struct {
	mu         sync.Mutex
	state      State
	form       FormData
	cart       *cart.Store
	submitter  orders.Submitter
	logger     zerolog.Logger
	orderID    string
	submitting bool
	// idemKey is generated once per checkout instance so the backend
	// can deduplicate a re-submitted order.
	idemKey string
}

// NewFlow starts a checkout instance over the given cart.
func NewFlow(cartStore *cart.Store, submitter orders.Submitter, logger zerolog.Logger) *Flow {
	return &Flow{
		state: StateCollectingInfo,
		form: FormData{
			DocumentoTipo:     "dni",
			ContactoPreferido: "whatsapp",
		},
		cart:      cartStore,
		submitter: submitter,
		logger:    logger.With().Str("component", "checkout").Logger(),
		idemKey:   uuid.NewString(),
	}
}

// State returns the current step.
func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Form returns a copy of the accumulated form data.
func (f *Flow) Form() FormData {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.form
}

// OrderID returns the backend-assigned identifier once the flow is
// confirmed; empty before that.
func (f *Flow) OrderID() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.orderID
}

// UpdateInfo replaces the form data. Empty selector fields fall back
// to their defaults so a partial update never drops them. Rejected
// once the flow is confirmed or while a submission is pending.
func (f *Flow) UpdateInfo(form FormData) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state.IsTerminal() {
		return model.ErrInvalidCheckoutState
	}
	if f.submitting {
		return model.ErrSubmissionInProgress
	}

	if form.DocumentoTipo == "" {
		form.DocumentoTipo = "dni"
	}
	if form.ContactoPreferido == "" {
		form.ContactoPreferido = "whatsapp"
	}
	f.form = form
	return nil
}

// Continue advances collecting_info to selecting_payment. The
// transition is guarded by form completeness.
func (f *Flow) Continue() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateCollectingInfo {
		return model.ErrInvalidCheckoutState
	}
	if !f.form.Complete() {
		return model.ErrIncompleteCheckout
	}

	f.state = StateSelectingPayment
	f.logger.Debug().Str("state", f.state.String()).Msg("checkout advanced")
	return nil
}

// Back returns from selecting_payment to collecting_info. The form is
// retained.
func (f *Flow) Back() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateSelectingPayment {
		return model.ErrInvalidCheckoutState
	}
	if f.submitting {
		return model.ErrSubmissionInProgress
	}

	f.state = StateCollectingInfo
	return nil
}

// Confirmation reports the outcome of a successful submission.
type Confirmation struct {
	OrderID string `json:"orderId"`
	Message string `json:"message"`
}

// SelectPayment records the chosen payment method, composes the order
// from the form, the cart contents and the cart total, and makes
// exactly one submission attempt.
//
// On success the flow moves to confirmed and the cart is cleared. On
// failure the flow stays in selecting_payment with the cart untouched
// and the returned error carries the backend detail when one was
// provided; the user may select a payment method again to retry.
func (f *Flow) SelectPayment(ctx context.Context, method string) (*Confirmation, error) {
	f.mu.Lock()
	if f.state != StateSelectingPayment {
		f.mu.Unlock()
		return nil, model.ErrInvalidCheckoutState
	}
	if f.submitting {
		f.mu.Unlock()
		return nil, model.ErrSubmissionInProgress
	}
	if !ValidPaymentMethod(method) {
		f.mu.Unlock()
		return nil, model.ErrUnknownPaymentMethod
	}

	f.submitting = true
	order := f.composeOrder(method)
	f.mu.Unlock()

	// The network call happens outside the lock so state queries stay
	// responsive while the submission is pending.
	orderID, err := f.submitter.Submit(ctx, order)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = false

	if err != nil {
		f.logger.Warn().
			Err(err).
			Str("method", method).
			Msg("order submission failed, staying in payment selection")
		return nil, err
	}

	f.orderID = orderID
	f.state = StateConfirmed
	f.cart.Clear(ctx)

	f.logger.Info().
		Str("order_id", orderID).
		Str("method", method).
		Msg("order confirmed")

	return &Confirmation{
		OrderID: orderID,
		Message: "Order " + orderID + " confirmed. You will receive a confirmation email.",
	}, nil
}

// composeOrder builds the submission payload from the current form
// and cart state. The cart is read once and the payload total is
// summed from that snapshot, so the two always agree. Prices leave
// integer cents only here, at the wire boundary. Callers must hold
// the mutex.
func (f *Flow) composeOrder(method string) *model.Order {
	items := f.cart.Items()
	orderItems := make([]model.OrderItem, len(items))
	var total money.Cents
	for i, item := range items {
		orderItems[i] = model.OrderItem{
			ID:           item.ProductID,
			Name:         item.Name,
			Price:        item.PriceCents.Amount(),
			Quantity:     item.Quantity,
			SelectedSize: item.Size,
			Image:        item.Image,
		}
		total = total.Add(item.Subtotal())
	}

	return &model.Order{
		Customer: model.OrderCustomer{
			Nombre:            f.form.Nombre,
			Email:             f.form.Email,
			Telefono:          f.form.Telefono,
			DNIRNC:            f.form.DNIRNC,
			DocumentoTipo:     f.form.DocumentoTipo,
			ContactoPreferido: f.form.ContactoPreferido,
			Whatsapp:          f.form.Whatsapp,
			Instagram:         f.form.Instagram,
		},
		Shipping: model.OrderShipping{
			Provincia:    f.form.Provincia,
			Ciudad:       f.form.Ciudad,
			Direccion:    f.form.Direccion,
			CodigoPostal: f.form.CodigoPostal,
			Referencias:  f.form.Referencias,
		},
		Payment: model.OrderPayment{
			MetodoPago: method,
			Total:      total.Amount(),
		},
		Items:          orderItems,
		IdempotencyKey: f.idemKey,
	}
}
