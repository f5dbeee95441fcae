package model

// OrderCustomer carries the customer identity and contact fields of an
// order, shaped exactly as the backend order-acceptance API expects.
type OrderCustomer struct {
	Nombre            string `json:"nombre"`
	Email             string `json:"email"`
	Telefono          string `json:"telefono"`
	DNIRNC            string `json:"dni_rnc"`
	DocumentoTipo     string `json:"documento_tipo"`
	ContactoPreferido string `json:"contacto_preferido"`
	Whatsapp          string `json:"whatsapp"`
	Instagram         string `json:"instagram"`
}

// OrderShipping carries the shipping address fields of an order.
type OrderShipping struct {
	Provincia    string `json:"provincia"`
	Ciudad       string `json:"ciudad"`
	Direccion    string `json:"direccion"`
	CodigoPostal string `json:"codigo_postal"`
	Referencias  string `json:"referencias"`
}

// OrderPayment carries the selected payment method and the order total.
// Total is a major-unit float because that is what the wire contract
// requires; it is produced from the cart's integer-cents total at
// composition time.
type OrderPayment struct {
	MetodoPago string  `json:"metodo_pago"`
	Total      float64 `json:"total"`
}

// OrderItem is a cart line flattened into the order payload shape.
type OrderItem struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	Quantity     int     `json:"quantity"`
	SelectedSize string  `json:"selectedSize"`
	Image        string  `json:"image"`
}

// Order is the payload submitted to the external backend. The
// idempotency key is generated client-side once per checkout attempt
// so the backend can deduplicate a re-submitted order.
type Order struct {
	Customer       OrderCustomer `json:"customer"`
	Shipping       OrderShipping `json:"shipping"`
	Payment        OrderPayment  `json:"payment"`
	Items          []OrderItem   `json:"items"`
	IdempotencyKey string        `json:"idempotency_key"`
}

// OrderAck is the backend's success response to an order submission.
type OrderAck struct {
	OrderID string `json:"order_id"`
}
