package router

import (
	"net/http"
	"strings"

	"air-store/internal/handler"
	"air-store/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	productHandler *handler.ProductHandler,
	cartHandler *handler.CartHandler,
	checkoutHandler *handler.CheckoutHandler,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Product routes
	productRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/products" && r.URL.Path != "/api/products/" {
			productHandler.GetByID(w, r)
			return
		}
		productHandler.GetAll(w, r)
	}
	mux.HandleFunc("/api/products", productRouteHandler)
	mux.HandleFunc("/api/products/", productRouteHandler)
	mux.HandleFunc("/api/categories", productHandler.Categories)

	// Cart routes
	cartRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimSuffix(r.URL.Path, "/")

		switch {
		case path == "/api/cart" && r.Method == http.MethodGet:
			cartHandler.Get(w, r)
		case path == "/api/cart" && r.Method == http.MethodDelete:
			cartHandler.Clear(w, r)
		case path == "/api/cart/items" && r.Method == http.MethodPost:
			cartHandler.AddItem(w, r)
		case strings.HasPrefix(path, "/api/cart/items/") && r.Method == http.MethodPut:
			cartHandler.UpdateItem(w, r)
		case strings.HasPrefix(path, "/api/cart/items/") && r.Method == http.MethodDelete:
			cartHandler.RemoveItem(w, r)
		case path == "/api/cart/visibility" && r.Method == http.MethodPut:
			cartHandler.SetVisibility(w, r)
		case path == "/api/cart/toggle" && r.Method == http.MethodPost:
			cartHandler.Toggle(w, r)
		default:
			http.Error(w, "not found", http.StatusNotFound)
		}
	}
	mux.HandleFunc("/api/cart", cartRouteHandler)
	mux.HandleFunc("/api/cart/", cartRouteHandler)

	// Checkout routes
	checkoutRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimSuffix(r.URL.Path, "/")

		switch {
		case path == "/api/checkout" && r.Method == http.MethodPost:
			checkoutHandler.Start(w, r)
		case path == "/api/checkout" && r.Method == http.MethodGet:
			checkoutHandler.Get(w, r)
		case path == "/api/checkout/info" && r.Method == http.MethodPut:
			checkoutHandler.UpdateInfo(w, r)
		case path == "/api/checkout/continue" && r.Method == http.MethodPost:
			checkoutHandler.Continue(w, r)
		case path == "/api/checkout/back" && r.Method == http.MethodPost:
			checkoutHandler.Back(w, r)
		case path == "/api/checkout/payment" && r.Method == http.MethodPost:
			checkoutHandler.SelectPayment(w, r)
		default:
			http.Error(w, "not found", http.StatusNotFound)
		}
	}
	mux.HandleFunc("/api/checkout", checkoutRouteHandler)
	mux.HandleFunc("/api/checkout/", checkoutRouteHandler)

	// Apply middleware in order: Recovery -> Logging -> CORS -> RequestID
	var h http.Handler = mux
	h = middleware.RequestID(h)
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
