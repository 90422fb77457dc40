package wire

import (
	"cinix-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCheckout(r chi.Router, checkoutHandler *adaptor.CheckoutHandler) {
	// GET /api/payment-methods - List available payment methods (public)
	r.Get("/api/payment-methods", checkoutHandler.GetPaymentMethods)

	r.Route("/api/checkout", func(r chi.Router) {
		r.Post("/summary", checkoutHandler.Summary)
		r.Post("/pay", checkoutHandler.Pay)

		// Simulated payment; ticket is only saved when X-User-ID is present
		r.Post("/simulate", checkoutHandler.Simulate)
	})
}
