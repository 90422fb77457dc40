package adaptor

import (
	"net/http"

	"cinix-booking/internal/dto/request"
	"cinix-booking/internal/dto/response"
	"cinix-booking/internal/usecase"
	"cinix-booking/pkg/utils"

	"go.uber.org/zap"
)

type CheckoutHandler struct {
	service usecase.CheckoutService
	log     *zap.Logger
}

func NewCheckoutHandler(service usecase.CheckoutService, log *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		service: service,
		log:     log.With(zap.String("handler", "checkout")),
	}
}

// GetPaymentMethods handles GET /api/payment-methods (public)
func (h *CheckoutHandler) GetPaymentMethods(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", h.service.PaymentMethods())
}

// Summary handles POST /api/checkout/summary
func (h *CheckoutHandler) Summary(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeOrder(w, r)
	if !ok {
		return
	}

	summary, err := h.service.Summary(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "checkout summary")
		return
	}

	utils.ResponseSuccess(w, "success", summary)
}

// Pay handles POST /api/checkout/pay
func (h *CheckoutHandler) Pay(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeOrder(w, r)
	if !ok {
		return
	}

	userID, _ := utils.GetUserIDFromContext(r.Context())

	redirect, err := h.service.Pay(r.Context(), userID, req)
	if err != nil {
		handleServiceError(w, h.log, err, "checkout payment")
		return
	}

	utils.ResponseSuccess(w, "success", redirect)
}

// Simulate handles POST /api/checkout/simulate
func (h *CheckoutHandler) Simulate(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeOrder(w, r)
	if !ok {
		return
	}

	userID, _ := utils.GetUserIDFromContext(r.Context())

	outcome, err := h.service.Simulate(r.Context(), userID, req)
	if err != nil {
		handleServiceError(w, h.log, err, "simulate payment")
		return
	}

	message := "Payment successful"
	if !outcome.Persisted {
		message = "Payment successful, ticket not saved: no user"
	}

	utils.ResponseCreated(w, message, response.PurchaseResponse{
		Ticket:    response.TicketToResponse(outcome.Ticket),
		Persisted: outcome.Persisted,
	})
}

func (h *CheckoutHandler) decodeOrder(w http.ResponseWriter, r *http.Request) (*request.CheckoutRequest, bool) {
	var req request.CheckoutRequest
	if err := decodeBody(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return nil, false
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return nil, false
	}

	return &req, true
}
