package adaptor

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"cinix-booking/internal/backend"
	"cinix-booking/internal/domain"
	"cinix-booking/internal/usecase"
	"cinix-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Booking  *BookingHandler
	Checkout *CheckoutHandler
	Ticket   *TicketHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Booking:  NewBookingHandler(service.Booking, log),
		Checkout: NewCheckoutHandler(service.Checkout, log),
		Ticket:   NewTicketHandler(service.Ticket, log),
	}
}

// decodeBody reads a JSON body into dst. An empty body leaves dst untouched.
func decodeBody(r *http.Request, dst any) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// handleServiceError maps use case errors onto the response envelope.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var apiErr *backend.APIError

	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrEmptySelection),
		errors.Is(err, domain.ErrMissingSchedule):
		log.Warn(operation+" rejected",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, domain.ErrUserRequired):
		log.Warn(operation+" failed - no user",
			zap.String("operation", operation))
		utils.ResponseUnauthorized(w, "Authentication required")

	case errors.Is(err, domain.ErrSessionNotFound):
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, domain.ErrSubmitInProgress),
		errors.Is(err, domain.ErrStaleLoad):
		log.Warn(operation+" conflict",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, err.Error())

	case errors.Is(err, domain.ErrMissingRedirect):
		log.Warn(operation+" failed - no payment link",
			zap.String("operation", operation))
		utils.ResponseBadGateway(w, domain.ErrMissingRedirect.Error())

	case errors.As(err, &apiErr):
		log.Warn(operation+" failed - backend error",
			zap.Int("backend_status", apiErr.StatusCode),
			zap.String("backend_message", apiErr.Message),
			zap.String("operation", operation))
		utils.ResponseBadGateway(w, apiErr.Message)

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
