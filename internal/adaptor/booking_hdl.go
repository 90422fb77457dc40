package adaptor

import (
	"net/http"

	"cinix-booking/internal/dto/request"
	"cinix-booking/internal/usecase"
	"cinix-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// GetSeatLayout handles GET /api/studios/{studioId}/seats
func (h *BookingHandler) GetSeatLayout(w http.ResponseWriter, r *http.Request) {
	studioID := chi.URLParam(r, "studioId")
	if studioID == "" {
		utils.ResponseBadRequest(w, "Studio ID is required", nil)
		return
	}

	layout, err := h.service.GetSeatLayout(r.Context(), studioID)
	if err != nil {
		handleServiceError(w, h.log, err, "get seat layout")
		return
	}

	utils.ResponseSuccess(w, "success", layout)
}

// OpenSession handles POST /api/booking/sessions
func (h *BookingHandler) OpenSession(w http.ResponseWriter, r *http.Request) {
	var req request.OpenSessionRequest
	if err := decodeBody(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	session, err := h.service.OpenSession(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "open booking session")
		return
	}

	utils.ResponseCreated(w, "success", session)
}

// GetSession handles GET /api/booking/sessions/{sessionId}
func (h *BookingHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.service.GetSession(r.Context(), chi.URLParam(r, "sessionId"))
	if err != nil {
		handleServiceError(w, h.log, err, "get booking session")
		return
	}

	utils.ResponseSuccess(w, "success", session)
}

// ToggleSeat handles POST /api/booking/sessions/{sessionId}/seats/{seatNumber}/toggle
func (h *BookingHandler) ToggleSeat(w http.ResponseWriter, r *http.Request) {
	seatNumber := chi.URLParam(r, "seatNumber")
	if seatNumber == "" {
		utils.ResponseBadRequest(w, "Seat number is required", nil)
		return
	}

	session, err := h.service.ToggleSeat(r.Context(), chi.URLParam(r, "sessionId"), seatNumber)
	if err != nil {
		handleServiceError(w, h.log, err, "toggle seat")
		return
	}

	utils.ResponseSuccess(w, "success", session)
}

// ReloadSession handles POST /api/booking/sessions/{sessionId}/reload
func (h *BookingHandler) ReloadSession(w http.ResponseWriter, r *http.Request) {
	var req request.ReloadSessionRequest
	if err := decodeBody(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	session, err := h.service.ReloadSession(r.Context(), chi.URLParam(r, "sessionId"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "reload booking session")
		return
	}

	utils.ResponseSuccess(w, "success", session)
}

// SubmitSession handles POST /api/booking/sessions/{sessionId}/pay
func (h *BookingHandler) SubmitSession(w http.ResponseWriter, r *http.Request) {
	// user id opsional, backend boleh menerima tanpa user
	userID, _ := utils.GetUserIDFromContext(r.Context())

	redirect, err := h.service.SubmitSession(r.Context(), chi.URLParam(r, "sessionId"), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "submit booking")
		return
	}

	utils.ResponseSuccess(w, "success", redirect)
}

// CloseSession handles DELETE /api/booking/sessions/{sessionId}
func (h *BookingHandler) CloseSession(w http.ResponseWriter, r *http.Request) {
	if err := h.service.CloseSession(r.Context(), chi.URLParam(r, "sessionId")); err != nil {
		handleServiceError(w, h.log, err, "close booking session")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
