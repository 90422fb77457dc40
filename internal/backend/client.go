package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"cinix-booking/internal/data/entity"
	"cinix-booking/internal/domain"
	"cinix-booking/pkg/metrics"
	"cinix-booking/pkg/utils"

	"go.uber.org/zap"
)

const (
	endpointSeats   = "seats"
	endpointPayment = "payment"

	genericSeatsMessage   = "failed to fetch seats"
	genericPaymentMessage = "failed to process payment"

	maxBodyBytes = 1 << 20
)

// APIError is a non-2xx answer from the backend.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// Client talks to the CINIX backend. Calls carry the caller's credentials
// (bearer token and cookies taken from the request context).
type Client struct {
	baseURL string
	hc      *http.Client
	log     *zap.Logger
}

func NewClient(config utils.BackendConfig, log *zap.Logger) *Client {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &Client{
		baseURL: strings.TrimRight(config.BaseURL, "/"),
		hc:      &http.Client{Timeout: timeout},
		log:     log.With(zap.String("client", "cinix_backend")),
	}
}

// FetchSeats handles GET /studios/{studioId}/seats
func (c *Client) FetchSeats(ctx context.Context, studioID string) ([]entity.Seat, error) {
	path := "/studios/" + url.PathEscape(studioID) + "/seats"

	body, err := c.do(ctx, endpointSeats, http.MethodGet, path, nil, genericSeatsMessage)
	if err != nil {
		return nil, err
	}

	seats, err := decodeSeats(body)
	if err != nil {
		c.log.Error("Failed to decode seat layout",
			zap.Error(err),
			zap.String("studio_id", studioID),
		)
		return nil, fmt.Errorf("decode seats for studio %s: %w", studioID, err)
	}

	return seats, nil
}

// SubmitPayment handles POST /payment and returns the payment page URL.
func (c *Client) SubmitPayment(ctx context.Context, payload entity.BookingPayload) (string, error) {
	reqBody, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode payment payload: %w", err)
	}

	body, err := c.do(ctx, endpointPayment, http.MethodPost, "/payment", reqBody, genericPaymentMessage)
	if err != nil {
		return "", err
	}

	var resp paymentResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		c.log.Warn("Payment response is not JSON", zap.Error(err))
		return "", domain.ErrMissingRedirect
	}

	redirectURL := resp.redirectURL()
	if redirectURL == "" {
		return "", domain.ErrMissingRedirect
	}

	c.log.Info("Payment link obtained",
		zap.String("schedule_id", payload.ScheduleID),
		zap.Int("seat_count", len(payload.Seats)),
		zap.Int64("amount", payload.Amount),
	)

	return redirectURL, nil
}

func (c *Client) do(ctx context.Context, endpoint, method, path string, body []byte, fallbackMsg string) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", endpoint, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	if token, ok := utils.GetTokenFromContext(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if cookie, ok := utils.GetCookieFromContext(ctx); ok {
		req.Header.Set("Cookie", cookie)
	}

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		metrics.ObserveBackendCall(endpoint, "transport_error", time.Since(start))
		c.log.Error("Backend request failed",
			zap.Error(err),
			zap.String("endpoint", endpoint),
			zap.String("path", path),
		)
		return nil, fmt.Errorf("%s request: %w", endpoint, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		metrics.ObserveBackendCall(endpoint, "read_error", time.Since(start))
		return nil, fmt.Errorf("read %s response: %w", endpoint, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.ObserveBackendCall(endpoint, "http_error", time.Since(start))
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: errorMessage(respBody, fallbackMsg)}
		c.log.Warn("Backend returned error",
			zap.String("endpoint", endpoint),
			zap.Int("status", resp.StatusCode),
			zap.String("message", apiErr.Message),
		)
		return nil, apiErr
	}

	metrics.ObserveBackendCall(endpoint, "ok", time.Since(start))
	return respBody, nil
}

type redirectHolder struct {
	RedirectURL string `json:"redirect_url"`
}

// paymentResponse covers both shapes the backend has been seen to return.
type paymentResponse struct {
	Snap    *redirectHolder `json:"snap"`
	Payment *struct {
		MidtransResponse *redirectHolder `json:"midtrans_response"`
	} `json:"payment"`
}

// redirectURL checks snap.redirect_url first, then payment.midtrans_response.redirect_url.
func (r paymentResponse) redirectURL() string {
	if r.Snap != nil && r.Snap.RedirectURL != "" {
		return r.Snap.RedirectURL
	}
	if r.Payment != nil && r.Payment.MidtransResponse != nil {
		return r.Payment.MidtransResponse.RedirectURL
	}
	return ""
}

func decodeSeats(body []byte) ([]entity.Seat, error) {
	var seats []entity.Seat
	if err := json.Unmarshal(body, &seats); err == nil {
		return seats, nil
	}

	// beberapa deployment membungkus array di dalam "data"
	var wrapped struct {
		Data []entity.Seat `json:"data"`
	}
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, err
	}
	if wrapped.Data == nil {
		return nil, errors.New("response holds no seat array")
	}
	return wrapped.Data, nil
}

func errorMessage(body []byte, fallback string) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && strings.TrimSpace(payload.Message) != "" {
		return payload.Message
	}
	return fallback
}
