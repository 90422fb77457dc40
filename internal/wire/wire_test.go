package wire

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cinix-booking/internal/backend"
	"cinix-booking/internal/clock"
	"cinix-booking/internal/data/repository"
	"cinix-booking/pkg/middleware"
	"cinix-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  map[string]any  `json:"errors"`
}

type testApp struct {
	router  http.Handler
	tickets repository.TicketRepository
	paid    []map[string]any
}

func newTestApp(t *testing.T, payStatus int, payBody string) *testApp {
	t.Helper()
	app := &testApp{}

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/studios/7/seats":
			_, _ = w.Write([]byte(`[
				{"id_seat":1,"seat_number":"B1","is_available":true},
				{"id_seat":2,"seat_number":"A2","is_available":true},
				{"id_seat":3,"seat_number":"A1","is_available":false}
			]`))
		case r.Method == http.MethodPost && r.URL.Path == "/payment":
			var body map[string]any
			_ = json.NewDecoder(r.Body).Decode(&body)
			app.paid = append(app.paid, body)
			w.WriteHeader(payStatus)
			_, _ = w.Write([]byte(payBody))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"not found"}`))
		}
	}))
	t.Cleanup(upstream.Close)

	config := &utils.Config{
		Backend: utils.BackendConfig{BaseURL: upstream.URL, Timeout: 2 * time.Second},
		Pricing: utils.PricingConfig{TicketPrice: 50000, AdminFee: 3000},
		Session: utils.SessionConfig{IdleTimeout: time.Minute},
	}

	app.tickets = repository.NewMemoryTicketRepository(zap.NewNop())
	wired := Wiring(Deps{
		Repo:    repository.NewRepository(app.tickets),
		Backend: backend.NewClient(config.Backend, zap.NewNop()),
		Clock:   clock.NewFixed(time.Date(2026, 3, 14, 19, 30, 0, 0, time.UTC)),
	}, config, zap.NewNop())
	app.router = wired.Router

	return app
}

func (a *testApp) do(t *testing.T, method, path, userID string, body any) (int, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set(middleware.UserIDHeader, userID)
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)

	var env envelope
	if rec.Header().Get("Content-Type") == "application/json" {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec.Code, env
}

func order() map[string]any {
	return map[string]any{
		"movie": map[string]any{
			"title":       "Pengabdi Setan",
			"poster_url":  "https://img.example/p.jpg",
			"schedule_id": "7",
		},
		"cinema":         "CINIX Grand Indonesia",
		"showtime":       "19:30",
		"seats":          []string{"A2", "B1"},
		"payment_method": "qris",
	}
}

func TestRouter_Health(t *testing.T) {
	app := newTestApp(t, http.StatusOK, `{}`)

	code, _ := app.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, code)

	code, _ = app.do(t, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, code)
}

func TestRouter_HealthReportsStorageFailure(t *testing.T) {
	wired := Wiring(Deps{
		Repo:    repository.NewRepository(repository.NewMemoryTicketRepository(zap.NewNop())),
		Backend: backend.NewClient(utils.BackendConfig{BaseURL: "http://127.0.0.1:0"}, zap.NewNop()),
		Health:  func(context.Context) error { return errors.New("redis down") },
	}, &utils.Config{}, zap.NewNop())

	rec := httptest.NewRecorder()
	wired.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRouter_SeatLayout(t *testing.T) {
	app := newTestApp(t, http.StatusOK, `{}`)

	code, env := app.do(t, http.MethodGet, "/api/studios/7/seats", "", nil)
	require.Equal(t, http.StatusOK, code)

	var layout struct {
		Rows []struct {
			Row   string `json:"row"`
			Seats []struct {
				SeatNumber string `json:"seat_number"`
			} `json:"seats"`
		} `json:"rows"`
		AvailableSeats int `json:"available_seats"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &layout))
	require.Len(t, layout.Rows, 2)
	assert.Equal(t, "A", layout.Rows[0].Row)
	assert.Equal(t, "A1", layout.Rows[0].Seats[0].SeatNumber)
	assert.Equal(t, "B", layout.Rows[1].Row)
	assert.Equal(t, 2, layout.AvailableSeats)

	code, env = app.do(t, http.MethodGet, "/api/studios/99/seats", "", nil)
	assert.Equal(t, http.StatusBadGateway, code)
	assert.Equal(t, "not found", env.Message)
}

func TestRouter_BookingSessionFlow(t *testing.T) {
	app := newTestApp(t, http.StatusOK, `{"payment":{"midtrans_response":{"redirect_url":"https://pay.example/y"}}}`)

	code, env := app.do(t, http.MethodPost, "/api/booking/sessions", "", map[string]string{"studio_id": "7"})
	require.Equal(t, http.StatusCreated, code)

	var session struct {
		SessionID     string   `json:"session_id"`
		SelectedSeats []string `json:"selected_seats"`
		Quote         struct {
			Total     int64  `json:"total"`
			TotalText string `json:"total_text"`
		} `json:"quote"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &session))
	base := "/api/booking/sessions/" + session.SessionID

	code, _ = app.do(t, http.MethodPost, base+"/pay", "u1", nil)
	assert.Equal(t, http.StatusBadRequest, code, "empty selection")
	assert.Empty(t, app.paid)

	code, env = app.do(t, http.MethodPost, base+"/seats/A2/toggle", "", nil)
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(env.Data, &session))
	assert.Equal(t, []string{"A2"}, session.SelectedSeats)
	assert.Equal(t, int64(50000), session.Quote.Total)

	code, env = app.do(t, http.MethodPost, base+"/pay", "u1", nil)
	require.Equal(t, http.StatusOK, code)
	var redirect struct {
		RedirectURL string `json:"redirect_url"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &redirect))
	assert.Equal(t, "https://pay.example/y", redirect.RedirectURL)

	require.Len(t, app.paid, 1)
	assert.Equal(t, "7", app.paid[0]["schedule_id"])
	assert.Equal(t, "u1", app.paid[0]["user_id"])
	assert.EqualValues(t, 50000, app.paid[0]["amount"])

	code, _ = app.do(t, http.MethodDelete, base, "", nil)
	assert.Equal(t, http.StatusOK, code)

	code, _ = app.do(t, http.MethodGet, base, "", nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestRouter_CheckoutPayBackendError(t *testing.T) {
	app := newTestApp(t, http.StatusConflict, `{"message":"Kursi sudah dipesan"}`)

	code, env := app.do(t, http.MethodPost, "/api/checkout/pay", "u1", order())

	assert.Equal(t, http.StatusBadGateway, code)
	assert.Equal(t, "Kursi sudah dipesan", env.Message)
	require.Len(t, app.paid, 1)
	assert.EqualValues(t, 103000, app.paid[0]["amount"])
}

func TestRouter_CheckoutPayMissingRedirect(t *testing.T) {
	app := newTestApp(t, http.StatusOK, `{"payment":{}}`)

	code, env := app.do(t, http.MethodPost, "/api/checkout/pay", "u1", order())

	assert.Equal(t, http.StatusBadGateway, code)
	assert.Equal(t, "could not obtain payment link", env.Message)
}

func TestRouter_CheckoutValidation(t *testing.T) {
	app := newTestApp(t, http.StatusOK, `{}`)
	body := order()
	body["payment_method"] = "ovo"
	body["seats"] = []string{}

	code, env := app.do(t, http.MethodPost, "/api/checkout/summary", "", body)

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, env.Errors, "seats")
	assert.Contains(t, env.Errors, "payment_method")
}

func TestRouter_SimulateAndListTickets(t *testing.T) {
	app := newTestApp(t, http.StatusOK, `{}`)

	code, _ := app.do(t, http.MethodGet, "/api/user/tickets", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	code, env := app.do(t, http.MethodPost, "/api/checkout/simulate", "", order())
	require.Equal(t, http.StatusCreated, code)
	var outcome struct {
		Persisted bool `json:"persisted"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &outcome))
	assert.False(t, outcome.Persisted)

	for range 2 {
		code, env = app.do(t, http.MethodPost, "/api/checkout/simulate", "u1", order())
		require.Equal(t, http.StatusCreated, code)
		require.NoError(t, json.Unmarshal(env.Data, &outcome))
		assert.True(t, outcome.Persisted)
	}

	code, env = app.do(t, http.MethodGet, "/api/user/tickets?page=1&per_page=10", "u1", nil)
	require.Equal(t, http.StatusOK, code)

	var page struct {
		Data []struct {
			Seats       []string `json:"seats"`
			TotalAmount int64    `json:"total_amount"`
			Status      string   `json:"status"`
		} `json:"data"`
		Pagination struct {
			Total int64 `json:"total"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Equal(t, int64(2), page.Pagination.Total)
	require.Len(t, page.Data, 2)
	assert.Equal(t, []string{"A2", "B1"}, page.Data[0].Seats)
	assert.Equal(t, int64(103000), page.Data[0].TotalAmount)
	assert.Equal(t, "Paid", page.Data[0].Status)
}

func TestRouter_PaymentMethods(t *testing.T) {
	app := newTestApp(t, http.StatusOK, `{}`)

	code, env := app.do(t, http.MethodGet, "/api/payment-methods", "", nil)

	require.Equal(t, http.StatusOK, code)
	var methods []struct {
		ID       string `json:"id"`
		Selected bool   `json:"selected"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &methods))
	require.NotEmpty(t, methods)
	assert.Equal(t, "qris", methods[0].ID)
	assert.True(t, methods[0].Selected)
}
