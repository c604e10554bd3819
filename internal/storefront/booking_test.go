package storefront

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-travel-agency/internal/api"
	"go-travel-agency/internal/config"
	"go-travel-agency/internal/model"
	"go-travel-agency/internal/notify"
	"go-travel-agency/internal/session"
)

func newClient(t *testing.T, handler http.Handler) *api.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return api.New(config.APIConfig{BaseURL: srv.URL, Timeout: 5 * time.Second}, session.NewMemoryStore(), nil)
}

func testTrips() []model.Trip {
	return []model.Trip{
		{ID: "t1", Title: "Island Hop", OriginalPrice: decimal.NewFromInt(250), DiscountPercent: decimal.NewFromInt(20)},
	}
}

func validBooking() BookingRequest {
	return BookingRequest{
		Email:           "jane@example.com",
		Name:            "Jane Roe",
		MobileNo:        "123456789",
		Country:         "Portugal",
		TravelType:      "t1",
		TravelStartDate: "2026-09-01",
		TravelEndDate:   "2026-09-10",
		AdultNum:        2,
		ChildNum:        1,
	}
}

func TestBookingComputesTravelersAndAmount(t *testing.T) {
	var body []byte
	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ = io.ReadAll(r.Body)
		w.WriteHeader(201)
		w.Write([]byte(`{"data":{"id":"bk1"}}`))
	}))
	rec := &notify.Recorder{}
	form := NewBookingForm(client, rec, testTrips())

	saved, err := form.Submit(context.Background(), validBooking())
	require.NoError(t, err)
	assert.Equal(t, "bk1", saved.ID)

	var payload struct {
		NumTravelers int    `json:"numTravelers"`
		TotalAmount  string `json:"totalAmount"`
	}
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.Equal(t, 3, payload.NumTravelers)
	// 250 at 20% off is 200 per traveler
	assert.Equal(t, "600.00", payload.TotalAmount)
	require.Len(t, rec.Successes, 1)
}

func TestBookingRejectsEndBeforeStart(t *testing.T) {
	form := NewBookingForm(nil, &notify.Recorder{}, testTrips())

	req := validBooking()
	req.TravelStartDate = "2026-09-10"
	req.TravelEndDate = "2026-09-01"
	_, err := form.Submit(context.Background(), req)
	assert.ErrorIs(t, err, ErrEndBeforeStart)
}

func TestBookingValidation(t *testing.T) {
	form := NewBookingForm(nil, &notify.Recorder{}, testTrips())

	req := validBooking()
	req.MobileNo = "123" // too short
	_, err := form.Submit(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mobile_digits")

	req = validBooking()
	req.AdultNum = 0
	_, err = form.Submit(context.Background(), req)
	require.Error(t, err)

	req = validBooking()
	req.TravelType = "nope"
	_, err = form.Submit(context.Background(), req)
	assert.ErrorIs(t, err, ErrUnknownTravelType)
}

func TestCatalogFetch(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/trips", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"data": testTrips()})
	})
	mux.HandleFunc("/countries", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]model.Country{{Name: "Portugal", Code: "PT"}})
	})
	catalog := NewCatalog(newClient(t, mux))

	trips, err := catalog.Trips(context.Background())
	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, "Island Hop", trips[0].Title)

	countries, err := catalog.Countries(context.Background())
	require.NoError(t, err)
	require.Len(t, countries, 1)
	assert.Equal(t, "PT", countries[0].Code)
}
