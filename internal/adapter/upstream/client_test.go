package upstream

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dha-marketplace/internal/config/configs"
	"dha-marketplace/internal/core/port"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	base, err := url.Parse(srv.URL)
	require.NoError(t, err)
	return NewClient(configs.Upstream{
		BaseURL:          *base,
		BookingInfoPath:  "/api/customer-booking-info",
		VerifyLetterPath: "/api/verify-plot-confirmation-letter",
		ProfilePath:      "/api/user-profile",
		UpdateBidPath:    "/api/update-bid-amount",
		ImportPlotsPath:  "/api/import-plots",
		EventsPath:       "/api/events",
	}, srv.Client())
}

func TestParseError(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		message  string
		messages []string
		field    string
	}{
		{name: "message", body: `{"message":"Booking not found"}`, message: "Booking not found"},
		{name: "error key", body: `{"error":"Invalid QR"}`, message: "Invalid QR"},
		{
			name:     "field lists",
			body:     `{"message":"","errors":{"bid_amount":["Too low"],"amount":["Required"]}}`,
			messages: []string{"Required", "Too low"},
			field:    "Too low",
		},
		{
			name:     "flat fields",
			body:     `{"errors":{"bid_amount":"Too low"}}`,
			messages: []string{"Too low"},
			field:    "Too low",
		},
		{name: "error list", body: `{"errors":["a","b"]}`, messages: []string{"a", "b"}},
		{name: "bare list", body: `["x","y"]`, messages: []string{"x", "y"}},
		{name: "html", body: `<html>502</html>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := ParseError(http.StatusUnprocessableEntity, []byte(tt.body))
			assert.Equal(t, http.StatusUnprocessableEntity, e.Status)
			assert.Equal(t, tt.message, e.Message)
			assert.Equal(t, tt.messages, e.Messages)
			assert.Equal(t, tt.field, e.FieldMessage("bid_amount"))
		})
	}
}

func TestCustomerBookingInfoForwardsAuthorization(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/customer-booking-info", r.URL.Path)
		assert.Equal(t, "42", r.URL.Query().Get("reserve_booking_id"))
		assert.Equal(t, "Bearer abc", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"data":{"id":42}}`))
	})

	body, err := c.CustomerBookingInfo(context.Background(), "Bearer abc", "42")
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":{"id":42}}`, string(body))
}

func TestVerifyPlotLetterRelaysStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.Equal(t, "abc+def", r.URL.Query().Get("qr"))
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Letter not found"}`))
	})

	_, err := c.VerifyPlotLetter(context.Background(), "abc+def")
	var upErr *port.UpstreamError
	require.ErrorAs(t, err, &upErr)
	assert.Equal(t, http.StatusNotFound, upErr.Status)
	assert.Equal(t, "Letter not found", upErr.Message)
}

func TestProfileUnwrapsData(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"name":"Ali","role":1,"reserve_bookings":[{"id":7,"bid_amount":"2500000.00","rank_no":2,"status":"Pending","challan_expiry_time":"2025-07-09 12:15:00"}]}}`))
	})

	p, err := c.Profile(context.Background(), "Bearer t")
	require.NoError(t, err)
	assert.Equal(t, "Ali", p.Name)
	assert.True(t, p.IsAdmin())
	require.Len(t, p.ReserveBookings, 1)
	assert.EqualValues(t, 2_500_000, p.ReserveBookings[0].BidAmount)
	require.NotNil(t, p.ReserveBookings[0].ChallanExpiryTime)
	assert.Equal(t, 15, p.ReserveBookings[0].ChallanExpiryTime.Minute())
}

func TestUpdateBidPayload(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var body map[string]int64
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]int64{"reserve_booking_id": 7, "bid_amount": 2_600_000}, body)
		_, _ = w.Write([]byte(`{"success":true}`))
	})

	_, err := c.UpdateBid(context.Background(), "Bearer t", 7, 2_600_000)
	require.NoError(t, err)
}

func TestImportPlotsMultipart(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer t", r.Header.Get("Authorization"))
		assert.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data"))
		f, fh, err := r.FormFile("file")
		if !assert.NoError(t, err) {
			return
		}
		defer f.Close()
		data, _ := io.ReadAll(f)
		assert.Equal(t, "plots.csv", fh.Filename)
		assert.Equal(t, "a,b\n", string(data))
		assert.Equal(t, "3", r.FormValue("event_id"))
		_, _ = w.Write([]byte(`{"success":"true","data":{"imported":5,"failed":0,"import_id":"abc"}}`))
	})

	id := int64(3)
	res, err := c.ImportPlots(context.Background(), "Bearer t", port.PlotFile{
		Name:    "plots.csv",
		Content: strings.NewReader("a,b\n"),
		EventID: &id,
	})
	require.NoError(t, err)
	assert.True(t, bool(res.Success))
	assert.Equal(t, 5, res.Data.Imported)
}

func TestImportPlotsInventoryOmitsEvent(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if !assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			return
		}
		_, ok := r.MultipartForm.Value["event_id"]
		assert.False(t, ok)
		_, _ = w.Write([]byte(`{"success":true}`))
	})

	_, err := c.ImportPlots(context.Background(), "Bearer t", port.PlotFile{Name: "p.csv", Content: strings.NewReader("x")})
	require.NoError(t, err)
}

func TestEventsEnvelopes(t *testing.T) {
	for _, body := range []string{
		`{"data":[{"id":1,"title":"Summer Sale"}]}`,
		`{"events":[{"id":1,"title":"Summer Sale"}]}`,
	} {
		c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(body))
		})
		events, err := c.Events(context.Background(), "Bearer t")
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, "Summer Sale", events[0].Title)
	}

	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})
	events, err := c.Events(context.Background(), "Bearer t")
	require.NoError(t, err)
	assert.Empty(t, events)
	assert.NotNil(t, events)
}

func TestCanceledContext(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.VerifyPlotLetter(ctx, "q")
	assert.ErrorIs(t, err, context.Canceled)
}
