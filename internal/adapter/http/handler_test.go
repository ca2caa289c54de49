package httpadapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dha-marketplace/internal/adapter/memory"
	"dha-marketplace/internal/adapter/usecase"
	"dha-marketplace/internal/config/configs"
	"dha-marketplace/internal/core/domain"
	"dha-marketplace/internal/core/port"
	"dha-marketplace/internal/core/port/mocks"
)

type testEnv struct {
	handler *Handler
	backend *mocks.MockBackend
	repo    *memory.CampaignRepository
}

func newTestEnv(t *testing.T, opts Options) *testEnv {
	t.Helper()
	logger := slog.New(slog.DiscardHandler)
	backend := mocks.NewMockBackend(t)
	repo := memory.NewCampaignRepository()
	svc := Services{
		Wizard:    usecase.NewWizardUseCase(memory.NewDraftStore(), repo, nil, nil, logger),
		Campaigns: usecase.NewCampaignUseCase(repo),
		Bookings:  usecase.NewBookingUseCase(backend, nil),
		Plots:     usecase.NewPlotUseCase(backend),
		Launch:    usecase.NewLaunchUseCase(time.Now().Add(time.Hour), nil, logger, nil),
		Backend:   backend,
	}
	return &testEnv{handler: NewHandler(svc, logger, opts), backend: backend, repo: repo}
}

func (e *testEnv) do(t *testing.T, method, target string, body io.Reader, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	e.handler.Router().ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func authHeader() http.Header {
	return http.Header{"Authorization": {"Bearer token"}}
}

func TestCustomerBookingInfoChecksIDFirst(t *testing.T) {
	env := newTestEnv(t, Options{})

	rec := env.do(t, http.MethodGet, "/api/customer-booking-info", nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Reserve booking ID is required", decodeBody[messageBody](t, rec).Message)

	rec = env.do(t, http.MethodGet, "/api/customer-booking-info?reserve_booking_id=5", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, msgAuthRequired, decodeBody[messageBody](t, rec).Message)

	env.backend.AssertNotCalled(t, "CustomerBookingInfo", mock.Anything, mock.Anything, mock.Anything)
}

func TestCustomerBookingInfoRelaysBody(t *testing.T) {
	env := newTestEnv(t, Options{})
	env.backend.EXPECT().
		CustomerBookingInfo(mock.Anything, "Bearer token", "5").
		Return(json.RawMessage(`{"data":{"id":5,"status":"Pending"}}`), nil)

	rec := env.do(t, http.MethodGet, "/api/customer-booking-info?reserve_booking_id=5", nil, authHeader())
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"data":{"id":5,"status":"Pending"}}`, rec.Body.String())
}

func TestProxyErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{
			name:    "upstream message",
			err:     &port.UpstreamError{Status: http.StatusNotFound, Message: "Invalid QR code"},
			status:  http.StatusNotFound,
			message: "Invalid QR code",
		},
		{
			name:    "upstream without message",
			err:     &port.UpstreamError{Status: http.StatusBadGateway},
			status:  http.StatusBadGateway,
			message: "QR code verification failed",
		},
		{
			name:    "transport",
			err:     errors.New("dial tcp: connection refused"),
			status:  http.StatusInternalServerError,
			message: "An error occurred while verifying QR code",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, Options{})
			env.backend.EXPECT().VerifyPlotLetter(mock.Anything, "abc").Return(nil, tt.err)

			rec := env.do(t, http.MethodGet, "/api/verify-plot-confirmation-letter?qr=abc", nil, nil)
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.message, decodeBody[messageBody](t, rec).Message)
		})
	}
}

func TestVerifyPlotLetterRequiresQR(t *testing.T) {
	env := newTestEnv(t, Options{})
	rec := env.do(t, http.MethodGet, "/api/verify-plot-confirmation-letter", nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "QR code parameter is required", decodeBody[messageBody](t, rec).Message)
}

func TestRateLimit(t *testing.T) {
	env := newTestEnv(t, Options{RateLimit: NewClientLimiter(configs.RateLimit{RPS: 1, Burst: 1, TTL: time.Minute})})
	env.backend.EXPECT().VerifyPlotLetter(mock.Anything, "abc").Return(json.RawMessage(`{}`), nil).Once()

	rec := env.do(t, http.MethodGet, "/api/verify-plot-confirmation-letter?qr=abc", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/verify-plot-confirmation-letter?qr=abc", nil, nil)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func pngUpload(t *testing.T, field, name string, w, h int) (io.Reader, http.Header) {
	t.Helper()
	var img bytes.Buffer
	require.NoError(t, png.Encode(&img, image.NewRGBA(image.Rect(0, 0, w, h))))

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile(field, name)
	require.NoError(t, err)
	_, err = part.Write(img.Bytes())
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &body, http.Header{"Content-Type": {mw.FormDataContentType()}}
}

func TestWizardFlow(t *testing.T) {
	env := newTestEnv(t, Options{})

	rec := env.do(t, http.MethodPost, "/api/v1/wizard/", nil, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	v := decodeBody[port.WizardView](t, rec)
	require.NotEmpty(t, v.SessionID)
	assert.True(t, v.Wizard.Open)
	base := "/api/v1/wizard/" + v.SessionID

	rec = env.do(t, http.MethodPut, base+"/format", jsonBody(t, map[string]string{"adType": "square"}), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.AdTypeSquare, decodeBody[port.WizardView](t, rec).Wizard.AdType)

	rec = env.do(t, http.MethodPut, base+"/format", jsonBody(t, map[string]string{"adType": "banner"}), nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPut, base+"/step/3", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.StepContent, decodeBody[port.WizardView](t, rec).Wizard.Step)

	rec = env.do(t, http.MethodPost, base+"/next", nil, nil)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decodeBody[messageBody](t, rec)
	assert.Equal(t, msgValidationFailed, body.Message)
	assert.Equal(t, "Please enter an ad title", body.Errors["adTitle"])

	upload, hdr := pngUpload(t, imageField, "ad.png", 300, 300)
	rec = env.do(t, http.MethodPost, base+"/image", upload, hdr)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "ad.png", decodeBody[port.WizardView](t, rec).Wizard.Form.UploadedImage)

	rec = env.do(t, http.MethodPut, base+"/content", jsonBody(t, domain.FormData{
		AdTitle:       "Summer Sale",
		CompanyName:   "Acme",
		LinkRedirect:  "https://acme.pk",
		Email:         "ads@acme.pk",
		ContactNumber: "+92 300 1234567",
	}), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodPost, base+"/next", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, domain.StepReview, decodeBody[port.WizardView](t, rec).Wizard.Step)

	rec = env.do(t, http.MethodDelete, base+"/", nil, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestWizardErrors(t *testing.T) {
	env := newTestEnv(t, Options{})

	rec := env.do(t, http.MethodGet, "/api/v1/wizard/missing/", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/v1/wizard/", nil, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	base := "/api/v1/wizard/" + decodeBody[port.WizardView](t, rec).SessionID

	rec = env.do(t, http.MethodPut, base+"/step/9", nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPut, base+"/step/x", nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPut, base+"/content", strings.NewReader("{"), nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, msgInvalidJSON, decodeBody[messageBody](t, rec).Message)

	// vertical artwork must be 300x600
	upload, hdr := pngUpload(t, imageField, "ad.png", 300, 300)
	rec = env.do(t, http.MethodPost, base+"/image", upload, hdr)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var garbage bytes.Buffer
	mw := multipart.NewWriter(&garbage)
	part, err := mw.CreateFormFile(imageField, "ad.png")
	require.NoError(t, err)
	_, _ = part.Write([]byte("not an image"))
	require.NoError(t, mw.Close())
	rec = env.do(t, http.MethodPost, base+"/image", &garbage, http.Header{"Content-Type": {mw.FormDataContentType()}})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "Please upload a valid image file", decodeBody[messageBody](t, rec).Errors["uploadedImage"])
}

func TestAdminRoutesRequireRole(t *testing.T) {
	env := newTestEnv(t, Options{})

	rec := env.do(t, http.MethodGet, "/api/v1/admin/ads", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	env.backend.EXPECT().Profile(mock.Anything, "Bearer token").Return(&domain.Profile{Role: 0}, nil).Once()
	rec = env.do(t, http.MethodGet, "/api/v1/admin/ads", nil, authHeader())
	assert.Equal(t, http.StatusForbidden, rec.Code)

	env.backend.EXPECT().Profile(mock.Anything, "Bearer token").Return(&domain.Profile{Role: 1}, nil).Once()
	rec = env.do(t, http.MethodGet, "/api/v1/admin/ads?limit=5", nil, authHeader())
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestAdminGetCampaign(t *testing.T) {
	env := newTestEnv(t, Options{})
	require.NoError(t, env.repo.CreatePending(context.Background(), domain.PendingCampaign{CampaignID: "AD-1", Submission: domain.Submission{FormData: domain.FormData{AdTitle: "Sale"}}}))
	env.backend.EXPECT().Profile(mock.Anything, mock.Anything).Return(&domain.Profile{Role: 2}, nil)

	rec := env.do(t, http.MethodGet, "/api/v1/admin/ads/AD-1", nil, authHeader())
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Sale", decodeBody[domain.PendingCampaign](t, rec).AdTitle)

	rec = env.do(t, http.MethodGet, "/api/v1/admin/ads/AD-2", nil, authHeader())
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func csvUpload(t *testing.T, content string, fields map[string]string) (io.Reader, http.Header) {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile(plotFileField, "plots.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())
	h := authHeader()
	h.Set("Content-Type", mw.FormDataContentType())
	return &body, h
}

func TestPlotImportHeaderGate(t *testing.T) {
	env := newTestEnv(t, Options{})
	env.backend.EXPECT().Profile(mock.Anything, mock.Anything).Return(&domain.Profile{Role: 1}, nil)

	body, hdr := csvUpload(t, "gid,phase\n1,2\n", map[string]string{plotEventField: "inventory"})
	rec := env.do(t, http.MethodPost, "/api/v1/admin/plots/import", body, hdr)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	gate := decodeBody[headerGateBody](t, rec)
	assert.Equal(t, "CSV format validation failed", gate.Message)
	require.Len(t, gate.ValidationErrors, 1)
	assert.True(t, strings.HasPrefix(gate.ValidationErrors[0], "Missing required columns: sector"))

	env.backend.AssertNotCalled(t, "ImportPlots", mock.Anything, mock.Anything, mock.Anything)
}

func TestPlotImportRequiresEvent(t *testing.T) {
	env := newTestEnv(t, Options{})
	env.backend.EXPECT().Profile(mock.Anything, mock.Anything).Return(&domain.Profile{Role: 1}, nil)

	body, hdr := csvUpload(t, string(domain.PlotTemplate()), nil)
	rec := env.do(t, http.MethodPost, "/api/v1/admin/plots/import", body, hdr)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Please select an event or DHA MarketPlace inventory before uploading plots", decodeBody[headerGateBody](t, rec).Message)
}

func TestPlotImportForwards(t *testing.T) {
	env := newTestEnv(t, Options{})
	env.backend.EXPECT().Profile(mock.Anything, mock.Anything).Return(&domain.Profile{Role: 1}, nil)
	env.backend.EXPECT().
		ImportPlots(mock.Anything, "Bearer token", mock.MatchedBy(func(f port.PlotFile) bool {
			return f.EventID != nil && *f.EventID == 12
		})).
		Return(&port.ImportResult{Success: true, Message: "Plots imported"}, nil)

	body, hdr := csvUpload(t, string(domain.PlotTemplate()), map[string]string{plotEventField: "12"})
	rec := env.do(t, http.MethodPost, "/api/v1/admin/plots/import", body, hdr)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	sum := decodeBody[port.ImportSummary](t, rec)
	assert.Equal(t, 1, sum.Total)
	assert.Equal(t, "Plots imported", sum.Message)
}

func TestParseEventID(t *testing.T) {
	id, err := parseEventID("inventory")
	assert.NoError(t, err)
	assert.Nil(t, id)

	id, err = parseEventID(" 7 ")
	require.NoError(t, err)
	assert.Equal(t, int64(7), *id)

	_, err = parseEventID("")
	assert.Error(t, err)
	_, err = parseEventID("-1")
	assert.Error(t, err)
}

func TestUpdateBidAmountParsing(t *testing.T) {
	tests := map[string]int64{
		`2500000`:        2_500_000,
		`"25,00,000"`:    2_500_000,
		`2500000.75`:     2_500_000,
		`"PKR 1,00,000"`: 100_000,
		`""`:             0,
		`null`:           0,
	}
	for raw, want := range tests {
		got, err := parseAmount(json.RawMessage(raw))
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}

	for _, raw := range []string{`1e6`, `2.5E6`, `-500000`, `"-500000"`, `" -5,00,000"`, `true`} {
		_, err := parseAmount(json.RawMessage(raw))
		assert.Error(t, err, raw)
	}
}

func TestUpdateBidValidation(t *testing.T) {
	env := newTestEnv(t, Options{})
	env.backend.EXPECT().Profile(mock.Anything, "Bearer token").Return(&domain.Profile{
		ReserveBookings: []domain.ReserveBooking{{ID: 3, BidAmount: 1_000_000, RankNo: 2, Status: domain.BookingPending}},
	}, nil)

	rec := env.do(t, http.MethodPost, "/api/v1/bookings/3/bid", strings.NewReader(`{"bid_amount":"10,50,000"}`), authHeader())
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "Bid amount must be in multiples of 1 lac (100,000)", decodeBody[messageBody](t, rec).Errors["bid_amount"])

	rec = env.do(t, http.MethodPost, "/api/v1/bookings/abc/bid", strings.NewReader(`{}`), authHeader())
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/v1/bookings/3/bid", strings.NewReader(`{"bid_amount":1e6}`), authHeader())
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid bid amount", decodeBody[messageBody](t, rec).Message)
}

func TestPricingAndLaunch(t *testing.T) {
	env := newTestEnv(t, Options{})

	rec := env.do(t, http.MethodGet, "/api/v1/pricing", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	p := decodeBody[pricingResponse](t, rec)
	assert.Len(t, p.Formats, 5)
	assert.Len(t, p.Prices, len(p.Formats)*len(p.Durations))

	rec = env.do(t, http.MethodGet, "/api/v1/launch", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decodeBody[port.LaunchStatus](t, rec).Live)
}

func TestWriteErrorStatus(t *testing.T) {
	h := &Handler{logger: slog.New(slog.DiscardHandler)}
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "duplicate campaign", err: fmt.Errorf("create pending campaign: %w", port.ErrDuplicateCampaign), status: http.StatusConflict},
		{name: "campaign not found", err: port.ErrCampaignNotFound, status: http.StatusNotFound},
		{name: "session not found", err: port.ErrSessionNotFound, status: http.StatusNotFound},
		{name: "bad step", err: fmt.Errorf("%w: 9", domain.ErrInvalidStep), status: http.StatusBadRequest},
		{name: "field errors", err: domain.FieldErrors{"email": "bad"}, status: http.StatusUnprocessableEntity},
		{name: "import failed", err: &port.ImportFailedError{}, status: http.StatusBadGateway},
		{name: "internal", err: errors.New("boom"), status: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.writeError(rec, httptest.NewRequest(http.MethodGet, "/", nil), tt.err, "fallback")
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestClientLimiter(t *testing.T) {
	assert.Nil(t, NewClientLimiter(configs.RateLimit{RPS: 0, Burst: 5}))

	now := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)
	l := NewClientLimiter(configs.RateLimit{RPS: 1, Burst: 2, TTL: time.Minute})
	l.now = func() time.Time { return now }

	assert.True(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.1"))
	assert.False(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.2"), "buckets are per address")

	now = now.Add(time.Second)
	assert.True(t, l.Allow("10.0.0.1"), "one token refilled")
	assert.Equal(t, 2, l.Tracked())

	// the first call after an idle period sweeps every stale bucket
	now = now.Add(2 * time.Minute)
	assert.True(t, l.Allow("10.0.0.3"))
	assert.Equal(t, 1, l.Tracked())
}
