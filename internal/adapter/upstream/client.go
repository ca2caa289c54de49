package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"sort"
	"strconv"

	"dha-marketplace/internal/config/configs"
	"dha-marketplace/internal/core/domain"
	"dha-marketplace/internal/core/port"
)

// maxBodyBytes bounds how much of an upstream response is read.
const maxBodyBytes = 10 << 20

// Client implements port.Backend over the marketplace backend's JSON API.
type Client struct {
	http *http.Client
	base *url.URL
	cfg  configs.Upstream
}

// NewClient returns a client for the backend at cfg.BaseURL.
func NewClient(cfg configs.Upstream, hc *http.Client) *Client {
	if hc == nil {
		hc = &http.Client{Timeout: cfg.Timeout}
	}
	base := cfg.BaseURL
	return &Client{http: hc, base: &base, cfg: cfg}
}

// CustomerBookingInfo fetches a reserve booking on behalf of the caller.
func (c *Client) CustomerBookingInfo(ctx context.Context, authorization, reserveBookingID string) (json.RawMessage, error) {
	q := url.Values{"reserve_booking_id": {reserveBookingID}}
	var out json.RawMessage
	err := c.do(ctx, http.MethodGet, c.cfg.BookingInfoPath, q, authorization, nil, "", &out)
	return out, err
}

// VerifyPlotLetter checks a plot confirmation letter QR payload.
func (c *Client) VerifyPlotLetter(ctx context.Context, qr string) (json.RawMessage, error) {
	q := url.Values{"qr": {qr}}
	var out json.RawMessage
	err := c.do(ctx, http.MethodGet, c.cfg.VerifyLetterPath, q, "", nil, "", &out)
	return out, err
}

// Profile returns the customer profile. The backend wraps it in a data
// envelope.
func (c *Client) Profile(ctx context.Context, authorization string) (*domain.Profile, error) {
	var env struct {
		Data domain.Profile `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, c.cfg.ProfilePath, nil, authorization, nil, "", &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// UpdateBid raises the bid on a booking.
func (c *Client) UpdateBid(ctx context.Context, authorization string, bookingID int64, amount int64) (json.RawMessage, error) {
	payload, err := json.Marshal(map[string]int64{
		"reserve_booking_id": bookingID,
		"bid_amount":         amount,
	})
	if err != nil {
		return nil, err
	}
	var out json.RawMessage
	err = c.do(ctx, http.MethodPost, c.cfg.UpdateBidPath, nil, authorization, bytes.NewReader(payload), "application/json", &out)
	return out, err
}

// ImportPlots uploads a plot CSV as multipart form data.
func (c *Client) ImportPlots(ctx context.Context, authorization string, file port.PlotFile) (*port.ImportResult, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", file.Name)
	if err != nil {
		return nil, err
	}
	if _, err = io.Copy(part, file.Content); err != nil {
		return nil, fmt.Errorf("copy plot file: %w", err)
	}
	if file.EventID != nil {
		if err = mw.WriteField("event_id", strconv.FormatInt(*file.EventID, 10)); err != nil {
			return nil, err
		}
	}
	if err = mw.Close(); err != nil {
		return nil, err
	}

	var out port.ImportResult
	if err = c.do(ctx, http.MethodPost, c.cfg.ImportPlotsPath, nil, authorization, &body, mw.FormDataContentType(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Events lists sale events. The backend has returned them under either a
// data or an events key.
func (c *Client) Events(ctx context.Context, authorization string) ([]port.Event, error) {
	var env struct {
		Data   []port.Event `json:"data"`
		Events []port.Event `json:"events"`
	}
	if err := c.do(ctx, http.MethodGet, c.cfg.EventsPath, nil, authorization, nil, "", &env); err != nil {
		return nil, err
	}
	if env.Data != nil {
		return env.Data, nil
	}
	if env.Events != nil {
		return env.Events, nil
	}
	return []port.Event{}, nil
}

// do sends one request and decodes a 2xx JSON body into out. Non-2xx
// answers become *port.UpstreamError.
func (c *Client) do(ctx context.Context, method, path string, q url.Values, authorization string, body io.Reader, contentType string, out any) error {
	u := c.base.JoinPath(path)
	if q != nil {
		u.RawQuery = q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType == "" {
		contentType = "application/json"
	}
	req.Header.Set("Content-Type", contentType)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("read %s response: %w", path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return ParseError(resp.StatusCode, raw)
	}
	if err = json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

// ParseError builds an UpstreamError from an error body. The backend has
// answered with {message}, {errors: {field: [...]}}, {errors: [...]} and bare
// arrays of strings; anything else leaves only the status.
func ParseError(status int, body []byte) *port.UpstreamError {
	e := &port.UpstreamError{Status: status}

	var list []string
	if json.Unmarshal(body, &list) == nil {
		e.Messages = list
		return e
	}

	var obj struct {
		Message string          `json:"message"`
		Error   string          `json:"error"`
		Errors  json.RawMessage `json:"errors"`
	}
	if json.Unmarshal(body, &obj) != nil {
		return e
	}
	e.Message = obj.Message
	if e.Message == "" {
		e.Message = obj.Error
	}
	if len(obj.Errors) == 0 {
		return e
	}

	var fields map[string][]string
	if json.Unmarshal(obj.Errors, &fields) == nil {
		e.Fields = fields
		for _, k := range sortedKeys(fields) {
			e.Messages = append(e.Messages, fields[k]...)
		}
		return e
	}
	var flat map[string]string
	if json.Unmarshal(obj.Errors, &flat) == nil {
		e.Fields = make(map[string][]string, len(flat))
		for _, k := range sortedKeys(flat) {
			e.Fields[k] = []string{flat[k]}
			e.Messages = append(e.Messages, flat[k])
		}
		return e
	}
	if json.Unmarshal(obj.Errors, &list) == nil {
		e.Messages = list
	}
	return e
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
