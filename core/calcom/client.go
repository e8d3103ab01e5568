package calcom

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client defines the provider operations used by the pipeline.
type Client interface {
	// ListBookings returns every booking visible to the API key, in provider order.
	ListBookings(ctx context.Context) ([]Booking, error)
	// ListSlots returns the provider's availability map for the query window.
	ListSlots(ctx context.Context, query SlotsQuery) (Availability, error)
	// CancelBooking cancels a booking with a free-text reason.
	CancelBooking(ctx context.Context, bookingID int, reason string) (*CancelResult, error)
}

// NewClient creates an HTTP client for the provider API.
func NewClient(cfg Config) (Client, error) {
	base, err := url.Parse(strings.TrimSuffix(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base url: %v", ErrConfiguration, err)
	}

	s, err := compileSchemas()
	if err != nil {
		return nil, err
	}

	timeout := cfg.Timeout()

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeout,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeout,
	}

	return &httpClient{
		base:    base,
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: timeout, Transport: transport},
		schemas: s,
	}, nil
}

type httpClient struct {
	base    *url.URL
	apiKey  string
	http    *http.Client
	schemas *schemas
}

func (c *httpClient) ListBookings(ctx context.Context) ([]Booking, error) {
	body, err := c.do(ctx, http.MethodGet, "/bookings", nil)
	if err != nil {
		return nil, err
	}
	return decodeBookings(c.schemas, body)
}

func (c *httpClient) ListSlots(ctx context.Context, query SlotsQuery) (Availability, error) {
	params := url.Values{}
	params.Set("startTime", query.Start.UTC().Format(time.RFC3339))
	params.Set("endTime", query.End.UTC().Format(time.RFC3339))
	params.Set("timeZone", query.TimeZone)
	params.Set("eventTypeId", strconv.Itoa(query.EventTypeID))

	body, err := c.do(ctx, http.MethodGet, "/slots", params)
	if err != nil {
		return nil, err
	}
	return decodeSlots(c.schemas, body)
}

func (c *httpClient) CancelBooking(ctx context.Context, bookingID int, reason string) (*CancelResult, error) {
	params := url.Values{}
	params.Set("cancellationReason", reason)

	path := fmt.Sprintf("/bookings/%d/cancel", bookingID)
	body, err := c.do(ctx, http.MethodDelete, path, params)
	if err != nil {
		return nil, err
	}

	var result CancelResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("cancel booking %d: %w: %v", bookingID, ErrDataShape, err)
	}
	result.BookingID = bookingID
	return &result, nil
}

// do performs one request and returns the body of a 2xx response.
func (c *httpClient) do(ctx context.Context, method, path string, params url.Values) ([]byte, error) {
	if params == nil {
		params = url.Values{}
	}
	params.Set("apiKey", c.apiKey)

	u := *c.base
	u.Path = c.base.Path + path
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, method, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", ErrRemoteFetch, method, path, redactErr(err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", ErrRemoteFetch, method, path, redactErr(err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: read body: %v", ErrRemoteFetch, method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s %s: status %d", ErrRemoteFetch, method, path, resp.StatusCode)
	}

	return body, nil
}

// redactErr strips the query string (which carries the API key) from URL errors.
func redactErr(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if u, perr := url.Parse(urlErr.URL); perr == nil {
			u.RawQuery = ""
			return &url.Error{Op: urlErr.Op, URL: u.String(), Err: urlErr.Err}
		}
	}
	return err
}
