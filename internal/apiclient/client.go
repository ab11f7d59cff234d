// Package apiclient is the JSON client the booking wizard talks through.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"sync"
	"time"

	reqdto "experience-booking/internal/handler/dto/request"
	resdto "experience-booking/internal/handler/dto/response"
	"experience-booking/internal/pkg/errs"
	"experience-booking/internal/pkg/ptr"

	"github.com/google/uuid"
)

const defaultTimeout = 10 * time.Second

// APIError is a non-2xx answer decoded from the server's error envelope.
type APIError struct {
	Status  int
	Message string
	Fields  []errs.FieldError
}

func (e *APIError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+" "+f.Message)
	}
	return fmt.Sprintf("api error %d: %s (%s)", e.Status, e.Message, strings.Join(parts, "; "))
}

type errorEnvelope struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail []errs.FieldError `json:"detail"`
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// Client caches the booking list; a successful CreateBooking drops that
// cache so the next ListBookings sees the new record.
type Client struct {
	baseURL string
	http    *http.Client

	mu          sync.Mutex
	bookings    []*resdto.BookingResponse
	bookingsOK  bool
	bookingsGen uint64
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) CreateBooking(ctx context.Context, req reqdto.CreateBookingRequest) (*resdto.BookingResponse, error) {
	var out resdto.BookingResponse
	if err := c.do(ctx, http.MethodPost, "/api/bookings", req, &out); err != nil {
		return nil, err
	}
	c.InvalidateBookings()
	return &out, nil
}

func (c *Client) ListBookings(ctx context.Context) ([]*resdto.BookingResponse, error) {
	c.mu.Lock()
	if c.bookingsOK {
		cached := cloneBookings(c.bookings)
		c.mu.Unlock()
		return cached, nil
	}
	gen := c.bookingsGen
	c.mu.Unlock()

	var out []*resdto.BookingResponse
	if err := c.do(ctx, http.MethodGet, "/api/bookings", nil, &out); err != nil {
		return nil, err
	}

	c.mu.Lock()
	// Only cache if nothing invalidated the list while we were fetching.
	if c.bookingsGen == gen {
		c.bookings = cloneBookings(out)
		c.bookingsOK = true
	}
	c.mu.Unlock()
	return out, nil
}

// cloneBookings copies the slice and every record so callers never share
// memory with the cache.
func cloneBookings(in []*resdto.BookingResponse) []*resdto.BookingResponse {
	out := slices.Clone(in)
	for i, b := range out {
		if b == nil {
			continue
		}
		cp := *b
		if b.SpecialRequests != nil {
			cp.SpecialRequests = ptr.To(*b.SpecialRequests)
		}
		out[i] = &cp
	}
	return out
}

func (c *Client) InvalidateBookings() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bookings = nil
	c.bookingsOK = false
	c.bookingsGen++
}

func (c *Client) GetBooking(ctx context.Context, id uuid.UUID) (*resdto.BookingResponse, error) {
	var out resdto.BookingResponse
	if err := c.do(ctx, http.MethodGet, "/api/bookings/"+id.String(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetExperience(ctx context.Context, id uuid.UUID) (*resdto.ExperienceResponse, error) {
	var out resdto.ExperienceResponse
	if err := c.do(ctx, http.MethodGet, "/api/experiences/"+id.String(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListExperiences(ctx context.Context, q reqdto.ExperienceListQuery) ([]*resdto.ExperienceResponse, error) {
	values := url.Values{}
	for k, v := range map[string]string{
		"category": q.Category,
		"location": q.Location,
		"featured": q.Featured,
		"search":   q.Search,
	} {
		if v != "" {
			values.Set(k, v)
		}
	}
	path := "/api/experiences"
	if len(values) > 0 {
		path += "?" + values.Encode()
	}

	var out []*resdto.ExperienceResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return errs.Wrap(err, "encode request")
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errs.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errs.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errs.Wrap(err, "read response")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var env errorEnvelope
		if json.Unmarshal(data, &env) == nil {
			if env.Error.Message != "" {
				apiErr.Message = env.Error.Message
			}
			apiErr.Fields = env.Detail
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errs.Wrap(err, "decode response")
	}
	return nil
}
