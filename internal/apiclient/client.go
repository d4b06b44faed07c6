package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gemgeek/alx-listing-app-deployed/internal/domain"
	"github.com/gemgeek/alx-listing-app-deployed/internal/handler/dto"
)

const maxErrorBody = 64 << 10

// Client talks to the StayBook HTTP API. It never retries.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *Client) ListProperties(ctx context.Context) ([]domain.Property, error) {
	var resp []dto.PropertyResponse
	if err := c.do(ctx, http.MethodGet, "/api/properties", nil, &resp); err != nil {
		return nil, err
	}

	res := make([]domain.Property, 0, len(resp))
	for _, p := range resp {
		res = append(res, p.ToDomain())
	}
	return res, nil
}

func (c *Client) GetProperty(ctx context.Context, id string) (*domain.Property, error) {
	var resp dto.PropertyResponse
	if err := c.do(ctx, http.MethodGet, "/api/properties/"+url.PathEscape(id), nil, &resp); err != nil {
		return nil, err
	}

	p := resp.ToDomain()
	return &p, nil
}

func (c *Client) ListReviews(ctx context.Context, propertyID string) ([]domain.Review, error) {
	var resp []dto.ReviewResponse
	path := "/api/properties/" + url.PathEscape(propertyID) + "/reviews"
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}

	res := make([]domain.Review, 0, len(resp))
	for _, r := range resp {
		res = append(res, r.ToDomain())
	}
	return res, nil
}

func (c *Client) CreateBooking(ctx context.Context, req domain.BookingRequest) (*domain.BookingConfirmation, error) {
	var resp dto.BookingResponse
	if err := c.do(ctx, http.MethodPost, "/api/bookings", dto.FromDomainBookingRequest(req), &resp); err != nil {
		return nil, err
	}

	return &domain.BookingConfirmation{
		Message:   resp.Message,
		BookingID: resp.BookingID,
	}, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Op: method + " " + path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}

	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &TransportError{Op: "decode " + path, Err: err}
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(raw) == 0 {
		return apiErr
	}

	var body dto.ErrorResponse
	if json.Unmarshal(raw, &body) == nil {
		apiErr.Message = body.Message
	}
	return apiErr
}
