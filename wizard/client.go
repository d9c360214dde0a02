package wizard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/Jackcomputers-app/flyhightide/config"
	"github.com/Jackcomputers-app/flyhightide/model"
	"github.com/Jackcomputers-app/flyhightide/utils"
)

// RejectedError is a submission the booking service refused, as opposed to a
// transport failure.
type RejectedError struct {
	Status  int
	Message string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("booking rejected (%v): %v", e.Status, e.Message)
}

// Client submits finalized bookings and contact messages to the booking
// service. Each call performs exactly one write attempt, no retries.
type Client struct {
	baseURL    string
	httpClient *http.Client
	invalidate func()
	logger     *zap.Logger
}

// NewClient builds a client for the service at baseURL. invalidate, when not
// nil, is called after every successful create so read-side caches can
// refresh; pass nil when nothing caches.
func NewClient(baseURL string, invalidate func()) *Client {
	timeout := time.Duration(config.AppConfig.BookingAPITimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		invalidate: invalidate,
		logger:     utils.GetLogger(),
	}
}

// CreateBooking posts the request and returns the created record with its
// server-assigned id and timestamp.
func (c *Client) CreateBooking(ctx context.Context, request model.BookingRequest) (model.Booking, error) {
	var booking model.Booking
	if err := c.post(ctx, "/api/bookings", request, &booking); err != nil {
		return model.Booking{}, err
	}
	return booking, nil
}

// CreateContact posts a contact message and returns the stored record.
func (c *Client) CreateContact(ctx context.Context, request model.ContactRequest) (model.Contact, error) {
	var contact model.Contact
	if err := c.post(ctx, "/api/contacts", request, &contact); err != nil {
		return model.Contact{}, err
	}
	return contact, nil
}

func (c *Client) post(ctx context.Context, path string, payload any, result any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("cannot encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("cannot build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("booking service unreachable: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusBadRequest {
		var rejection struct {
			Error string `json:"error"`
		}
		if decodeErr := json.NewDecoder(res.Body).Decode(&rejection); decodeErr != nil {
			rejection.Error = "invalid request"
		}
		return &RejectedError{Status: res.StatusCode, Message: rejection.Error}
	}
	if res.StatusCode != http.StatusOK && res.StatusCode != http.StatusCreated {
		return fmt.Errorf("booking service returned status %v", res.StatusCode)
	}

	if err := json.NewDecoder(res.Body).Decode(result); err != nil {
		return fmt.Errorf("cannot decode response: %w", err)
	}

	if c.invalidate != nil {
		c.invalidate()
	}
	return nil
}
