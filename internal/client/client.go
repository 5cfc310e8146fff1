// Package client talks to the employee API and keeps the dashboard cache in
// step with it.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"staffdesk/internal/domain/employees"
)

const employeesPath = "/api/employees"

// APIError is a non-2xx response. Message is the server's error text when it
// sent one.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: %d %s", e.Status, http.StatusText(e.Status))
	}
	return fmt.Sprintf("api error: %d %s", e.Status, e.Message)
}

type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *Client) List(ctx context.Context) ([]employees.Employee, error) {
	body, err := c.do(ctx, http.MethodGet, employeesPath, nil)
	if err != nil {
		return nil, err
	}
	out := make([]employees.Employee, 0)
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode employee list: %w", err)
	}
	return out, nil
}

func (c *Client) Create(ctx context.Context, emp employees.Employee) (employees.Employee, error) {
	body, err := c.do(ctx, http.MethodPost, employeesPath, emp)
	if err != nil {
		return employees.Employee{}, err
	}
	var created employees.Employee
	if err := json.Unmarshal(body, &created); err != nil {
		return employees.Employee{}, fmt.Errorf("decode created employee: %w", err)
	}
	return created, nil
}

// Update returns the raw response body so the caller can merge exactly the
// fields the server echoed.
func (c *Client) Update(ctx context.Context, id employees.ID, emp employees.Employee) (json.RawMessage, error) {
	body, err := c.do(ctx, http.MethodPut, employeesPath+"/"+id.String(), emp)
	if err != nil {
		return nil, err
	}
	if !json.Valid(body) {
		return nil, errors.New("decode updated employee: invalid json")
	}
	return body, nil
}

func (c *Client) Delete(ctx context.Context, id employees.ID) error {
	_, err := c.do(ctx, http.MethodDelete, employeesPath+"/"+id.String(), nil)
	return err
}

func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		var payload struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(body, &payload) == nil {
			apiErr.Message = payload.Error
		}
		return nil, apiErr
	}
	return body, nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTP == nil {
		return http.DefaultClient
	}
	return c.HTTP
}
