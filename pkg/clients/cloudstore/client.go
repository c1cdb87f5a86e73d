// Package cloudstore talks to the opaque backup store. The application only
// ever pushes the full export bundle and pulls it back; the store's transport
// and layout stay its own business.
package cloudstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// ErrNotFound is returned by Restore when no backup has ever been saved.
var ErrNotFound = errors.New("no backup found")

// Client persists and retrieves the full backup bundle.
type Client interface {
	Save(ctx context.Context, bundle json.RawMessage) error
	Restore(ctx context.Context) (json.RawMessage, error)
}

type restClient struct {
	httpClient *resty.Client
}

// NewClient creates a client against the store's base URL. The token is sent
// as a bearer credential on every call.
func NewClient(baseURL, token string) Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(token).
		SetHeader("content-type", "application/json").
		SetTimeout(30 * time.Second)

	return &restClient{httpClient: client}
}

func (c *restClient) Save(ctx context.Context, bundle json.RawMessage) error {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody([]byte(bundle)).
		Put("/backup")

	if err != nil {
		return fmt.Errorf("cloud backup save: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("cloud backup save: %s", resp.Status())
	}
	return nil
}

func (c *restClient) Restore(ctx context.Context) (json.RawMessage, error) {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		Get("/backup")

	if err != nil {
		return nil, fmt.Errorf("cloud backup restore: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.IsError() {
		return nil, fmt.Errorf("cloud backup restore: %s", resp.Status())
	}

	return json.RawMessage(resp.Body()), nil
}
