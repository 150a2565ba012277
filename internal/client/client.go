// Package client retrieves the initial task collection.
package client

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/idilsaglam/taskboard/internal/config"
	"github.com/idilsaglam/taskboard/internal/model"
)

// ErrUnexpectedStatus is wrapped when the service answers with a non-2xx code.
var ErrUnexpectedStatus = errors.New("unexpected status")

// Source yields a complete task collection.
type Source interface {
	FetchAll(ctx context.Context) ([]model.Task, error)
}

// Client reads tasks from the remote service with a single GET. It sends
// no credentials and never retries.
type Client struct {
	url    string
	http   *http.Client
	logger *zap.Logger
}

type Option func(*Client)

// WithHTTPClient replaces the HTTP client, e.g. with an httptest one.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New builds a client for cfg.URL().
func New(cfg config.RemoteConfig, logger *zap.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Client{
		url:    cfg.URL(),
		http:   newHTTPClient(cfg.InsecureTLS),
		logger: logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func newHTTPClient(insecure bool) *http.Client {
	if !insecure {
		return &http.Client{}
	}
	tr := http.DefaultTransport.(*http.Transport).Clone()
	tr.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // opt-in for self-signed dev servers
	return &http.Client{Transport: tr}
}

// URL is the endpoint the client reads from.
func (c *Client) URL() string { return c.url }

// FetchAll GETs the resource and decodes a JSON array of tasks.
func (c *Client) FetchAll(ctx context.Context) ([]model.Task, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("fetching tasks", zap.String("url", c.url))
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch tasks: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		return nil, fmt.Errorf("fetch tasks: %w: %s", ErrUnexpectedStatus, resp.Status)
	}

	var tasks []model.Task
	if err := json.NewDecoder(resp.Body).Decode(&tasks); err != nil {
		return nil, fmt.Errorf("decode tasks: %w", err)
	}
	c.logger.Debug("fetched tasks", zap.Int("count", len(tasks)))
	return tasks, nil
}
