// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-quiz-api/internal/logger"
	"github.com/MKhiriev/go-quiz-api/internal/utils"
	"github.com/MKhiriev/go-quiz-api/models"
	"github.com/go-resty/resty/v2"
)

type httpAPIClient struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPAPIClient constructs a resty-backed [APIClient] for the API served
// at address. A bare "host:port" address is treated as http.
//
// Returns an error if address is empty or cannot be parsed as a URL.
func NewHTTPAPIClient(address string, timeout time.Duration, logger *logger.Logger) (APIClient, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid api address: %w", err)
	}

	return &httpAPIClient{
		client: utils.NewHTTPClient(baseURL, timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", ErrInvalidAddress
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (c *httpAPIClient) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = strings.TrimSpace(token)
}

func (c *httpAPIClient) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *httpAPIClient) Root(ctx context.Context) (models.RootResponse, error) {
	var out models.RootResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/")
	if err = c.check("root", resp, err); err != nil {
		return models.RootResponse{}, err
	}
	return out, nil
}

func (c *httpAPIClient) Health(ctx context.Context) (models.Health, error) {
	var out models.Health
	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/api/health")
	if err = c.check("health", resp, err); err != nil {
		return models.Health{}, err
	}
	return out, nil
}

func (c *httpAPIClient) Version(ctx context.Context) (string, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version")
	if err = c.check("version", resp, err); err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.String()), nil
}

func (c *httpAPIClient) Register(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error) {
	return c.authenticate(ctx, "register", "/api/auth/register", credentials)
}

func (c *httpAPIClient) Login(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error) {
	return c.authenticate(ctx, "login", "/api/auth/login", credentials)
}

func (c *httpAPIClient) authenticate(ctx context.Context, op, path string, credentials models.Credentials) (models.AuthResponse, error) {
	var out models.AuthResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(credentials).
		SetResult(&out).
		Post(path)
	if err = c.check(op, resp, err); err != nil {
		return models.AuthResponse{}, err
	}

	token := out.Token
	if token == "" {
		token = bearerToken(resp.Header().Get("Authorization"))
	}
	c.SetToken(token)

	return out, nil
}

func (c *httpAPIClient) Me(ctx context.Context) (models.PublicUser, error) {
	var out models.PublicUser
	resp, err := c.authorized(ctx).
		SetResult(&out).
		Get("/api/auth/me")
	if err = c.check("me", resp, err); err != nil {
		return models.PublicUser{}, err
	}
	return out, nil
}

func (c *httpAPIClient) Logout(ctx context.Context) error {
	resp, err := c.authorized(ctx).Post("/api/auth/logout")
	if err = c.check("logout", resp, err); err != nil {
		return err
	}
	c.SetToken("")
	return nil
}

func (c *httpAPIClient) authorized(ctx context.Context) *resty.Request {
	req := c.client.R().SetContext(ctx)
	if token := c.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// check turns a transport error or a non-2xx response into an error.
func (c *httpAPIClient) check(op string, resp *resty.Response, err error) error {
	if err != nil {
		c.logger.Debug().Err(err).Str("op", op).Msg("request failed")
		return fmt.Errorf("%s: %w", op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		c.logger.Debug().Err(err).Str("op", op).Int("status", resp.StatusCode()).Msg("unexpected response")
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
