// Package api is the dashboard's client of the REST backend. Every request
// carries the current bearer token when one exists, every response uses the
// {success, data} envelope, and a 401 on an authenticated request fires the
// registered unauthorized handler so the composition root can force a logout.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"shopdash/internal/domain"
)

// TokenSource supplies the current bearer token, if any. Implemented by the
// session so the client always sees the freshest token without holding its
// own copy.
type TokenSource interface {
	Token() (string, bool)
}

type Client struct {
	base           string
	http           *http.Client
	tokens         TokenSource
	onUnauthorized func()
}

func New(base string, tokens TokenSource) *Client {
	return &Client{
		base:   strings.TrimRight(base, "/"),
		http:   &http.Client{Timeout: 15 * time.Second},
		tokens: tokens,
	}
}

// SetTokenSource wires the token supplier after construction. The session
// and the client reference each other, so the composition root builds the
// client first and attaches the session here.
func (c *Client) SetTokenSource(tokens TokenSource) {
	c.tokens = tokens
}

// SetUnauthorizedHandler registers the hook invoked when an authenticated
// request comes back 401 (expired or revoked session).
func (c *Client) SetUnauthorizedHandler(fn func()) {
	c.onUnauthorized = fn
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

type AuthResult struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
}

type CreateShopRequest struct {
	Name string `json:"name"`
}

type CreateCategoryRequest struct {
	Name string `json:"name"`
	Shop string `json:"shop"`
}

func (c *Client) Login(ctx context.Context, creds Credentials) (*AuthResult, error) {
	var result AuthResult
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", creds, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) Signup(ctx context.Context, req SignupRequest) (*domain.User, error) {
	var payload struct {
		User *domain.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/auth/signup", req, &payload); err != nil {
		return nil, err
	}
	return payload.User, nil
}

func (c *Client) GetUser(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	if err := c.do(ctx, http.MethodGet, "/api/auth/user/"+url.PathEscape(id), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) ListCategories(ctx context.Context, shopID string) ([]domain.Category, error) {
	var categories []domain.Category
	path := "/api/categories?shop=" + url.QueryEscape(shopID)
	if err := c.do(ctx, http.MethodGet, path, nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// AllShops lists every shop in the system. super_admin only; anyone else
// gets a 403.
func (c *Client) AllShops(ctx context.Context) ([]domain.Shop, error) {
	var shops []domain.Shop
	if err := c.do(ctx, http.MethodGet, "/api/admin/shops", nil, &shops); err != nil {
		return nil, err
	}
	return shops, nil
}

func (c *Client) CreateShop(ctx context.Context, req CreateShopRequest) (*domain.Shop, error) {
	var shop domain.Shop
	if err := c.do(ctx, http.MethodPost, "/api/shops", req, &shop); err != nil {
		return nil, err
	}
	return &shop, nil
}

func (c *Client) CreateCategory(ctx context.Context, req CreateCategoryRequest) (*domain.Category, error) {
	var category domain.Category
	if err := c.do(ctx, http.MethodPost, "/api/categories", req, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *errorBody      `json:"error"`
	Message string          `json:"message"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	authenticated := false
	if c.tokens != nil {
		if token, ok := c.tokens.Token(); ok {
			req.Header.Set("Authorization", "Bearer "+token)
			authenticated = true
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	decodeErr := json.NewDecoder(resp.Body).Decode(&env)

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &Error{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		if decodeErr == nil {
			if env.Error != nil && env.Error.Message != "" {
				apiErr.Code = env.Error.Code
				apiErr.Message = env.Error.Message
			} else if env.Message != "" {
				apiErr.Message = env.Message
			}
		}
		// only a rejected *authenticated* request means the session died;
		// a 401 on login is just bad credentials
		if resp.StatusCode == http.StatusUnauthorized && authenticated && c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return apiErr
	}

	if decodeErr != nil {
		return fmt.Errorf("decode response for %s %s: %w", method, path, decodeErr)
	}
	if out == nil || len(env.Data) == 0 {
		return nil
	}
	return json.Unmarshal(env.Data, out)
}
