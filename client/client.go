// Package client talks to the repair shop REST API on behalf of the back office.
package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tidwall/gjson"
)

// ErrNoRecord is returned when a response carries no record under the expected key.
var ErrNoRecord = errors.New("response has no record")

// APIError is a non-2xx answer from the API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

func (e *APIError) StatusCode() int { return e.Status }

// IsStatus reports whether err is an *APIError with the given status.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}

type Config struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// Client is safe for concurrent use; WithToken derives per-session copies.
type Client struct {
	base    string
	token   string
	timeout time.Duration
	http    *fiber.Client
}

func New(cfg Config) *Client {
	base := cfg.BaseURL
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		base:    base,
		token:   cfg.Token,
		timeout: timeout,
		http: &fiber.Client{
			UserAgent:   "repairdesk-backoffice",
			JSONEncoder: json.Marshal,
			JSONDecoder: json.Unmarshal,
		},
	}
}

// WithToken returns a copy of c that authenticates with token.
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.token = token
	return &cp
}

func (c *Client) agent(method, target string) *fiber.Agent {
	switch method {
	case fiber.MethodPost:
		return c.http.Post(target)
	case fiber.MethodPut:
		return c.http.Put(target)
	case fiber.MethodPatch:
		return c.http.Patch(target)
	case fiber.MethodDelete:
		return c.http.Delete(target)
	default:
		return c.http.Get(target)
	}
}

// do sends one request and returns the body of a 2xx response.
func (c *Client) do(method, path string, query url.Values, in any) ([]byte, error) {
	target := c.base + strings.TrimPrefix(path, "/")
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	a := c.agent(method, target).Timeout(c.timeout)
	a.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)
	if c.token != "" {
		a.Set(fiber.HeaderAuthorization, "Bearer "+c.token)
	}
	if in != nil {
		a.JSON(in)
	}

	code, body, errs := a.Bytes()
	if len(errs) > 0 {
		return nil, fmt.Errorf("%s %s: %w", method, path, errors.Join(errs...))
	}
	if code < http.StatusOK || code >= http.StatusMultipleChoices {
		return nil, newAPIError(code, body)
	}
	return body, nil
}

func newAPIError(code int, body []byte) *APIError {
	msg := gjson.GetBytes(body, "message").String()
	if msg == "" {
		msg = http.StatusText(code)
	}
	return &APIError{Status: code, Message: msg}
}

// unwrap decodes the value stored under key into out.
func unwrap(body []byte, key string, out any) error {
	res := gjson.GetBytes(body, key)
	if !res.Exists() || res.Type == gjson.Null {
		return ErrNoRecord
	}
	if err := json.Unmarshal([]byte(res.Raw), out); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

// Ping checks that the API answers.
func (c *Client) Ping() error {
	_, err := c.do(fiber.MethodGet, "hello", nil, nil)
	return err
}

// Login exchanges credentials for an access token.
func (c *Client) Login(email, password string) (string, error) {
	body, err := c.do(fiber.MethodPost, "user/login", nil, map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return "", err
	}
	token := gjson.GetBytes(body, "accessToken").String()
	if token == "" {
		return "", ErrNoRecord
	}
	return token, nil
}

// ValidateSession asks the API whether token still identifies a user.
func (c *Client) ValidateSession(token string) error {
	if token == "" {
		return &APIError{Status: http.StatusUnauthorized, Message: "missing token"}
	}
	body, err := c.WithToken(token).do(fiber.MethodPost, "user/validate", nil, nil)
	if err != nil {
		return err
	}
	if v := gjson.GetBytes(body, "valid"); v.Exists() && !v.Bool() {
		return &APIError{Status: http.StatusUnauthorized, Message: "session not valid"}
	}
	return nil
}
