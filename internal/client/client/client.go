package client

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

	"github.com/dmitrijs2005/vmis/internal/client/session"
	"github.com/dmitrijs2005/vmis/internal/common"
	"github.com/dmitrijs2005/vmis/internal/logging"
	"github.com/dmitrijs2005/vmis/internal/resources"
)

// API is the set of backend calls the client services need.
type API interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Register(ctx context.Context, email, password, name string) error
	Dashboard(ctx context.Context, sess session.Session) (*DashboardStats, error)
	List(ctx context.Context, sess session.Session, endpoint string) ([]resources.Record, error)
	Create(ctx context.Context, sess session.Session, endpoint string, rec resources.Record) (resources.Record, error)
}

// User is the account returned by the login endpoint.
type User struct {
	ID    string
	Email string
	Name  string
}

// LoginResult is a successful login.
type LoginResult struct {
	Token string
	User  User
}

// DashboardStats are the per-user aggregate counts.
type DashboardStats struct {
	RepairRequestCount int    `json:"repairRequestCount"`
	MainCount          int    `json:"mainCount"`
	ReminderCount      int    `json:"reminderCount"`
	DispatchCount      int    `json:"dispatchCount"`
	Name               string `json:"name"`
}

type HTTPClient struct {
	baseURL *url.URL
	http    *http.Client
	logger  logging.Logger
}

// NewHTTPClient builds a client for baseURL. A zero timeout means requests
// only end when the server answers, the transport fails or ctx is done.
func NewHTTPClient(baseURL string, timeout time.Duration, logger logging.Logger) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", baseURL)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return &HTTPClient{
		baseURL: u,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}, nil
}

func (c *HTTPClient) resolve(endpoint string) (*url.URL, error) {
	ref, err := url.Parse(strings.TrimLeft(endpoint, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse endpoint %q: %w", endpoint, err)
	}
	if ref.IsAbs() {
		return nil, fmt.Errorf("endpoint %q must be relative", endpoint)
	}
	return c.baseURL.ResolveReference(ref), nil
}

// Fetch performs one request. body, when non-nil, is sent as JSON. On a 2xx
// answer the raw JSON body is returned (nil when the body is empty).
func (c *HTTPClient) Fetch(ctx context.Context, sess session.Session, method, endpoint string, body any) (json.RawMessage, error) {
	u, err := c.resolve(endpoint)
	if err != nil {
		return nil, err
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set(common.ContentTypeHeader, common.JSONContentType)
	req.Header.Set(common.AcceptHeader, common.JSONContentType)
	if sess.Token != "" {
		req.Header.Set(common.AuthorizationHeader, common.BearerPrefix+sess.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug(ctx, "request failed", "method", method, "endpoint", endpoint, "error", err)
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: fmt.Errorf("read body: %w", err)}
	}

	c.logger.Debug(ctx, "request done", "method", method, "endpoint", endpoint, "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newHTTPError(resp.StatusCode, data)
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, nil
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("%w: body is not JSON", ErrInvalidResponseShape)
	}
	return data, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	raw, err := c.Fetch(ctx, session.Session{}, http.MethodPost, "login",
		map[string]string{"email": email, "password": password})
	if err != nil {
		return nil, err
	}

	var payload struct {
		Token string           `json:"token"`
		User  resources.Record `json:"user"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponseShape, err)
	}

	res := &LoginResult{Token: payload.Token, User: User{ID: payload.User.ID()}}
	res.User.Email, _ = payload.User.Text("email")
	res.User.Name, _ = payload.User.Text("name")
	if res.Token == "" || res.User.ID == "" {
		return nil, fmt.Errorf("%w: login answer lacks token or user id", ErrInvalidResponseShape)
	}
	return res, nil
}

func (c *HTTPClient) Register(ctx context.Context, email, password, name string) error {
	_, err := c.Fetch(ctx, session.Session{}, http.MethodPost, "register",
		map[string]string{"email": email, "password": password, "name": name})
	return err
}

func (c *HTTPClient) Dashboard(ctx context.Context, sess session.Session) (*DashboardStats, error) {
	raw, err := c.Fetch(ctx, sess, http.MethodGet, "dashboard", nil)
	if err != nil {
		return nil, err
	}
	stats := &DashboardStats{}
	if raw == nil || json.Unmarshal(raw, stats) != nil {
		return nil, fmt.Errorf("%w: dashboard", ErrInvalidResponseShape)
	}
	return stats, nil
}

// List fetches a collection. The body must be a JSON array of objects.
func (c *HTTPClient) List(ctx context.Context, sess session.Session, endpoint string) ([]resources.Record, error) {
	raw, err := c.Fetch(ctx, sess, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	return decodeList(raw)
}

func decodeList(raw json.RawMessage) ([]resources.Record, error) {
	var items []json.RawMessage
	if raw == nil || json.Unmarshal(raw, &items) != nil || items == nil {
		return nil, fmt.Errorf("%w: expected an array", ErrInvalidResponseShape)
	}

	out := make([]resources.Record, 0, len(items))
	for i, item := range items {
		var rec resources.Record
		if json.Unmarshal(item, &rec) != nil || rec == nil {
			return nil, fmt.Errorf("%w: element %d is not an object", ErrInvalidResponseShape, i)
		}
		out = append(out, rec)
	}
	return out, nil
}

// Create posts rec to a create endpoint and returns the stored record.
func (c *HTTPClient) Create(ctx context.Context, sess session.Session, endpoint string, rec resources.Record) (resources.Record, error) {
	raw, err := c.Fetch(ctx, sess, http.MethodPost, endpoint, rec)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return resources.Record{}, nil
	}
	var created resources.Record
	if json.Unmarshal(raw, &created) != nil || created == nil {
		return nil, fmt.Errorf("%w: expected an object", ErrInvalidResponseShape)
	}
	return created, nil
}
