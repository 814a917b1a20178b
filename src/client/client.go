// Package client is a Go client for the finance tracker API. It owns the
// bearer-token lifecycle: a Session is created on login, persisted through a
// TokenStore, and destroyed on logout or on any failed profile fetch.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/aizwal9/Finance-Tracker/src/models"
	"github.com/aizwal9/Finance-Tracker/src/timerange"
)

// Session is the explicit authentication state passed around instead of an
// ambient token lookup. User is nil until a profile fetch succeeds.
type Session struct {
	Token string
	User  *models.User
}

// TokenStore persists the bearer token between runs.
type TokenStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// FileTokenStore keeps the token in a single file.
type FileTokenStore struct {
	Path string
}

func (s FileTokenStore) Load() (string, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func (s FileTokenStore) Save(token string) error {
	return os.WriteFile(s.Path, []byte(token), 0o600)
}

func (s FileTokenStore) Clear() error {
	err := os.Remove(s.Path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

type Client struct {
	baseURL string
	http    *http.Client
	store   TokenStore
	session *Session
}

// New builds a client for the API at baseURL. If the store holds a token
// from an earlier run, the session is restored from it; whether it is still
// valid is decided by the next Profile call.
func New(baseURL string, store TokenStore) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
		store:   store,
	}
	if store != nil {
		if token, err := store.Load(); err == nil && token != "" {
			c.session = &Session{Token: token}
		}
	}
	return c
}

func (c *Client) Authenticated() bool {
	return c.session != nil && c.session.Token != ""
}

func (c *Client) CurrentSession() *Session {
	return c.session
}

// Register creates an account. It does not log the new user in.
func (c *Client) Register(ctx context.Context, name, email, password string) error {
	resp, err := c.post(ctx, "/api/register", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	}, false)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return apiError(resp)
	}
	return nil
}

// Login exchanges credentials for a token and creates the session. The
// token is persisted so the session survives a restart.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	resp, err := c.post(ctx, "/api/login", map[string]string{
		"email":    email,
		"password": password,
	}, false)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var body struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode login response: %w", err)
	}
	if body.Token == "" {
		return nil, errors.New("login response contained no token")
	}

	c.session = &Session{Token: body.Token}
	if c.store != nil {
		if err := c.store.Save(body.Token); err != nil {
			return nil, fmt.Errorf("failed to persist token: %w", err)
		}
	}
	return c.session, nil
}

// Logout destroys the session and clears the persisted token.
func (c *Client) Logout() error {
	return c.clearSession()
}

// Profile fetches the authenticated user and attaches it to the session.
// Any failed fetch destroys the session, transport errors included: a token
// that cannot be verified is not worth keeping around.
func (c *Client) Profile(ctx context.Context) (*models.User, error) {
	resp, err := c.get(ctx, "/api/profile")
	if err != nil {
		if clearErr := c.clearSession(); clearErr != nil {
			return nil, clearErr
		}
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		apiErr := apiError(resp)
		if err := c.clearSession(); err != nil {
			return nil, err
		}
		return nil, apiErr
	}

	var user models.User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("failed to decode profile response: %w", err)
	}
	c.session.User = &user
	return &user, nil
}

// Transactions fetches the user's transactions for the given time range,
// newest first.
func (c *Client) Transactions(ctx context.Context, sel timerange.Selector) ([]models.Transaction, error) {
	resp, err := c.get(ctx, "/api/transactions?timeRange="+url.QueryEscape(string(sel)))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var transactions []models.Transaction
	if err := json.NewDecoder(resp.Body).Decode(&transactions); err != nil {
		return nil, fmt.Errorf("failed to decode transactions response: %w", err)
	}
	return transactions, nil
}

// Submit validates a draft and sends it for persistence. The amount is sent
// as entered; the server coerces it.
func (c *Client) Submit(ctx context.Context, draft Draft) (*models.Transaction, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	resp, err := c.post(ctx, "/api/transactions", map[string]string{
		"date":        draft.Date,
		"description": draft.Description,
		"amount":      draft.Amount,
		"category":    draft.Category,
	}, true)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, apiError(resp)
	}

	var created models.Transaction
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("failed to decode created transaction: %w", err)
	}
	return &created, nil
}

func (c *Client) clearSession() error {
	c.session = nil
	if c.store != nil {
		return c.store.Clear()
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	if err := c.authorize(req); err != nil {
		return nil, err
	}
	return c.http.Do(req)
}

func (c *Client) post(ctx context.Context, path string, body interface{}, auth bool) (*http.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if auth {
		if err := c.authorize(req); err != nil {
			return nil, err
		}
	}
	return c.http.Do(req)
}

func (c *Client) authorize(req *http.Request) error {
	if !c.Authenticated() {
		return errors.New("not authenticated")
	}
	req.Header.Set("Authorization", "Bearer "+c.session.Token)
	return nil
}

func apiError(resp *http.Response) error {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		return errors.New(body.Error)
	}
	return fmt.Errorf("unexpected status %d", resp.StatusCode)
}
