package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/paymesh/session-gate/internal/serviceerr"
)

const (
	mePath    = "/api/v1/auth/users/me"
	loginPath = "/api/v1/auth/login"
)

// HTTPClient is the identity API client over HTTP.
type HTTPClient struct {
	baseURL *url.URL
	client  *http.Client
}

var _ = Client(&HTTPClient{})

func NewHTTPClient(baseURL string, httpClient *http.Client) (*HTTPClient, error) {
	u, err := url.Parse(strings.TrimSuffix(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parsing identity API base URL: %w", err)
	}

	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &HTTPClient{
		baseURL: u,
		client:  httpClient,
	}, nil
}

type envelope struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
}

type meData struct {
	KYCSubmitted bool `json:"kyc_submitted"`
}

type loginData struct {
	AccessToken   string `json:"access_token"`
	EmailVerified bool   `json:"email_verified"`
	BusinessID    string `json:"business_id"`
}

func (c *HTTPClient) Me(ctx context.Context, token string) (Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL.JoinPath(mePath).String(), nil)
	if err != nil {
		return Profile{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	env, err := c.do(req)
	if err != nil {
		return Profile{}, err
	}

	var data meData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return Profile{}, fmt.Errorf("decoding profile data: %w", err)
	}

	return Profile{
		KYCSubmitted: data.KYCSubmitted,
		Raw:          env.Data,
	}, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (LoginResult, error) {
	body, err := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return LoginResult{}, fmt.Errorf("encoding login request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL.JoinPath(loginPath).String(), bytes.NewReader(body))
	if err != nil {
		return LoginResult{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	env, err := c.do(req)
	if err != nil {
		return LoginResult{}, err
	}

	var data loginData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return LoginResult{}, fmt.Errorf("decoding login data: %w", err)
	}

	return LoginResult{
		AccessToken:   data.AccessToken,
		EmailVerified: data.EmailVerified,
		BusinessID:    data.BusinessID,
	}, nil
}

func (c *HTTPClient) do(req *http.Request) (envelope, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return envelope{}, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return envelope{}, serviceerr.ErrAuthRejected
	}
	if resp.StatusCode != http.StatusOK {
		return envelope{}, fmt.Errorf("identity API returned status %d", resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return envelope{}, fmt.Errorf("decoding response: %w", err)
	}

	if env.Status != statusSuccess {
		return envelope{}, errors.Join(serviceerr.ErrAuthRejected, fmt.Errorf("identity API reported status %q", env.Status))
	}

	return env, nil
}
