package identitymock

import (
	"context"
	"sync"

	"github.com/paymesh/session-gate/internal/identity"
)

type ClientOption func(*Client)

// Client is an in-memory identity API double. It counts calls per endpoint so
// tests can assert how many network round-trips a gate decision cost.
type Client struct {
	mu sync.Mutex

	profile identity.Profile
	login   identity.LoginResult

	meErr    error
	loginErr error

	meCalls    int
	loginCalls int
}

func WithProfile(profile identity.Profile) ClientOption {
	return func(c *Client) { c.profile = profile }
}
func WithLoginResult(result identity.LoginResult) ClientOption {
	return func(c *Client) { c.login = result }
}
func WithMeError(err error) ClientOption {
	return func(c *Client) { c.meErr = err }
}
func WithLoginError(err error) ClientOption {
	return func(c *Client) { c.loginErr = err }
}

var _ = identity.Client(&Client{})

func NewClient(opts ...ClientOption) *Client {
	c := &Client{}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

func (c *Client) Me(_ context.Context, _ string) (identity.Profile, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.meCalls++
	if c.meErr != nil {
		return identity.Profile{}, c.meErr
	}
	return c.profile, nil
}

func (c *Client) Login(_ context.Context, _, _ string) (identity.LoginResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.loginCalls++
	if c.loginErr != nil {
		return identity.LoginResult{}, c.loginErr
	}
	return c.login, nil
}

func (c *Client) MeCalls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.meCalls
}

func (c *Client) LoginCalls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loginCalls
}
