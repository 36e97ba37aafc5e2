// Package identity talks to the remote merchant identity API. The gate uses
// it for bearer-token verification, the KYC status check and login.
package identity

import (
	"context"
	"encoding/json"
)

// statusSuccess is the envelope status the API reports on success.
const statusSuccess = "success"

// Profile is the account profile returned by the users/me endpoint. Raw keeps
// the full profile object so callers can cache it verbatim.
type Profile struct {
	KYCSubmitted bool
	Raw          json.RawMessage
}

// LoginResult carries the fields of a successful login response.
type LoginResult struct {
	AccessToken   string
	EmailVerified bool
	BusinessID    string
}

type Client interface {
	// Me fetches the account profile using the given bearer token. A 401/403
	// response or a non-success envelope yields serviceerr.ErrAuthRejected.
	Me(ctx context.Context, token string) (Profile, error)
	// Login exchanges email and password for a bearer token.
	Login(ctx context.Context, email, password string) (LoginResult, error)
}
