// Package credential defines the persisted credential record and the storage
// contract for it. The record is the server-side analog of the dashboard's
// browser storage: bearer token, account identifier and the last-known
// profile snapshot.
package credential

import (
	"context"
	"encoding/json"
)

// Credential is the persisted authentication record. An empty Token means the
// holder is never treated as authenticated.
type Credential struct {
	Token     string          `json:"authToken"`
	AccountID string          `json:"businessId"`
	Profile   json.RawMessage `json:"userData,omitempty"`
}

// IsZero reports whether no credential material is stored.
func (c Credential) IsZero() bool {
	return c.Token == "" && c.AccountID == "" && len(c.Profile) == 0
}

type Store interface {
	// Load returns the stored credential. A store with no record returns
	// serviceerr.ErrNotFound.
	Load(ctx context.Context) (Credential, error)
	Save(ctx context.Context, cred Credential) error
	// Clear removes the stored credential. Clearing an empty store is not an
	// error.
	Clear(ctx context.Context) error
}
