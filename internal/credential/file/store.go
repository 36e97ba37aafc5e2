// Package credentialfile stores the credential record as a JSON file on the
// local filesystem, mirroring the key layout the dashboard keeps in browser
// storage (authToken, userData, businessId).
package credentialfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/paymesh/session-gate/internal/credential"
	"github.com/paymesh/session-gate/internal/serviceerr"
)

type Store struct {
	path string
}

var _ = credential.Store(&Store{})

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Load(_ context.Context) (credential.Credential, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return credential.Credential{}, serviceerr.ErrNotFound
		}
		return credential.Credential{}, fmt.Errorf("reading credential file: %w", err)
	}

	var cred credential.Credential
	if err := json.Unmarshal(data, &cred); err != nil {
		return credential.Credential{}, fmt.Errorf("decoding credential file: %w", err)
	}

	return cred, nil
}

func (s *Store) Save(_ context.Context, cred credential.Credential) error {
	data, err := json.Marshal(cred)
	if err != nil {
		return fmt.Errorf("encoding credential: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("creating credential directory: %w", err)
	}

	// Write-then-rename so a concurrent Load never observes a partial record.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("writing credential file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replacing credential file: %w", err)
	}

	return nil
}

func (s *Store) Clear(_ context.Context) error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing credential file: %w", err)
	}

	return nil
}
