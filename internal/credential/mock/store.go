package credentialmock

import (
	"context"
	"sync"

	"github.com/paymesh/session-gate/internal/credential"
	"github.com/paymesh/session-gate/internal/serviceerr"
)

type StoreOption func(*Store)

type Store struct {
	mu   sync.Mutex
	cred credential.Credential
	set  bool

	loadErr, saveErr, clearErr error
}

func WithCredential(cred credential.Credential) StoreOption {
	return func(s *Store) {
		s.cred = cred
		s.set = true
	}
}
func WithLoadError(err error) StoreOption {
	return func(s *Store) { s.loadErr = err }
}
func WithSaveError(err error) StoreOption {
	return func(s *Store) { s.saveErr = err }
}
func WithClearError(err error) StoreOption {
	return func(s *Store) { s.clearErr = err }
}

var _ = credential.Store(&Store{})

func NewInMemStore(opts ...StoreOption) *Store {
	s := &Store{}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func (s *Store) Load(_ context.Context) (credential.Credential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loadErr != nil {
		return credential.Credential{}, s.loadErr
	}
	if !s.set {
		return credential.Credential{}, serviceerr.ErrNotFound
	}
	return s.cred, nil
}

func (s *Store) Save(_ context.Context, cred credential.Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.saveErr != nil {
		return s.saveErr
	}
	s.cred = cred
	s.set = true
	return nil
}

func (s *Store) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.clearErr != nil {
		return s.clearErr
	}
	s.cred = credential.Credential{}
	s.set = false
	return nil
}

// Stored returns the current record without the Store contract semantics.
// Test helper.
func (s *Store) Stored() (credential.Credential, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cred, s.set
}
