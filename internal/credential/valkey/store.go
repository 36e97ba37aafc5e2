// Package credentialvalkey backs the credential store with ValKey so several
// gate replicas can share one credential record.
package credentialvalkey

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/valkey-io/valkey-go"

	"github.com/paymesh/session-gate/internal/credential"
	"github.com/paymesh/session-gate/internal/serviceerr"
)

const objectTypeCredential = "credential"

var (
	ErrGetCredential   = errors.New("getting credential from store")
	ErrStoreCredential = errors.New("setting credential into storage")
)

type Store struct {
	valkey valkey.Client
	prefix string
}

var _ = credential.Store(&Store{})

func NewStore(valkeyClient valkey.Client, prefix string) *Store {
	prefix = strings.TrimSuffix(prefix, ":")
	return &Store{
		valkey: valkeyClient,
		prefix: prefix,
	}
}

func (s *Store) Load(ctx context.Context) (credential.Credential, error) {
	var cred credential.Credential

	bytes, err := s.valkey.Do(ctx, s.valkey.B().Get().Key(s.key()).Build()).AsBytes()
	if err != nil {
		valkeyErr, ok := valkey.IsValkeyErr(err)
		if ok && valkeyErr.IsNil() {
			return credential.Credential{}, errors.Join(valkeyErr, serviceerr.ErrNotFound)
		}

		return credential.Credential{}, errors.Join(ErrGetCredential, err)
	}

	if err := json.Unmarshal(bytes, &cred); err != nil {
		return credential.Credential{}, fmt.Errorf("decoding credential: %w", err)
	}

	return cred, nil
}

func (s *Store) Save(ctx context.Context, cred credential.Credential) error {
	bytes, err := json.Marshal(cred)
	if err != nil {
		return fmt.Errorf("encoding credential: %w", err)
	}

	if err := s.valkey.Do(ctx, s.valkey.B().Set().Key(s.key()).Value(valkey.BinaryString(bytes)).Build()).Error(); err != nil {
		return errors.Join(ErrStoreCredential, err)
	}

	return nil
}

func (s *Store) Clear(ctx context.Context) error {
	if err := s.valkey.Do(ctx, s.valkey.B().Del().Key(s.key()).Build()).Error(); err != nil {
		return fmt.Errorf("executing del command: %w", err)
	}

	return nil
}

func (s *Store) key() string {
	return fmt.Sprintf("%s:%s", s.prefix, objectTypeCredential)
}
