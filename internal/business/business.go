// Package business wires the gate to its collaborators and hosts the
// long-running and one-shot entry points used by the CLI commands.
package business

import (
	"context"
	"fmt"
	"net/http"

	"github.com/valkey-io/valkey-go"

	slogctx "github.com/veqryn/slog-context"

	"github.com/paymesh/session-gate/internal/business/server"
	"github.com/paymesh/session-gate/internal/config"
	"github.com/paymesh/session-gate/internal/credential"
	credentialfile "github.com/paymesh/session-gate/internal/credential/file"
	credentialvalkey "github.com/paymesh/session-gate/internal/credential/valkey"
	"github.com/paymesh/session-gate/internal/gate"
	"github.com/paymesh/session-gate/internal/identity"
)

// Main runs the HTTP gate service until the context is cancelled.
func Main(ctx context.Context, cfg *config.Config) error {
	g, closeFn, err := InitGate(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initialising the session gate: %w", err)
	}

	defer closeFn()

	return server.StartHTTPServer(ctx, cfg, g)
}

// CheckMain evaluates a single navigation attempt.
func CheckMain(ctx context.Context, cfg *config.Config, targetPath string) (gate.Decision, error) {
	g, closeFn, err := InitGate(ctx, cfg)
	if err != nil {
		return gate.Decision{}, fmt.Errorf("initialising the session gate: %w", err)
	}

	defer closeFn()

	return g.Evaluate(ctx, targetPath), nil
}

// LoginMain authenticates and persists the credential record.
func LoginMain(ctx context.Context, cfg *config.Config, email, password string) error {
	g, closeFn, err := InitGate(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initialising the session gate: %w", err)
	}

	defer closeFn()

	result, err := g.Login(ctx, email, password)
	if err != nil {
		return fmt.Errorf("logging in: %w", err)
	}

	slogctx.Info(ctx, "Logged in",
		"business_id", result.BusinessID,
		"email_verified", result.EmailVerified,
	)

	return nil
}

// LogoutMain clears the session cache and the stored credential.
func LogoutMain(ctx context.Context, cfg *config.Config) error {
	g, closeFn, err := InitGate(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initialising the session gate: %w", err)
	}

	defer closeFn()

	g.Invalidate(ctx)
	slogctx.Info(ctx, "Logged out")

	return nil
}

// InitGate builds the gate with the configured credential backend and the
// identity API client. The returned function releases backend resources.
func InitGate(ctx context.Context, cfg *config.Config) (*gate.Gate, func(), error) {
	creds, closeFn, err := initCredentialStore(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("initialising the credential store: %w", err)
	}

	identityClient, err := identity.NewHTTPClient(cfg.Identity.BaseURL, &http.Client{Timeout: cfg.Identity.Timeout})
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("initialising the identity client: %w", err)
	}

	g, err := gate.New(cfg.Gate, creds, identityClient, gate.NewMemoryCache(), gate.LogNotifier{})
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("constructing the gate: %w", err)
	}

	return g, closeFn, nil
}

func initCredentialStore(ctx context.Context, cfg *config.Config) (credential.Store, func(), error) {
	switch cfg.Credentials.Backend {
	case "", "file":
		slogctx.Debug(ctx, "Using the file credential store", "path", cfg.Credentials.File.Path)
		return credentialfile.NewStore(cfg.Credentials.File.Path), func() {}, nil

	case "valkey":
		client, err := valkey.NewClient(valkey.ClientOption{
			InitAddress: []string{cfg.Credentials.ValKey.Host},
		})
		if err != nil {
			return nil, nil, fmt.Errorf("initialising the valkey client: %w", err)
		}

		slogctx.Debug(ctx, "Using the valkey credential store", "host", cfg.Credentials.ValKey.Host)

		return credentialvalkey.NewStore(client, cfg.Credentials.ValKey.Prefix), client.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown credential backend: %q", cfg.Credentials.Backend)
	}
}
