// Package gate decides whether a navigation to a protected dashboard view is
// allowed. It owns the short-lived verification cache and the compliance
// redirect for accounts that have not submitted KYC documents.
package gate

import (
	"context"
	"errors"

	slogctx "github.com/veqryn/slog-context"

	"github.com/paymesh/session-gate/internal/config"
	"github.com/paymesh/session-gate/internal/credential"
	"github.com/paymesh/session-gate/internal/identity"
	"github.com/paymesh/session-gate/internal/serviceerr"
)

const loginNotice = "Please log in to access this page."

type Gate struct {
	credentials credential.Store
	identity    identity.Client
	cache       Cache
	notifier    Notifier

	cfg config.Gate
}

func New(cfg config.Gate, credentials credential.Store, client identity.Client, cache Cache, notifier Notifier) (*Gate, error) {
	if credentials == nil {
		return nil, errors.New("credential store is required")
	}
	if client == nil {
		return nil, errors.New("identity client is required")
	}
	if cache == nil {
		cache = NewMemoryCache()
	}
	if notifier == nil {
		notifier = LogNotifier{}
	}

	cfg.ApplyDefaults()

	return &Gate{
		credentials: credentials,
		identity:    client,
		cache:       cache,
		notifier:    notifier,
		cfg:         cfg,
	}, nil
}

// Evaluate decides whether a navigation to targetPath may proceed. Remote
// failures never propagate; the caller always receives a decision. Depending
// on cache state and the target path this costs zero, one or two calls to the
// identity API.
func (g *Gate) Evaluate(ctx context.Context, targetPath string) Decision {
	ctx = slogctx.With(ctx, "target_path", targetPath)

	cred, err := g.credentials.Load(ctx)
	if err != nil && !errors.Is(err, serviceerr.ErrNotFound) {
		// An unreadable store is indistinguishable from a tampered one.
		// Fail closed: drop local state and send the user to login.
		slogctx.Error(ctx, "Failed to load credential", "error", err)
		g.clearAuthState(ctx)

		return Decision{Action: ActionRedirectToLogin, TargetPath: targetPath}
	}

	if cred.Token == "" {
		// No token means no session; silent redirect without a network call.
		return Decision{Action: ActionRedirectToLogin, TargetPath: targetPath}
	}

	if !g.cache.Verified(ctx) {
		if _, err := g.identity.Me(ctx, cred.Token); err != nil {
			slogctx.Info(ctx, "Identity verification failed", "error", err)
			g.clearAuthState(ctx)
			g.notifier.Notify(ctx, loginNotice)

			return Decision{Action: ActionRedirectToLogin, TargetPath: targetPath}
		}

		g.cache.MarkVerified(ctx, g.cfg.SessionTTL)
		slogctx.Debug(ctx, "Identity verified", "ttl", g.cfg.SessionTTL)
	}

	if !g.isHomePath(targetPath) {
		return Decision{Action: ActionAllow, TargetPath: targetPath}
	}

	profile, err := g.identity.Me(ctx, cred.Token)
	if err != nil {
		// A failed KYC lookup is not an auth failure: the session stays
		// verified and nothing is cleared. The account is treated as not
		// having submitted KYC yet.
		slogctx.Warn(ctx, "KYC status check failed, treating as not submitted", "error", err)

		return Decision{Action: ActionRedirectToCompliance, TargetPath: targetPath}
	}

	if !profile.KYCSubmitted {
		return Decision{Action: ActionRedirectToCompliance, TargetPath: targetPath}
	}

	return Decision{Action: ActionAllow, TargetPath: targetPath}
}

// Invalidate drops the verification cache and the stored credential. Logout
// calls it directly; so does any collaborator that sees a 401/403 on an
// unrelated API call. Idempotent.
func (g *Gate) Invalidate(ctx context.Context) {
	g.clearAuthState(ctx)
}

// Login authenticates against the identity API and persists the resulting
// credential. The verification cache is left untouched; the next Evaluate
// performs a fresh identity check.
func (g *Gate) Login(ctx context.Context, email, password string) (identity.LoginResult, error) {
	result, err := g.identity.Login(ctx, email, password)
	if err != nil {
		return identity.LoginResult{}, err
	}

	cred := credential.Credential{
		Token:     result.AccessToken,
		AccountID: result.BusinessID,
	}
	if err := g.credentials.Save(ctx, cred); err != nil {
		return identity.LoginResult{}, err
	}

	return result, nil
}

func (g *Gate) clearAuthState(ctx context.Context) {
	g.cache.Clear(ctx)

	if err := g.credentials.Clear(ctx); err != nil {
		slogctx.Error(ctx, "Failed to clear credential store", "error", err)
	}
}

func (g *Gate) isHomePath(targetPath string) bool {
	for _, p := range g.cfg.HomePaths {
		if targetPath == p {
			return true
		}
	}

	return false
}
