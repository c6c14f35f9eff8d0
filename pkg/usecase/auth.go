package usecase

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/umlindi-lab/wardrisk/pkg/domain/interfaces"
	"github.com/umlindi-lab/wardrisk/pkg/domain/model"
	"github.com/umlindi-lab/wardrisk/pkg/domain/types"
	"github.com/umlindi-lab/wardrisk/pkg/utils/logging"
)

const defaultTokenTTL = 12 * time.Hour

// AuthUseCase implements the shared-secret login gate. Secrets are compared
// in constant time; there is no per-user identity.
type AuthUseCase struct {
	repo         interfaces.Repository
	accessSecret string
	adminSecret  string
	tokenTTL     time.Duration
}

// AuthOption is a functional option for AuthUseCase
type AuthOption func(*AuthUseCase)

// WithTokenTTL overrides the default token lifetime
func WithTokenTTL(ttl time.Duration) AuthOption {
	return func(uc *AuthUseCase) {
		uc.tokenTTL = ttl
	}
}

// NewAuthUseCase creates the login gate. An empty accessSecret disables
// authentication for survey endpoints; admin endpoints always require the
// admin secret when one is set.
func NewAuthUseCase(repo interfaces.Repository, accessSecret, adminSecret string, options ...AuthOption) *AuthUseCase {
	uc := &AuthUseCase{
		repo:         repo,
		accessSecret: accessSecret,
		adminSecret:  adminSecret,
		tokenTTL:     defaultTokenTTL,
	}

	for _, opt := range options {
		opt(uc)
	}

	return uc
}

// Enabled reports whether the survey endpoints require a login
func (uc *AuthUseCase) Enabled() bool {
	return uc.accessSecret != ""
}

// Login exchanges the shared secret for an opaque session token. The admin
// secret yields an admin token.
func (uc *AuthUseCase) Login(ctx context.Context, secret string) (*model.Token, error) {
	var admin bool
	switch {
	case uc.adminSecret != "" && subtle.ConstantTimeCompare([]byte(secret), []byte(uc.adminSecret)) == 1:
		admin = true
	case uc.Enabled() && subtle.ConstantTimeCompare([]byte(secret), []byte(uc.accessSecret)) == 1:
		admin = false
	case !uc.Enabled():
		// Gate disabled, anyone may enter
		admin = false
	default:
		return nil, goerr.Wrap(ErrInvalidCredentials, "login rejected", goerr.T(types.ErrTagValidation))
	}

	token := model.NewToken(admin, uc.tokenTTL)
	if err := uc.repo.PutToken(ctx, token); err != nil {
		return nil, goerr.Wrap(err, "failed to store token")
	}

	logging.From(ctx).Info("login", "admin", admin, "expiresAt", token.ExpiresAt)

	return token, nil
}

// ValidateToken looks up a token and checks its expiry. Expired tokens are
// removed eagerly.
func (uc *AuthUseCase) ValidateToken(ctx context.Context, tokenID types.TokenID) (*model.Token, error) {
	token, err := uc.repo.GetToken(ctx, tokenID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get token")
	}

	if token.Expired(time.Now()) {
		if err := uc.repo.DeleteToken(ctx, tokenID); err != nil {
			logging.From(ctx).Warn("failed to delete expired token", "error", err.Error())
		}
		return nil, goerr.Wrap(ErrTokenExpired, "token expired", goerr.V("tokenID", tokenID))
	}

	return token, nil
}

// Logout invalidates a token
func (uc *AuthUseCase) Logout(ctx context.Context, tokenID types.TokenID) error {
	if err := uc.repo.DeleteToken(ctx, tokenID); err != nil {
		return goerr.Wrap(err, "failed to delete token")
	}
	return nil
}
