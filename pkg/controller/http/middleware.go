package http

import (
	"context"
	"net/http"

	"github.com/umlindi-lab/wardrisk/pkg/domain/model"
	"github.com/umlindi-lab/wardrisk/pkg/domain/types"
	"github.com/umlindi-lab/wardrisk/pkg/usecase"
)

const tokenCookieName = "token_id"

type ctxTokenKey struct{}

func contextWithToken(ctx context.Context, token *model.Token) context.Context {
	return context.WithValue(ctx, ctxTokenKey{}, token)
}

func tokenFromContext(ctx context.Context) *model.Token {
	token, _ := ctx.Value(ctxTokenKey{}).(*model.Token)
	return token
}

// authMiddleware validates the token cookie for protected requests. When
// the login gate is disabled requests pass through without a token.
func authMiddleware(authUC *usecase.AuthUseCase) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(tokenCookieName)
			if err != nil {
				if !authUC.Enabled() {
					next.ServeHTTP(w, r)
					return
				}
				http.Error(w, "Authentication required", http.StatusUnauthorized)
				return
			}

			token, err := authUC.ValidateToken(r.Context(), types.TokenID(cookie.Value))
			if err != nil {
				if !authUC.Enabled() {
					next.ServeHTTP(w, r)
					return
				}
				http.Error(w, "Invalid authentication token", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(contextWithToken(r.Context(), token)))
		})
	}
}

// adminMiddleware requires a valid admin token
func adminMiddleware(authUC *usecase.AuthUseCase) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := tokenFromContext(r.Context())
			if token == nil || !token.Admin {
				http.Error(w, "Admin access required", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
