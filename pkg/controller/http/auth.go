package http

import (
	"encoding/json"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/umlindi-lab/wardrisk/pkg/domain/types"
	"github.com/umlindi-lab/wardrisk/pkg/usecase"
	"github.com/umlindi-lab/wardrisk/pkg/utils/errutil"
)

// loginHandler exchanges the shared secret for a token cookie
func loginHandler(authUC *usecase.AuthUseCase) http.HandlerFunc {
	type request struct {
		Secret string `json:"secret"`
	}
	type response struct {
		Admin bool `json:"admin"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid login request", goerr.T(types.ErrTagValidation)))
			return
		}

		token, err := authUC.Login(r.Context(), req.Secret)
		if err != nil {
			http.Error(w, "login failed", http.StatusUnauthorized)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     tokenCookieName,
			Value:    token.ID.String(),
			Path:     "/",
			Expires:  token.ExpiresAt,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		respondJSON(w, r, http.StatusOK, response{Admin: token.Admin})
	}
}

// logoutHandler invalidates the token and clears the cookie
func logoutHandler(authUC *usecase.AuthUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie(tokenCookieName); err == nil {
			if err := authUC.Logout(r.Context(), types.TokenID(cookie.Value)); err != nil {
				errutil.HandleHTTP(r.Context(), w, err)
				return
			}
		}

		http.SetCookie(w, &http.Cookie{
			Name:     tokenCookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		w.WriteHeader(http.StatusNoContent)
	}
}
