package middleware

import (
	"net/http"

	"github.com/denmor86/ya-wallet/internal/helpers"
	"github.com/go-chi/jwtauth/v5"
)

// TokenHandle — проверка токена после jwtauth.Verifier.
// Запрос без токена отклоняется с кодом 400, запрос
// с неверным или истёкшим токеном - с кодом 401.
func TokenHandle(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			helpers.WriteMessage(w, http.StatusBadRequest, "No token provided")
			return
		}

		token, _, err := jwtauth.FromContext(r.Context())
		if err != nil || token == nil {
			helpers.WriteMessage(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		h.ServeHTTP(w, r)
	})
}
