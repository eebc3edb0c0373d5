package handler

import (
	"net/http"
	"strings"

	"github.com/EFREI-M2-Dev/Back-Web-Final-Fred-Choco-SL/internal/auth"
	"github.com/EFREI-M2-Dev/Back-Web-Final-Fred-Choco-SL/pkg/respond"
)

// Authenticate проверяет bearer-токен и кладет claims в контекст запроса.
// Без валидного токена до хэндлера запрос не доходит
func Authenticate(tokens *auth.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				respond.Error(w, r, http.StatusUnauthorized, "authorization token missing or invalid")
				return
			}

			claims, err := tokens.Parse(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				respond.Error(w, r, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithClaims(r.Context(), claims)))
		})
	}
}
