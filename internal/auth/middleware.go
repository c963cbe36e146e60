package auth

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/csbs-dept/portal-api/internal/wire"
	"github.com/golang-jwt/jwt/v5"
)

// Middleware rejects requests without a valid admin bearer token. Read
// endpoints stay public; routes.go decides which handlers sit behind this.
func (h *AuthHandler) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenString == "" {
			wire.WriteError(w, http.StatusUnauthorized, "No token provided. Authorization denied.")
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(h.cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			wire.WriteError(w, http.StatusUnauthorized, "Invalid or expired token.")
			return
		}

		next.ServeHTTP(w, r)
	})
}
