package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/Brandea-ai/ck-immo-finanz/internal/models"
)

type ctxKey string

const (
	CtxBeraterID ctxKey = "beraterID"
	CtxRolle     ctxKey = "rolle"
)

// Middleware prüft den Bearer-Token und legt Berater-ID und Rolle in den
// Request-Kontext.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}
		h := r.Header.Get("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			http.Error(w, "Token fehlt", http.StatusUnauthorized)
			return
		}
		raw := strings.TrimPrefix(h, "Bearer ")
		claims, err := ParseUndValidiere(raw)
		if err != nil {
			http.Error(w, "Token ungültig", http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), CtxBeraterID, claims.BeraterID)
		ctx = context.WithValue(ctx, CtxRolle, claims.Rolle)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireGF lässt nur die Geschäftsführung durch.
func RequireGF(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		v := r.Context().Value(CtxRolle)
		if rolle, ok := v.(models.Rolle); !ok || rolle != models.RolleGF {
			http.Error(w, "nur für Geschäftsführung", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
