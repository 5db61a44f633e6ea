package middleware

import (
	"context"
	"net/http"

	"github.com/dentabookhq/core/cache"
	"github.com/dentabookhq/core/database"
	"github.com/dentabookhq/core/model"
)

// WithTenant resolves the clinic network this request is aimed at from
// the DB-PUBLIC-KEY header and stores it in the request context.
func WithTenant(datastore database.Persister, volatile cache.Volatilizer) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get("DB-PUBLIC-KEY")

			if len(key) == 0 {
				key = r.URL.Query().Get("pk")
			}

			if len(key) == 0 {
				http.Error(w, "missing DentaBook public key", http.StatusUnauthorized)
				return
			}

			ctx := r.Context()

			var tenant model.Tenant
			if err := volatile.GetTyped("tenant:"+key, &tenant); err != nil {
				t, err := datastore.FindTenant(key)
				if err != nil {
					http.Error(w, "invalid DentaBook public key", http.StatusUnauthorized)
					return
				} else if !t.IsActive {
					http.Error(w, "this account is not active", http.StatusUnauthorized)
					return
				}

				tenant = t

				if err := volatile.SetTyped("tenant:"+key, tenant); err != nil {
					http.Error(w, err.Error(), http.StatusInternalServerError)
					return
				}
			}

			ctx = context.WithValue(ctx, ContextTenant, tenant)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
