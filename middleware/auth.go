package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/dentabookhq/core/cache"
	"github.com/dentabookhq/core/database"
	"github.com/dentabookhq/core/model"

	"github.com/gbrlsnchs/jwt/v3"
)

func RequireAuth(datastore database.Persister, volatile cache.Volatilizer) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get("Authorization")

			if len(key) == 0 {
				http.Error(w, "missing authorization HTTP header", http.StatusUnauthorized)
				return
			} else if !strings.HasPrefix(key, "Bearer ") {
				http.Error(w,
					fmt.Sprintf("invalid authorization HTTP header, should be: Bearer your-token, but we got %s", key),
					http.StatusBadRequest,
				)
				return
			}

			key = strings.Replace(key, "Bearer ", "", -1)

			ctx := r.Context()

			auth, err := ValidateAuthKey(datastore, volatile, ctx, key)
			if err != nil {
				http.Error(w, err.Error(), http.StatusUnauthorized)
				return
			}

			ctx = context.WithValue(ctx, ContextAuth, auth)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func ValidateAuthKey(datastore database.Persister, volatile cache.Volatilizer, ctx context.Context, key string) (model.Auth, error) {
	a := model.Auth{}

	var pl model.JWTPayload
	if _, err := jwt.Verify([]byte(key), model.HashSecret, &pl); err != nil {
		return a, fmt.Errorf("could not verify your authentication token: %s", err.Error())
	}

	tenant, ok := ctx.Value(ContextTenant).(model.Tenant)
	if !ok {
		return a, fmt.Errorf("invalid DentaBook public key")
	}

	var auth model.Auth
	if err := volatile.GetTyped(pl.Token, &auth); err == nil {
		return auth, nil
	}

	userID, token, err := model.ParseSessionToken(pl.Token)
	if err != nil {
		return a, err
	}

	u, err := datastore.FindUserByToken(tenant.Name, userID, token)
	if err != nil {
		return a, fmt.Errorf("error retrieving your session: %s", err.Error())
	}

	a = model.Auth{
		UserID: u.ID,
		Email:  u.Email,
		Role:   u.Role,
		Token:  u.Token,
	}
	if err := volatile.SetTyped(pl.Token, a); err != nil {
		return a, err
	}

	return a, nil
}

// RequireRole rejects authenticated users below a minimum role, staff
// only endpoints use RequireRole(model.RoleStaff).
func RequireRole(minRole int) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth, ok := r.Context().Value(ContextAuth).(model.Auth)
			if !ok {
				http.Error(w, "missing authentication", http.StatusUnauthorized)
				return
			} else if auth.Role < minRole {
				http.Error(w, "not enough permission", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
