package middleware

import (
	"errors"
	"net/http"

	"github.com/dentabookhq/core/model"
)

type ContextKey int

const (
	ContextAuth ContextKey = iota
	ContextTenant
)

func Extract(r *http.Request, withAuth bool) (model.Tenant, model.Auth, error) {
	ctx := r.Context()
	tenant, ok := ctx.Value(ContextTenant).(model.Tenant)
	if !ok {
		return model.Tenant{}, model.Auth{}, errors.New("could not find tenant")
	}

	auth, ok := ctx.Value(ContextAuth).(model.Auth)
	if !ok && withAuth {
		return model.Tenant{}, model.Auth{}, errors.New("invalid DentaBook key")
	}

	return tenant, auth, nil
}
