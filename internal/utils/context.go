package utils

import (
	"context"

	"offerdeck/models"
)

// ctxKey is a private context key type so that values stored by this package
// cannot collide with keys from other packages.
type ctxKey int

// AdminCtxKey is the context key under which the session gate stores the
// verified administrator identity for downstream handlers.
const AdminCtxKey ctxKey = iota

// AdminFromContext returns the verified administrator identity placed in
// ctx by the session gate, and whether one is present.
//
// Handlers behind the gate can rely on ok being true; the second return
// exists so the same helper stays safe on unguarded routes.
func AdminFromContext(ctx context.Context) (models.AdminInfo, bool) {
	admin, ok := ctx.Value(AdminCtxKey).(models.AdminInfo)
	return admin, ok
}

// ContextWithAdmin returns a child context carrying the verified
// administrator identity.
func ContextWithAdmin(ctx context.Context, admin models.AdminInfo) context.Context {
	return context.WithValue(ctx, AdminCtxKey, admin)
}
