package middleware

import "context"

type holderKey struct{}

type userHolder struct {
	id int64
}

func withUserHolder(ctx context.Context, h *userHolder) context.Context {
	return context.WithValue(ctx, holderKey{}, h)
}

// recordUser publishes an authenticated user id to an enclosing Logger.
func recordUser(ctx context.Context, id int64) {
	if h, ok := ctx.Value(holderKey{}).(*userHolder); ok {
		h.id = id
	}
}
