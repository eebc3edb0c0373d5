package auth

import "context"

type contextKey struct{}

var claimsKey = contextKey{}

// WithClaims кладет пользователя в контекст запроса
func WithClaims(ctx context.Context, claims Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

func ClaimsFromContext(ctx context.Context) (Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(Claims)
	return claims, ok
}
