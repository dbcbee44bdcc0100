// Package ctxutil provides context utilities that can be safely imported anywhere.
// This package has no internal dependencies to avoid import cycles.
package ctxutil

import "context"

// Actor identifies the usuario performing the current operation.
// It is set once per session (CLI) or per request (HTTP) and read by services.
type Actor struct {
	Email string
	Rol   string
}

// actorKey is the context key for the current actor.
type actorKey struct{}

// WithActor returns a context with the actor embedded.
func WithActor(ctx context.Context, actor *Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// ActorFromContext returns the actor from context, or nil if not set.
func ActorFromContext(ctx context.Context) *Actor {
	if v := ctx.Value(actorKey{}); v != nil {
		return v.(*Actor)
	}
	return nil
}
