package cli

import (
	"context"

	"github.com/example/gestor/internal/ctxutil"
	"github.com/example/gestor/internal/wire"
)

// sessionContext builds the command context, attaching the persisted session
// usuario as the actor when one exists. Commands that mutate will be rejected
// by the services if no actor is present.
func sessionContext() (context.Context, error) {
	ctx := context.Background()

	u, err := wire.SesionService().Current(ctx)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return ctx, nil
	}

	return ctxutil.WithActor(ctx, &ctxutil.Actor{Email: u.Email, Rol: u.Rol}), nil
}
