package store

import (
	"context"
	"testing"

	"user-consent/internal/model"

	"github.com/stretchr/testify/require"
)

func modelUser(email string, password *string) (*model.User, error) {
	return model.NewUser(email, password, true, "Alice")
}

func TestFakeStore(t *testing.T) {
	ctx := context.Background()
	f := &FakeStore{}
	require.Panics(t, func() { f.List(ctx) })
	require.Panics(t, func() { f.Get(ctx, 1) })
	require.Panics(t, func() { f.Create(ctx, nil) })
	require.Panics(t, func() { f.Update(ctx, nil) })
	require.Panics(t, func() { f.Delete(ctx, 1) })
	require.NoError(t, f.Ping(ctx))

	called := map[string]bool{}
	f.ListFn = func(context.Context) ([]*model.User, error) { called["list"] = true; return nil, nil }
	f.GetFn = func(context.Context, int) (*model.User, error) { called["get"] = true; return nil, ErrNotFound }
	f.CreateFn = func(context.Context, *model.User) error { called["create"] = true; return nil }
	f.UpdateFn = func(context.Context, *model.User) error { called["update"] = true; return nil }
	f.DeleteFn = func(context.Context, int) error { called["delete"] = true; return nil }

	_, _ = f.List(ctx)
	_, err := f.Get(ctx, 1)
	require.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, f.Create(ctx, nil))
	require.NoError(t, f.Update(ctx, nil))
	require.NoError(t, f.Delete(ctx, 1))
	require.Len(t, called, 5)
}
