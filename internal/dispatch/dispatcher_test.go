package dispatch

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type ping struct{ N int }
type pong struct{ N int }
type other struct{}

func TestSend_RoutesByType(t *testing.T) {
	reg := NewRegistry()
	Handle(reg, func(ctx context.Context, req ping) (pong, error) {
		return pong{N: req.N + 1}, nil
	})
	Handle(reg, func(ctx context.Context, req other) (string, error) {
		return "other", nil
	})

	d, err := reg.Build(ping{}, other{})
	require.NoError(t, err)

	res, err := Send[pong](context.Background(), d, ping{N: 41})
	require.NoError(t, err)
	require.Equal(t, 42, res.N)

	s, err := Send[string](context.Background(), d, other{})
	require.NoError(t, err)
	require.Equal(t, "other", s)
}

func TestSend_PassesHandlerErrorThrough(t *testing.T) {
	boom := errors.New("boom")
	reg := NewRegistry()
	Handle(reg, func(ctx context.Context, req ping) (pong, error) {
		return pong{}, boom
	})
	d, err := reg.Build(ping{})
	require.NoError(t, err)

	_, err = Send[pong](context.Background(), d, ping{})
	require.Same(t, boom, err)
}

func TestSend_Errors(t *testing.T) {
	reg := NewRegistry()
	called := false
	Handle(reg, func(ctx context.Context, req ping) (pong, error) {
		called = true
		return pong{}, nil
	})
	d, err := reg.Build(ping{})
	require.NoError(t, err)

	_, err = Send[pong](context.Background(), d, other{})
	require.ErrorIs(t, err, ErrNoHandler)

	_, err = Send[string](context.Background(), d, ping{})
	require.ErrorIs(t, err, ErrResultType)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	called = false
	_, err = Send[pong](ctx, d, ping{})
	require.ErrorIs(t, err, context.Canceled)
	require.False(t, called)
}

func TestBuild_MissingHandler(t *testing.T) {
	reg := NewRegistry()
	Handle(reg, func(ctx context.Context, req ping) (pong, error) { return pong{}, nil })

	_, err := reg.Build(ping{}, other{})
	require.ErrorIs(t, err, ErrNoHandler)
}

func TestBuild_DuplicateHandler(t *testing.T) {
	reg := NewRegistry()
	Handle(reg, func(ctx context.Context, req ping) (pong, error) { return pong{}, nil })
	Handle(reg, func(ctx context.Context, req ping) (pong, error) { return pong{N: 1}, nil })

	_, err := reg.Build(ping{})
	require.ErrorIs(t, err, ErrDuplicateHandler)
}

func TestBuild_UnexpectedHandler(t *testing.T) {
	reg := NewRegistry()
	Handle(reg, func(ctx context.Context, req ping) (pong, error) { return pong{}, nil })
	Handle(reg, func(ctx context.Context, req other) (pong, error) { return pong{}, nil })

	_, err := reg.Build(ping{})
	require.ErrorIs(t, err, ErrUnexpectedHandler)
	require.NotErrorIs(t, err, ErrNoHandler)
}
