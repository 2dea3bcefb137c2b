package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/user/moviestore/internal/model"
)

func TestScope_ReadsOutsideTxDoNotSeeUncommittedWrites(t *testing.T) {
	repos := New()
	actor := &model.Actor{ID: uuid.New(), Name: "Al", Surname: "Pacino", DateOfBirth: time.Date(1940, 4, 25, 0, 0, 0, 0, time.UTC), IsActive: true}

	written := make(chan struct{})
	release := make(chan struct{})
	txDone := make(chan error, 1)
	go func() {
		txDone <- repos.Tx.Execute(context.Background(), func(ctx context.Context) error {
			if err := repos.Actor.Create(ctx, actor); err != nil {
				return err
			}
			got, err := repos.Actor.FindByID(ctx, actor.ID)
			if err != nil || got == nil {
				return errors.New("write not visible inside tx")
			}
			close(written)
			<-release
			return errors.New("rollback")
		})
	}()
	select {
	case <-written:
	case err := <-txDone:
		t.Fatalf("transaction ended early: %v", err)
	}

	type result struct {
		actor *model.Actor
		err   error
	}
	readDone := make(chan result, 1)
	go func() {
		got, err := repos.Actor.FindByID(context.Background(), actor.ID)
		readDone <- result{actor: got, err: err}
	}()

	select {
	case <-readDone:
		t.Fatal("read outside the transaction did not wait for it")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	require.EqualError(t, <-txDone, "rollback")
	res := <-readDone
	require.NoError(t, res.err)
	require.Nil(t, res.actor)
}

func TestScope_NestedExecuteReusesOuterTx(t *testing.T) {
	repos := New()
	director := &model.Director{ID: uuid.New(), Name: "Michael", Surname: "Mann", DateOfBirth: time.Date(1943, 2, 5, 0, 0, 0, 0, time.UTC), IsActive: true}

	err := repos.Tx.Execute(context.Background(), func(ctx context.Context) error {
		return repos.Tx.Execute(ctx, func(ctx context.Context) error {
			return repos.Director.Create(ctx, director)
		})
	})
	require.NoError(t, err)

	got, err := repos.Director.FindByID(context.Background(), director.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
}

func TestDirector_ActiveNameConflict(t *testing.T) {
	repos := New()
	ctx := context.Background()
	dob := time.Date(1943, 2, 5, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repos.Director.Create(ctx, &model.Director{ID: uuid.New(), Name: "Michael", Surname: "Mann", DateOfBirth: dob, IsActive: true}))
	err := repos.Director.Create(ctx, &model.Director{ID: uuid.New(), Name: "Michael", Surname: "Mann", DateOfBirth: dob, IsActive: true})
	require.ErrorIs(t, err, model.ErrConflict)

	require.NoError(t, repos.Director.Create(ctx, &model.Director{ID: uuid.New(), Name: "Michael", Surname: "Mann", DateOfBirth: dob}))
}
