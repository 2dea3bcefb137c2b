package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/user/moviestore/internal/model"
	"github.com/user/moviestore/internal/queue"
	"github.com/user/moviestore/internal/repository"
	"github.com/user/moviestore/internal/repository/memory"
	"github.com/user/moviestore/internal/validation"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var testNow = time.Date(2025, time.March, 10, 9, 30, 0, 0, time.UTC)

type fakeTokens struct{}

func (fakeTokens) Issue(user *model.User) (string, time.Time, error) {
	return "token-" + user.Username, testNow.Add(time.Hour), nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []queue.OrderPlaced
	err    error
}

func (p *recordingPublisher) PublishOrderPlaced(_ context.Context, event queue.OrderPlaced) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

// clock 每次调用前进一秒
type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

type fixture struct {
	repos     *repository.Repositories
	deps      Deps
	publisher *recordingPublisher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	repos := memory.New()
	pub := &recordingPublisher{}
	c := &clock{now: testNow}
	return &fixture{
		repos:     repos,
		publisher: pub,
		deps: Deps{
			Repos:      repos,
			Validator:  validation.NewWithClock(func() time.Time { return testNow }),
			Tokens:     fakeTokens{},
			Publisher:  pub,
			Logger:     zap.NewNop(),
			BcryptCost: bcrypt.MinCost,
			Now:        c.Now,
		},
	}
}

func requireKind(t *testing.T, err error, kind error) {
	t.Helper()
	require.Error(t, err)
	require.True(t, errors.Is(err, kind), "want %v, got %v", kind, err)
}

func (f *fixture) director(t *testing.T, name, surname string) *DirectorResponse {
	t.Helper()
	d, err := NewDirectorHandler(f.deps).Create(context.Background(), CreateDirector{
		Name:        name,
		Surname:     surname,
		DateOfBirth: model.NewDate(testNow.AddDate(-50, 0, 0)),
	})
	require.NoError(t, err)
	return d
}

func (f *fixture) actor(t *testing.T, name, surname string) *ActorResponse {
	t.Helper()
	a, err := NewActorHandler(f.deps).Create(context.Background(), CreateActor{
		Name:        name,
		Surname:     surname,
		DateOfBirth: model.NewDate(testNow.AddDate(-30, 0, 0)),
	})
	require.NoError(t, err)
	return a
}

func (f *fixture) movie(t *testing.T, title string, directorID uuid.UUID) *MovieResponse {
	t.Helper()
	m, err := NewMovieHandler(f.deps).Create(context.Background(), CreateMovie{
		Title:      title,
		Year:       1995,
		Genre:      model.GenreThriller,
		DirectorID: directorID,
		Price:      12.5,
	})
	require.NoError(t, err)
	return m
}

func (f *fixture) user(t *testing.T, username string) *UserResponse {
	t.Helper()
	u, err := NewUserHandler(f.deps).Register(context.Background(), RegisterUser{
		FirstName:       "Alice",
		LastName:        "Liddell",
		Username:        username,
		Email:           username + "@x.com",
		Password:        "Password1!",
		ConfirmPassword: "Password1!",
		FavoriteGenres:  []model.Genre{model.GenreAction, model.GenreComedy},
	})
	require.NoError(t, err)
	return u
}

func TestNewDispatcher_RegistersEveryRequest(t *testing.T) {
	f := newFixture(t)
	d, err := NewDispatcher(f.deps)
	require.NoError(t, err)
	require.NotNil(t, d)
}
