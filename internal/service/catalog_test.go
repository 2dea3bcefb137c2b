package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/user/moviestore/internal/model"
)

func TestDirector_CreateActive(t *testing.T) {
	f := newFixture(t)
	d := f.director(t, "Michael", "Mann")
	require.True(t, d.IsActive)
	require.NotEqual(t, uuid.Nil, d.ID)

	got, err := NewDirectorHandler(f.deps).Get(context.Background(), GetDirectorByID{ID: d.ID})
	require.NoError(t, err)
	require.Equal(t, d, got)
}

func TestDirector_DuplicateActiveNameConflicts(t *testing.T) {
	f := newFixture(t)
	f.director(t, "Michael", "Mann")

	_, err := NewDirectorHandler(f.deps).Create(context.Background(), CreateDirector{
		Name: "Michael", Surname: "Mann", DateOfBirth: model.NewDate(testNow.AddDate(-60, 0, 0)),
	})
	requireKind(t, err, model.ErrConflict)
}

func TestDirector_NameReusableAfterDelete(t *testing.T) {
	f := newFixture(t)
	h := NewDirectorHandler(f.deps)
	d := f.director(t, "Michael", "Mann")

	deleted, err := h.Delete(context.Background(), DeleteDirector{ID: d.ID})
	require.NoError(t, err)
	require.False(t, deleted.IsActive)

	again := f.director(t, "Michael", "Mann")
	require.NotEqual(t, d.ID, again.ID)

	list, err := h.List(context.Background(), ListDirectors{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, again.ID, list[0].ID)
}

func TestDirector_DoubleDeleteConflicts(t *testing.T) {
	f := newFixture(t)
	h := NewDirectorHandler(f.deps)
	d := f.director(t, "Michael", "Mann")

	_, err := h.Delete(context.Background(), DeleteDirector{ID: d.ID})
	require.NoError(t, err)
	_, err = h.Delete(context.Background(), DeleteDirector{ID: d.ID})
	requireKind(t, err, model.ErrConflict)

	_, err = h.Delete(context.Background(), DeleteDirector{ID: uuid.New()})
	requireKind(t, err, model.ErrNotFound)
}

func TestDirector_Update(t *testing.T) {
	f := newFixture(t)
	h := NewDirectorHandler(f.deps)
	mann := f.director(t, "Michael", "Mann")
	f.director(t, "Ridley", "Scott")

	_, err := h.Update(context.Background(), UpdateDirector{
		ID: mann.ID, Name: "Ridley", Surname: "Scott", DateOfBirth: model.NewDate(testNow.AddDate(-70, 0, 0)),
	})
	requireKind(t, err, model.ErrConflict)

	// 保持原名更新不算冲突
	updated, err := h.Update(context.Background(), UpdateDirector{
		ID: mann.ID, Name: "Michael", Surname: "Mann", DateOfBirth: model.NewDate(testNow.AddDate(-80, 0, 0)),
	})
	require.NoError(t, err)
	require.Equal(t, testNow.AddDate(-80, 0, 0), updated.DateOfBirth)

	_, err = h.Delete(context.Background(), DeleteDirector{ID: mann.ID})
	require.NoError(t, err)
	_, err = h.Update(context.Background(), UpdateDirector{
		ID: mann.ID, Name: "Michael", Surname: "Mann", DateOfBirth: model.NewDate(testNow.AddDate(-80, 0, 0)),
	})
	requireKind(t, err, model.ErrNotFound)
}

func TestDirector_ValidationBeforeStore(t *testing.T) {
	f := newFixture(t)
	_, err := NewDirectorHandler(f.deps).Create(context.Background(), CreateDirector{
		Name: "M", Surname: "Mann", DateOfBirth: model.NewDate(testNow.AddDate(-5, 0, 0)),
	})
	requireKind(t, err, model.ErrValidation)

	list, err := NewDirectorHandler(f.deps).List(context.Background(), ListDirectors{})
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestActor_CreateConflictsEvenWhenInactive(t *testing.T) {
	f := newFixture(t)
	h := NewActorHandler(f.deps)
	a := f.actor(t, "Al", "Pacino")

	_, err := h.Delete(context.Background(), DeleteActor{ID: a.ID})
	require.NoError(t, err)

	_, err = h.Create(context.Background(), CreateActor{
		Name: "Al", Surname: "Pacino", DateOfBirth: model.NewDate(testNow.AddDate(-80, 0, 0)),
	})
	requireKind(t, err, model.ErrConflict)
}

func TestActor_DeleteTwiceIsTolerated(t *testing.T) {
	f := newFixture(t)
	h := NewActorHandler(f.deps)
	a := f.actor(t, "Al", "Pacino")

	first, err := h.Delete(context.Background(), DeleteActor{ID: a.ID})
	require.NoError(t, err)
	require.False(t, first.IsActive)

	second, err := h.Delete(context.Background(), DeleteActor{ID: a.ID})
	require.NoError(t, err)
	require.False(t, second.IsActive)

	// 停用的演员仍可按 ID 查询，列表不过滤
	got, err := h.Get(context.Background(), GetActorByID{ID: a.ID})
	require.NoError(t, err)
	require.False(t, got.IsActive)
	list, err := h.List(context.Background(), ListActors{})
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestActor_UpdateRules(t *testing.T) {
	f := newFixture(t)
	h := NewActorHandler(f.deps)
	pacino := f.actor(t, "Al", "Pacino")
	f.actor(t, "Robert", "De Niro")

	_, err := h.Update(context.Background(), UpdateActor{
		ID: pacino.ID, Name: "Robert", Surname: "De Niro", DateOfBirth: model.NewDate(testNow.AddDate(-80, 0, 0)),
	})
	requireKind(t, err, model.ErrConflict)

	updated, err := h.Update(context.Background(), UpdateActor{
		ID: pacino.ID, Name: "Alfredo", Surname: "Pacino", DateOfBirth: model.NewDate(testNow.AddDate(-85, 0, 0)),
	})
	require.NoError(t, err)
	require.Equal(t, "Alfredo", updated.Name)

	_, err = h.Update(context.Background(), UpdateActor{
		ID: uuid.New(), Name: "Nobody", Surname: "Here", DateOfBirth: model.NewDate(testNow.AddDate(-20, 0, 0)),
	})
	requireKind(t, err, model.ErrNotFound)
}

func TestMovie_CreateRequiresDirector(t *testing.T) {
	f := newFixture(t)
	_, err := NewMovieHandler(f.deps).Create(context.Background(), CreateMovie{
		Title: "Heat", Year: 1995, Genre: model.GenreThriller, DirectorID: uuid.New(), Price: 10,
	})
	requireKind(t, err, model.ErrNotFound)
}

func TestMovie_CreateValidation(t *testing.T) {
	f := newFixture(t)
	d := f.director(t, "Michael", "Mann")
	_, err := NewMovieHandler(f.deps).Create(context.Background(), CreateMovie{
		Title: "", Year: 1700, Genre: "Western", DirectorID: d.ID, Price: 0,
	})
	requireKind(t, err, model.ErrValidation)
	var me *model.Error
	require.ErrorAs(t, err, &me)
	require.Contains(t, me.Fields, "title")
	require.Contains(t, me.Fields, "year")
	require.Contains(t, me.Fields, "genre")
	require.Contains(t, me.Fields, "price")
}

func TestMovie_UpdateKeepsIdentity(t *testing.T) {
	f := newFixture(t)
	h := NewMovieHandler(f.deps)
	d := f.director(t, "Michael", "Mann")
	m := f.movie(t, "Heat", d.ID)

	updated, err := h.Update(context.Background(), UpdateMovie{
		ID: m.ID, Title: "Heat (Director's Cut)", Year: 1996, Genre: model.GenreAction, DirectorID: d.ID, Price: 15,
	})
	require.NoError(t, err)
	require.Equal(t, m.ID, updated.ID)
	require.True(t, updated.IsActive)
	require.Equal(t, "Heat (Director's Cut)", updated.Title)
	require.Equal(t, 15.0, updated.Price)

	_, err = h.Update(context.Background(), UpdateMovie{
		ID: uuid.New(), Title: "X", Year: 2000, Genre: model.GenreAction, DirectorID: d.ID, Price: 1,
	})
	requireKind(t, err, model.ErrNotFound)
}

func TestMovie_DeleteIsHardAndRemovesLinks(t *testing.T) {
	f := newFixture(t)
	h := NewMovieHandler(f.deps)
	d := f.director(t, "Michael", "Mann")
	m := f.movie(t, "Heat", d.ID)
	a := f.actor(t, "Al", "Pacino")

	_, err := NewMovieActorHandler(f.deps).Link(context.Background(), LinkActorToMovie{MovieID: m.ID, ActorID: a.ID})
	require.NoError(t, err)

	_, err = h.Delete(context.Background(), DeleteMovie{ID: m.ID})
	require.NoError(t, err)

	_, err = h.Get(context.Background(), GetMovieByID{ID: m.ID})
	requireKind(t, err, model.ErrNotFound)
	link, err := f.repos.MovieActor.Find(context.Background(), m.ID, a.ID)
	require.NoError(t, err)
	require.Nil(t, link)

	_, err = h.Delete(context.Background(), DeleteMovie{ID: m.ID})
	requireKind(t, err, model.ErrNotFound)
}

func TestMovie_ListIsUnfiltered(t *testing.T) {
	f := newFixture(t)
	d := f.director(t, "Michael", "Mann")
	heat := f.movie(t, "Heat", d.ID)
	f.movie(t, "Thief", d.ID)

	stored, err := f.repos.Movie.FindByID(context.Background(), heat.ID)
	require.NoError(t, err)
	stored.IsActive = false
	require.NoError(t, f.repos.Movie.Save(context.Background(), stored))

	list, err := NewMovieHandler(f.deps).List(context.Background(), ListMovies{})
	require.NoError(t, err)
	require.Len(t, list, 2)

	got, err := NewMovieHandler(f.deps).Get(context.Background(), GetMovieByID{ID: heat.ID})
	require.NoError(t, err)
	require.False(t, got.IsActive)
}

func TestLink_TwiceLeavesOneActiveRow(t *testing.T) {
	f := newFixture(t)
	h := NewMovieActorHandler(f.deps)
	d := f.director(t, "Michael", "Mann")
	m := f.movie(t, "Heat", d.ID)
	a := f.actor(t, "Al", "Pacino")

	for i := 0; i < 2; i++ {
		status, err := h.Link(context.Background(), LinkActorToMovie{MovieID: m.ID, ActorID: a.ID})
		require.NoError(t, err)
		require.Equal(t, &MovieActorStatusResponse{MovieID: m.ID, ActorID: a.ID, IsActiveInRole: true}, status)
	}

	actors, err := h.ActiveActors(context.Background(), GetActiveActorsForMovie{MovieID: m.ID})
	require.NoError(t, err)
	require.Len(t, actors, 1)
	require.Equal(t, a.ID, actors[0].ID)
}

func TestLink_SoftUnlinkThenRelinkReactivates(t *testing.T) {
	f := newFixture(t)
	h := NewMovieActorHandler(f.deps)
	d := f.director(t, "Michael", "Mann")
	m := f.movie(t, "Heat", d.ID)
	a := f.actor(t, "Al", "Pacino")

	_, err := h.Link(context.Background(), LinkActorToMovie{MovieID: m.ID, ActorID: a.ID})
	require.NoError(t, err)

	_, err = h.Unlink(context.Background(), UnlinkActorFromMovie{MovieID: m.ID, ActorID: a.ID})
	require.NoError(t, err)
	// 重复停用不报错
	_, err = h.Unlink(context.Background(), UnlinkActorFromMovie{MovieID: m.ID, ActorID: a.ID})
	require.NoError(t, err)

	link, err := f.repos.MovieActor.Find(context.Background(), m.ID, a.ID)
	require.NoError(t, err)
	require.False(t, link.IsActive)

	movies, err := h.ActiveMovies(context.Background(), GetActiveMoviesForActor{ActorID: a.ID})
	require.NoError(t, err)
	require.Empty(t, movies)

	status, err := h.Link(context.Background(), LinkActorToMovie{MovieID: m.ID, ActorID: a.ID})
	require.NoError(t, err)
	require.True(t, status.IsActiveInRole)

	movies, err = h.ActiveMovies(context.Background(), GetActiveMoviesForActor{ActorID: a.ID})
	require.NoError(t, err)
	require.Len(t, movies, 1)
	require.Equal(t, m.ID, movies[0].ID)
}

func TestLink_HardUnlinkRemovesRow(t *testing.T) {
	f := newFixture(t)
	h := NewMovieActorHandler(f.deps)
	d := f.director(t, "Michael", "Mann")
	m := f.movie(t, "Heat", d.ID)
	a := f.actor(t, "Al", "Pacino")

	_, err := h.Link(context.Background(), LinkActorToMovie{MovieID: m.ID, ActorID: a.ID})
	require.NoError(t, err)
	_, err = h.Unlink(context.Background(), UnlinkActorFromMovie{MovieID: m.ID, ActorID: a.ID, HardDelete: true})
	require.NoError(t, err)

	link, err := f.repos.MovieActor.Find(context.Background(), m.ID, a.ID)
	require.NoError(t, err)
	require.Nil(t, link)

	_, err = h.Unlink(context.Background(), UnlinkActorFromMovie{MovieID: m.ID, ActorID: a.ID})
	requireKind(t, err, model.ErrNotFound)
}

func TestLink_RequiresActiveEndpoints(t *testing.T) {
	f := newFixture(t)
	h := NewMovieActorHandler(f.deps)
	d := f.director(t, "Michael", "Mann")
	m := f.movie(t, "Heat", d.ID)
	a := f.actor(t, "Al", "Pacino")

	_, err := h.Link(context.Background(), LinkActorToMovie{MovieID: uuid.New(), ActorID: a.ID})
	requireKind(t, err, model.ErrNotFound)

	_, err = NewActorHandler(f.deps).Delete(context.Background(), DeleteActor{ID: a.ID})
	require.NoError(t, err)
	_, err = h.Link(context.Background(), LinkActorToMovie{MovieID: m.ID, ActorID: a.ID})
	requireKind(t, err, model.ErrNotFound)
}

func TestActiveQueries_InactiveAnchorYieldsEmpty(t *testing.T) {
	f := newFixture(t)
	h := NewMovieActorHandler(f.deps)
	d := f.director(t, "Michael", "Mann")
	m := f.movie(t, "Heat", d.ID)
	pacino := f.actor(t, "Al", "Pacino")
	deNiro := f.actor(t, "Robert", "De Niro")

	for _, id := range []uuid.UUID{pacino.ID, deNiro.ID} {
		_, err := h.Link(context.Background(), LinkActorToMovie{MovieID: m.ID, ActorID: id})
		require.NoError(t, err)
	}

	// 停用的演员从电影的演员列表中过滤掉
	_, err := NewActorHandler(f.deps).Delete(context.Background(), DeleteActor{ID: deNiro.ID})
	require.NoError(t, err)
	actors, err := h.ActiveActors(context.Background(), GetActiveActorsForMovie{MovieID: m.ID})
	require.NoError(t, err)
	require.Len(t, actors, 1)
	require.Equal(t, pacino.ID, actors[0].ID)

	movies, err := h.ActiveMovies(context.Background(), GetActiveMoviesForActor{ActorID: deNiro.ID})
	require.NoError(t, err)
	require.NotNil(t, movies)
	require.Empty(t, movies)

	actors, err = h.ActiveActors(context.Background(), GetActiveActorsForMovie{MovieID: uuid.New()})
	require.NoError(t, err)
	require.NotNil(t, actors)
	require.Empty(t, actors)
}
