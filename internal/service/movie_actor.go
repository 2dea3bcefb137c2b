package service

import (
	"context"

	"github.com/user/moviestore/internal/model"
	"github.com/user/moviestore/internal/repository"
)

// MovieActorHandler 电影与演员的角色关联。
// 关联可停用后重新启用，同一对 (movie, actor) 始终只有一行。
type MovieActorHandler struct {
	deps Deps
}

func NewMovieActorHandler(deps Deps) *MovieActorHandler {
	return &MovieActorHandler{deps: deps.withDefaults()}
}

// Link 创建关联或重新启用已停用的关联，电影和演员都必须启用
func (h *MovieActorHandler) Link(ctx context.Context, cmd LinkActorToMovie) (*MovieActorStatusResponse, error) {
	if err := h.deps.Validator.Struct(ctx, cmd); err != nil {
		return nil, err
	}
	return repository.ExecuteWithResult(ctx, h.deps.Repos.Tx, func(ctx context.Context) (*MovieActorStatusResponse, error) {
		movie, err := h.deps.Repos.Movie.FindByID(ctx, cmd.MovieID)
		if err != nil {
			return nil, err
		}
		if movie == nil || !movie.IsActive {
			return nil, model.NotFound("movie %s not found", cmd.MovieID)
		}
		actor, err := h.deps.Repos.Actor.FindByID(ctx, cmd.ActorID)
		if err != nil {
			return nil, err
		}
		if actor == nil || !actor.IsActive {
			return nil, model.NotFound("actor %s not found", cmd.ActorID)
		}

		link, err := h.deps.Repos.MovieActor.Find(ctx, cmd.MovieID, cmd.ActorID)
		if err != nil {
			return nil, err
		}
		switch {
		case link == nil:
			link = &model.MovieActor{MovieID: cmd.MovieID, ActorID: cmd.ActorID, IsActive: true}
			if err := h.deps.Repos.MovieActor.Create(ctx, link); err != nil {
				return nil, err
			}
		case !link.IsActive:
			link.IsActive = true
			if err := h.deps.Repos.MovieActor.Save(ctx, link); err != nil {
				return nil, err
			}
		}
		return toMovieActorStatus(link), nil
	})
}

// Unlink HardDelete 时删除关联行，否则停用（已停用则不做任何事）
func (h *MovieActorHandler) Unlink(ctx context.Context, cmd UnlinkActorFromMovie) (struct{}, error) {
	err := h.deps.Repos.Tx.Execute(ctx, func(ctx context.Context) error {
		link, err := h.deps.Repos.MovieActor.Find(ctx, cmd.MovieID, cmd.ActorID)
		if err != nil {
			return err
		}
		if link == nil {
			return model.NotFound("actor %s is not linked to movie %s", cmd.ActorID, cmd.MovieID)
		}
		if cmd.HardDelete {
			return h.deps.Repos.MovieActor.Delete(ctx, cmd.MovieID, cmd.ActorID)
		}
		if !link.IsActive {
			return nil
		}
		link.IsActive = false
		return h.deps.Repos.MovieActor.Save(ctx, link)
	})
	return struct{}{}, err
}

// ActiveActors 电影不存在或已停用时返回空列表
func (h *MovieActorHandler) ActiveActors(ctx context.Context, q GetActiveActorsForMovie) ([]*ActorResponse, error) {
	movie, err := h.deps.Repos.Movie.FindByID(ctx, q.MovieID)
	if err != nil {
		return nil, err
	}
	if movie == nil || !movie.IsActive {
		return []*ActorResponse{}, nil
	}
	actors, err := h.deps.Repos.MovieActor.ActiveActorsForMovie(ctx, q.MovieID)
	if err != nil {
		return nil, err
	}
	return mapAll(actors, toActorResponse), nil
}

// ActiveMovies 演员不存在或已停用时返回空列表
func (h *MovieActorHandler) ActiveMovies(ctx context.Context, q GetActiveMoviesForActor) ([]*MovieResponse, error) {
	actor, err := h.deps.Repos.Actor.FindByID(ctx, q.ActorID)
	if err != nil {
		return nil, err
	}
	if actor == nil || !actor.IsActive {
		return []*MovieResponse{}, nil
	}
	movies, err := h.deps.Repos.MovieActor.ActiveMoviesForActor(ctx, q.ActorID)
	if err != nil {
		return nil, err
	}
	return mapAll(movies, toMovieResponse), nil
}
