package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/user/moviestore/internal/model"
	"github.com/user/moviestore/internal/repository"
)

// MovieHandler 电影命令与查询。电影删除为物理删除。
type MovieHandler struct {
	deps Deps
}

func NewMovieHandler(deps Deps) *MovieHandler {
	return &MovieHandler{deps: deps.withDefaults()}
}

func (h *MovieHandler) requireDirector(ctx context.Context, id uuid.UUID) error {
	director, err := h.deps.Repos.Director.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if director == nil {
		return model.NotFound("director %s not found", id)
	}
	return nil
}

func (h *MovieHandler) Create(ctx context.Context, cmd CreateMovie) (*MovieResponse, error) {
	if err := h.deps.Validator.Struct(ctx, cmd); err != nil {
		return nil, err
	}
	return repository.ExecuteWithResult(ctx, h.deps.Repos.Tx, func(ctx context.Context) (*MovieResponse, error) {
		if err := h.requireDirector(ctx, cmd.DirectorID); err != nil {
			return nil, err
		}
		movie := &model.Movie{
			ID:         uuid.New(),
			Title:      cmd.Title,
			Year:       cmd.Year,
			Genre:      cmd.Genre,
			Price:      cmd.Price,
			DirectorID: cmd.DirectorID,
			IsActive:   true,
		}
		if err := h.deps.Repos.Movie.Create(ctx, movie); err != nil {
			return nil, err
		}
		return toMovieResponse(movie), nil
	})
}

// Update 替换可编辑字段，保留 ID 和启用状态
func (h *MovieHandler) Update(ctx context.Context, cmd UpdateMovie) (*MovieResponse, error) {
	if err := h.deps.Validator.Struct(ctx, cmd); err != nil {
		return nil, err
	}
	return repository.ExecuteWithResult(ctx, h.deps.Repos.Tx, func(ctx context.Context) (*MovieResponse, error) {
		movie, err := h.deps.Repos.Movie.FindByID(ctx, cmd.ID)
		if err != nil {
			return nil, err
		}
		if movie == nil {
			return nil, model.NotFound("movie %s not found", cmd.ID)
		}
		if err := h.requireDirector(ctx, cmd.DirectorID); err != nil {
			return nil, err
		}

		movie.Title = cmd.Title
		movie.Year = cmd.Year
		movie.Genre = cmd.Genre
		movie.Price = cmd.Price
		movie.DirectorID = cmd.DirectorID
		if err := h.deps.Repos.Movie.Save(ctx, movie); err != nil {
			return nil, err
		}
		return toMovieResponse(movie), nil
	})
}

// Delete 删除电影及其演员关联，订单保留快照
func (h *MovieHandler) Delete(ctx context.Context, cmd DeleteMovie) (struct{}, error) {
	err := h.deps.Repos.Tx.Execute(ctx, func(ctx context.Context) error {
		movie, err := h.deps.Repos.Movie.FindByID(ctx, cmd.ID)
		if err != nil {
			return err
		}
		if movie == nil {
			return model.NotFound("movie %s not found", cmd.ID)
		}
		if err := h.deps.Repos.MovieActor.DeleteByMovie(ctx, cmd.ID); err != nil {
			return err
		}
		return h.deps.Repos.Movie.Delete(ctx, cmd.ID)
	})
	return struct{}{}, err
}

// Get 返回电影，不论是否启用
func (h *MovieHandler) Get(ctx context.Context, q GetMovieByID) (*MovieResponse, error) {
	movie, err := h.deps.Repos.Movie.FindByID(ctx, q.ID)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, model.NotFound("movie %s not found", q.ID)
	}
	return toMovieResponse(movie), nil
}

func (h *MovieHandler) List(ctx context.Context, _ ListMovies) ([]*MovieResponse, error) {
	movies, err := h.deps.Repos.Movie.List(ctx)
	if err != nil {
		return nil, err
	}
	return mapAll(movies, toMovieResponse), nil
}
