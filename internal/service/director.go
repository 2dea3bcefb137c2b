package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/user/moviestore/internal/model"
	"github.com/user/moviestore/internal/repository"
)

// DirectorHandler 导演命令与查询。姓名在启用的导演中唯一。
type DirectorHandler struct {
	deps Deps
}

func NewDirectorHandler(deps Deps) *DirectorHandler {
	return &DirectorHandler{deps: deps.withDefaults()}
}

func (h *DirectorHandler) Create(ctx context.Context, cmd CreateDirector) (*DirectorResponse, error) {
	if err := h.deps.Validator.Struct(ctx, cmd); err != nil {
		return nil, err
	}
	return repository.ExecuteWithResult(ctx, h.deps.Repos.Tx, func(ctx context.Context) (*DirectorResponse, error) {
		existing, err := h.deps.Repos.Director.FindActiveByName(ctx, cmd.Name, cmd.Surname, uuid.Nil)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, model.Conflict("an active director named %s already exists", model.FullName(cmd.Name, cmd.Surname))
		}

		director := &model.Director{
			ID:          uuid.New(),
			Name:        cmd.Name,
			Surname:     cmd.Surname,
			DateOfBirth: cmd.DateOfBirth.Time,
			IsActive:    true,
		}
		if err := h.deps.Repos.Director.Create(ctx, director); err != nil {
			return nil, err
		}
		return toDirectorResponse(director), nil
	})
}

func (h *DirectorHandler) Update(ctx context.Context, cmd UpdateDirector) (*DirectorResponse, error) {
	if err := h.deps.Validator.Struct(ctx, cmd); err != nil {
		return nil, err
	}
	return repository.ExecuteWithResult(ctx, h.deps.Repos.Tx, func(ctx context.Context) (*DirectorResponse, error) {
		director, err := h.deps.Repos.Director.FindByID(ctx, cmd.ID)
		if err != nil {
			return nil, err
		}
		if director == nil || !director.IsActive {
			return nil, model.NotFound("director %s not found", cmd.ID)
		}

		dup, err := h.deps.Repos.Director.FindActiveByName(ctx, cmd.Name, cmd.Surname, director.ID)
		if err != nil {
			return nil, err
		}
		if dup != nil {
			return nil, model.Conflict("another active director named %s already exists", model.FullName(cmd.Name, cmd.Surname))
		}

		director.Name = cmd.Name
		director.Surname = cmd.Surname
		director.DateOfBirth = cmd.DateOfBirth.Time
		if err := h.deps.Repos.Director.Save(ctx, director); err != nil {
			return nil, err
		}
		return toDirectorResponse(director), nil
	})
}

// Delete 软删除，已停用时返回 Conflict
func (h *DirectorHandler) Delete(ctx context.Context, cmd DeleteDirector) (*DirectorResponse, error) {
	return repository.ExecuteWithResult(ctx, h.deps.Repos.Tx, func(ctx context.Context) (*DirectorResponse, error) {
		director, err := h.deps.Repos.Director.FindByID(ctx, cmd.ID)
		if err != nil {
			return nil, err
		}
		if director == nil {
			return nil, model.NotFound("director %s not found", cmd.ID)
		}
		if !director.IsActive {
			return nil, model.Conflict("director %s is already deleted", cmd.ID)
		}
		director.IsActive = false
		if err := h.deps.Repos.Director.Save(ctx, director); err != nil {
			return nil, err
		}
		return toDirectorResponse(director), nil
	})
}

func (h *DirectorHandler) Get(ctx context.Context, q GetDirectorByID) (*DirectorResponse, error) {
	director, err := h.deps.Repos.Director.FindByID(ctx, q.ID)
	if err != nil {
		return nil, err
	}
	if director == nil {
		return nil, model.NotFound("director %s not found", q.ID)
	}
	return toDirectorResponse(director), nil
}

// List 只返回启用的导演
func (h *DirectorHandler) List(ctx context.Context, _ ListDirectors) ([]*DirectorResponse, error) {
	directors, err := h.deps.Repos.Director.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	return mapAll(directors, toDirectorResponse), nil
}
