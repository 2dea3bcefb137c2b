package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/user/moviestore/internal/model"
	"github.com/user/moviestore/internal/repository"
)

// ActorHandler 演员命令与查询
type ActorHandler struct {
	deps Deps
}

func NewActorHandler(deps Deps) *ActorHandler {
	return &ActorHandler{deps: deps.withDefaults()}
}

// Create 同名演员（不论是否启用）已存在时返回 Conflict
func (h *ActorHandler) Create(ctx context.Context, cmd CreateActor) (*ActorResponse, error) {
	if err := h.deps.Validator.Struct(ctx, cmd); err != nil {
		return nil, err
	}
	return repository.ExecuteWithResult(ctx, h.deps.Repos.Tx, func(ctx context.Context) (*ActorResponse, error) {
		existing, err := h.deps.Repos.Actor.FindByName(ctx, cmd.Name, cmd.Surname)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, model.Conflict("actor %s already exists", model.FullName(cmd.Name, cmd.Surname))
		}

		actor := &model.Actor{
			ID:          uuid.New(),
			Name:        cmd.Name,
			Surname:     cmd.Surname,
			DateOfBirth: cmd.DateOfBirth.Time,
			IsActive:    true,
		}
		if err := h.deps.Repos.Actor.Create(ctx, actor); err != nil {
			return nil, err
		}
		return toActorResponse(actor), nil
	})
}

// Update 仅更新启用的演员
func (h *ActorHandler) Update(ctx context.Context, cmd UpdateActor) (*ActorResponse, error) {
	if err := h.deps.Validator.Struct(ctx, cmd); err != nil {
		return nil, err
	}
	return repository.ExecuteWithResult(ctx, h.deps.Repos.Tx, func(ctx context.Context) (*ActorResponse, error) {
		actor, err := h.deps.Repos.Actor.FindByID(ctx, cmd.ID)
		if err != nil {
			return nil, err
		}
		if actor == nil || !actor.IsActive {
			return nil, model.NotFound("actor %s not found", cmd.ID)
		}

		dup, err := h.deps.Repos.Actor.FindActiveByName(ctx, cmd.Name, cmd.Surname, actor.ID)
		if err != nil {
			return nil, err
		}
		if dup != nil {
			return nil, model.Conflict("another actor named %s already exists", model.FullName(cmd.Name, cmd.Surname))
		}

		actor.Name = cmd.Name
		actor.Surname = cmd.Surname
		actor.DateOfBirth = cmd.DateOfBirth.Time
		if err := h.deps.Repos.Actor.Save(ctx, actor); err != nil {
			return nil, err
		}
		return toActorResponse(actor), nil
	})
}

// Delete 软删除，重复删除不报错，返回最终状态
func (h *ActorHandler) Delete(ctx context.Context, cmd DeleteActor) (*ActorResponse, error) {
	return repository.ExecuteWithResult(ctx, h.deps.Repos.Tx, func(ctx context.Context) (*ActorResponse, error) {
		actor, err := h.deps.Repos.Actor.FindByID(ctx, cmd.ID)
		if err != nil {
			return nil, err
		}
		if actor == nil {
			return nil, model.NotFound("actor %s not found", cmd.ID)
		}
		actor.IsActive = false
		if err := h.deps.Repos.Actor.Save(ctx, actor); err != nil {
			return nil, err
		}
		return toActorResponse(actor), nil
	})
}

// Get 返回演员，不论是否启用
func (h *ActorHandler) Get(ctx context.Context, q GetActorByID) (*ActorResponse, error) {
	actor, err := h.deps.Repos.Actor.FindByID(ctx, q.ID)
	if err != nil {
		return nil, err
	}
	if actor == nil {
		return nil, model.NotFound("actor %s not found", q.ID)
	}
	return toActorResponse(actor), nil
}

func (h *ActorHandler) List(ctx context.Context, _ ListActors) ([]*ActorResponse, error) {
	actors, err := h.deps.Repos.Actor.List(ctx)
	if err != nil {
		return nil, err
	}
	return mapAll(actors, toActorResponse), nil
}
