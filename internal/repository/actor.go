package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/user/moviestore/internal/model"
	"gorm.io/gorm"
)

type ActorRepository struct {
	db *gorm.DB
}

func NewActorRepository(db *gorm.DB) *ActorRepository {
	return &ActorRepository{db: db}
}

// FindByID 根据 ID 查找演员
func (r *ActorRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Actor, error) {
	var actor model.Actor
	err := conn(ctx, r.db).Where("id = ?", id).First(&actor).Error
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &actor, nil
}

// FindByName 根据姓名查找演员（含停用）
func (r *ActorRepository) FindByName(ctx context.Context, name, surname string) (*model.Actor, error) {
	var actor model.Actor
	err := conn(ctx, r.db).Where("name = ? AND surname = ?", name, surname).First(&actor).Error
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &actor, nil
}

// FindActiveByName 查找启用的同名演员
func (r *ActorRepository) FindActiveByName(ctx context.Context, name, surname string, except uuid.UUID) (*model.Actor, error) {
	var actor model.Actor
	q := conn(ctx, r.db).Where("name = ? AND surname = ? AND is_active", name, surname)
	if except != uuid.Nil {
		q = q.Where("id <> ?", except)
	}
	err := q.First(&actor).Error
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &actor, nil
}

// List 获取全部演员
func (r *ActorRepository) List(ctx context.Context) ([]*model.Actor, error) {
	var actors []*model.Actor
	err := conn(ctx, r.db).Order("surname ASC, name ASC").Find(&actors).Error
	return actors, err
}

// Create 创建演员
func (r *ActorRepository) Create(ctx context.Context, actor *model.Actor) error {
	return translate(conn(ctx, r.db).Create(actor).Error, "actor")
}

// Save 保存演员
func (r *ActorRepository) Save(ctx context.Context, actor *model.Actor) error {
	return translate(conn(ctx, r.db).Save(actor).Error, "actor")
}
