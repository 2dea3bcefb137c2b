package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/user/moviestore/internal/model"
	"gorm.io/gorm"
)

type DirectorRepository struct {
	db *gorm.DB
}

func NewDirectorRepository(db *gorm.DB) *DirectorRepository {
	return &DirectorRepository{db: db}
}

// FindByID 根据 ID 查找导演
func (r *DirectorRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Director, error) {
	var director model.Director
	err := conn(ctx, r.db).Where("id = ?", id).First(&director).Error
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &director, nil
}

// FindActiveByName 查找启用的同名导演
func (r *DirectorRepository) FindActiveByName(ctx context.Context, name, surname string, except uuid.UUID) (*model.Director, error) {
	var director model.Director
	q := conn(ctx, r.db).Where("name = ? AND surname = ? AND is_active", name, surname)
	if except != uuid.Nil {
		q = q.Where("id <> ?", except)
	}
	err := q.First(&director).Error
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &director, nil
}

// ListActive 获取启用的导演
func (r *DirectorRepository) ListActive(ctx context.Context) ([]*model.Director, error) {
	var directors []*model.Director
	err := conn(ctx, r.db).Where("is_active").Order("surname ASC, name ASC").Find(&directors).Error
	return directors, err
}

// Create 创建导演
func (r *DirectorRepository) Create(ctx context.Context, director *model.Director) error {
	return translate(conn(ctx, r.db).Create(director).Error, "active director with this name")
}

// Save 保存导演
func (r *DirectorRepository) Save(ctx context.Context, director *model.Director) error {
	return translate(conn(ctx, r.db).Save(director).Error, "active director with this name")
}
