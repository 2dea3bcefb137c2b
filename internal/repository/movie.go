package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/user/moviestore/internal/model"
	"gorm.io/gorm"
)

type MovieRepository struct {
	db *gorm.DB
}

func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

// FindByID 根据 ID 查找电影（不过滤启用状态）
func (r *MovieRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Movie, error) {
	var movie model.Movie
	err := conn(ctx, r.db).Where("id = ?", id).First(&movie).Error
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

// List 获取全部电影
func (r *MovieRepository) List(ctx context.Context) ([]*model.Movie, error) {
	var movies []*model.Movie
	err := conn(ctx, r.db).Order("year DESC, title ASC").Find(&movies).Error
	return movies, err
}

// Create 创建电影
func (r *MovieRepository) Create(ctx context.Context, movie *model.Movie) error {
	return translate(conn(ctx, r.db).Create(movie).Error, "movie")
}

// Save 更新电影
func (r *MovieRepository) Save(ctx context.Context, movie *model.Movie) error {
	return translate(conn(ctx, r.db).Save(movie).Error, "movie")
}

// Delete 物理删除电影
func (r *MovieRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return conn(ctx, r.db).Where("id = ?", id).Delete(&model.Movie{}).Error
}
