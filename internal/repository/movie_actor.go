package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/user/moviestore/internal/model"
	"gorm.io/gorm"
)

type MovieActorRepository struct {
	db *gorm.DB
}

func NewMovieActorRepository(db *gorm.DB) *MovieActorRepository {
	return &MovieActorRepository{db: db}
}

// Find 查找关联（含停用）
func (r *MovieActorRepository) Find(ctx context.Context, movieID, actorID uuid.UUID) (*model.MovieActor, error) {
	var link model.MovieActor
	err := conn(ctx, r.db).Where("movie_id = ? AND actor_id = ?", movieID, actorID).First(&link).Error
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// Create 创建关联
func (r *MovieActorRepository) Create(ctx context.Context, link *model.MovieActor) error {
	return translate(conn(ctx, r.db).Create(link).Error, "movie actor link")
}

// Save 更新关联状态
func (r *MovieActorRepository) Save(ctx context.Context, link *model.MovieActor) error {
	return conn(ctx, r.db).Model(&model.MovieActor{}).
		Where("movie_id = ? AND actor_id = ?", link.MovieID, link.ActorID).
		Update("is_active", link.IsActive).Error
}

// Delete 物理删除关联
func (r *MovieActorRepository) Delete(ctx context.Context, movieID, actorID uuid.UUID) error {
	return conn(ctx, r.db).Where("movie_id = ? AND actor_id = ?", movieID, actorID).Delete(&model.MovieActor{}).Error
}

// DeleteByMovie 删除电影的全部关联
func (r *MovieActorRepository) DeleteByMovie(ctx context.Context, movieID uuid.UUID) error {
	return conn(ctx, r.db).Where("movie_id = ?", movieID).Delete(&model.MovieActor{}).Error
}

// ActiveActorsForMovie 获取电影当前启用的演员
func (r *MovieActorRepository) ActiveActorsForMovie(ctx context.Context, movieID uuid.UUID) ([]*model.Actor, error) {
	var actors []*model.Actor
	err := conn(ctx, r.db).
		Joins("JOIN movie_actors ma ON ma.actor_id = actors.id").
		Where("ma.movie_id = ? AND ma.is_active AND actors.is_active", movieID).
		Order("actors.surname ASC, actors.name ASC").
		Find(&actors).Error
	return actors, err
}

// ActiveMoviesForActor 获取演员当前参演的启用电影
func (r *MovieActorRepository) ActiveMoviesForActor(ctx context.Context, actorID uuid.UUID) ([]*model.Movie, error) {
	var movies []*model.Movie
	err := conn(ctx, r.db).
		Joins("JOIN movie_actors ma ON ma.movie_id = movies.id").
		Where("ma.actor_id = ? AND ma.is_active AND movies.is_active", actorID).
		Order("movies.year DESC, movies.title ASC").
		Find(&movies).Error
	return movies, err
}
