package model

import (
	"github.com/google/uuid"
)

// Movie 电影
type Movie struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Title      string    `json:"title" gorm:"size:100;not null"`
	Year       int       `json:"year" gorm:"not null"`
	Genre      Genre     `json:"genre" gorm:"size:50;not null"`
	Price      float64   `json:"price" gorm:"type:numeric(18,2);not null"`
	DirectorID uuid.UUID `json:"director_id" gorm:"type:uuid;not null;index"`
	IsActive   bool      `json:"is_active" gorm:"not null"`

	Director *Director `json:"-" gorm:"foreignKey:DirectorID;constraint:OnDelete:RESTRICT"`
}

// MovieActor 电影与演员的关联（角色分配），可独立停用/重新启用
type MovieActor struct {
	MovieID  uuid.UUID `json:"movie_id" gorm:"type:uuid;primaryKey"`
	ActorID  uuid.UUID `json:"actor_id" gorm:"type:uuid;primaryKey;index"`
	IsActive bool      `json:"is_active" gorm:"not null"`

	Movie *Movie `json:"-" gorm:"foreignKey:MovieID;constraint:OnDelete:RESTRICT"`
	Actor *Actor `json:"-" gorm:"foreignKey:ActorID;constraint:OnDelete:RESTRICT"`
}
