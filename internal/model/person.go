package model

import (
	"time"

	"github.com/google/uuid"
)

// Actor 演员
type Actor struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string    `json:"name" gorm:"size:50;not null;index:idx_actor_name"`
	Surname     string    `json:"surname" gorm:"size:50;not null;index:idx_actor_name"`
	DateOfBirth time.Time `json:"date_of_birth" gorm:"not null"`
	IsActive    bool      `json:"is_active" gorm:"not null"`
}

// Director 导演
// (name, surname) 在启用的导演中唯一，由部分唯一索引保证，见 repository.Migrate
type Director struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string    `json:"name" gorm:"size:50;not null"`
	Surname     string    `json:"surname" gorm:"size:50;not null"`
	DateOfBirth time.Time `json:"date_of_birth" gorm:"not null"`
	IsActive    bool      `json:"is_active" gorm:"not null"`
}

// FullName 返回 "名 姓"
func FullName(first, last string) string {
	return first + " " + last
}
