package model

import (
	"time"

	"github.com/google/uuid"
)

// User 用户模型
// FavoriteGenres 以逗号分隔的类型名存储，读取时用 Genres() 展开
type User struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	FirstName      string    `json:"first_name" gorm:"size:50;not null"`
	LastName       string    `json:"last_name" gorm:"size:50;not null"`
	Username       string    `json:"username" gorm:"size:50;not null"`
	Email          string    `json:"email" gorm:"size:100;not null"`
	PasswordHash   string    `json:"-" gorm:"size:100;not null"`
	FavoriteGenres string    `json:"-" gorm:"size:100;not null"`
	IsActive       bool      `json:"is_active" gorm:"not null"`
	CreatedAt      time.Time `json:"created_at" gorm:"not null"`

	Orders []Order `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
}

// FullName 用户全名
func (u *User) FullName() string {
	return FullName(u.FirstName, u.LastName)
}

// Genres 获取喜爱类型切片（保持注册时的顺序）
func (u *User) Genres() []Genre {
	return ParseGenreList(u.FavoriteGenres)
}

// SetGenres 序列化喜爱类型
func (u *User) SetGenres(genres []Genre) {
	u.FavoriteGenres = JoinGenres(genres)
}

// Order 订单
// 电影标题、价格、用户姓名在下单时快照保存，之后电影或用户的修改不会影响历史订单。
// movie_id 不建外键：电影是物理删除的，订单需要保留。
type Order struct {
	ID               uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID           uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index:idx_order_user_date"`
	MovieID          uuid.UUID `json:"movie_id" gorm:"type:uuid;not null"`
	MovieTitle       string    `json:"movie_title" gorm:"size:100;not null"`
	Price            float64   `json:"price" gorm:"type:numeric(18,2);not null"`
	CustomerFullName string    `json:"customer_full_name" gorm:"size:100;not null"`
	CustomerEmail    string    `json:"customer_email" gorm:"size:100;not null"`
	IsActive         bool      `json:"is_active" gorm:"not null"`
	OrderDate        time.Time `json:"order_date" gorm:"not null;index:idx_order_user_date,sort:desc"`
}
