package models

import (
	"time"
)

// Work 作品モデル
type Work struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Title         string    `json:"title" gorm:"not null"`
	Content       string    `json:"content" gorm:"type:text;not null"`
	Category      Category  `json:"category" gorm:"type:varchar(32);not null;index"`
	AuthorName    string    `json:"author_name" gorm:"not null"`
	ImageURL      *string   `json:"image_url"`
	VideoURL      *string   `json:"video_url"`
	FileURL       *string   `json:"file_url"`
	CreatedAt     time.Time `json:"created_at" gorm:"index"`
	LikesCount    int64     `json:"likes_count" gorm:"not null;default:0"`
	CommentsCount int64     `json:"comments_count" gorm:"not null;default:0"`
}

// Like いいねモデル
// (work_id, user_ip) の一意性はアプリケーション側のチェックのみで保証する
type Like struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	WorkID    uint      `json:"work_id" gorm:"not null;index:idx_likes_work_user"`
	UserIP    string    `json:"user_ip" gorm:"type:varchar(64);not null;index:idx_likes_work_user"`
	CreatedAt time.Time `json:"created_at"`
}

// Comment コメントモデル
type Comment struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	WorkID     uint      `json:"work_id" gorm:"not null;index"`
	AuthorName string    `json:"author_name" gorm:"not null"`
	Content    string    `json:"content" gorm:"type:text;not null"`
	CreatedAt  time.Time `json:"created_at" gorm:"index"`
}

// All マイグレーション対象のモデル (作成順)
func All() []interface{} {
	return []interface{}{
		&Work{},
		&Like{},
		&Comment{},
	}
}
