package repository

import (
	"github.com/karyakir/karyakir_backend/internal/models"

	"gorm.io/gorm"
)

// CommentRepository コメントに関するデータベース操作を行うインターフェース
type CommentRepository interface {
	Create(comment *models.Comment) error
	ListByWork(workID uint) ([]models.Comment, error)
}

// commentRepository CommentRepositoryの実装
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository CommentRepositoryを作成
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// Create 新しいコメントを作成
func (r *commentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// ListByWork 作品のコメント一覧を新着順で取得
func (r *commentRepository) ListByWork(workID uint) ([]models.Comment, error) {
	comments := []models.Comment{}
	if err := r.db.
		Where("work_id = ?", workID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}
