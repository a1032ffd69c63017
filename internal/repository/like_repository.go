package repository

import (
	"errors"

	"github.com/karyakir/karyakir_backend/internal/models"

	"gorm.io/gorm"
)

// LikeRepository いいねに関するデータベース操作を行うインターフェース
type LikeRepository interface {
	Find(workID uint, userIP string) (*models.Like, error)
	Create(like *models.Like) error
	Delete(workID uint, userIP string) (int64, error)
}

// likeRepository LikeRepositoryの実装
type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository LikeRepositoryを作成
func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

// Find (作品, 利用者) のいいねを取得。存在しなければ nil を返す
func (r *likeRepository) Find(workID uint, userIP string) (*models.Like, error) {
	var like models.Like
	err := r.db.
		Where("work_id = ? AND user_ip = ?", workID, userIP).
		First(&like).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &like, nil
}

// Create いいねを追加
func (r *likeRepository) Create(like *models.Like) error {
	return r.db.Create(like).Error
}

// Delete (作品, 利用者) のいいねを削除し、削除件数を返す
func (r *likeRepository) Delete(workID uint, userIP string) (int64, error) {
	result := r.db.
		Where("work_id = ? AND user_ip = ?", workID, userIP).
		Delete(&models.Like{})
	return result.RowsAffected, result.Error
}
