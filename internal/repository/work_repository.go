package repository

import (
	"errors"
	"fmt"

	"github.com/karyakir/karyakir_backend/internal/models"

	"gorm.io/gorm"
)

// ErrNotFound レコードが存在しない
var ErrNotFound = errors.New("record not found")

// WorkRepository 作品に関するデータベース操作を行うインターフェース
type WorkRepository interface {
	Create(work *models.Work) error
	FindByID(id uint) (*models.Work, error)
	ListAll() ([]models.Work, error)
	AdjustLikes(id uint, delta int) error
	AdjustComments(id uint, delta int) error
	Recount() (int64, error)
}

// workRepository WorkRepositoryの実装
type workRepository struct {
	db *gorm.DB
}

// NewWorkRepository WorkRepositoryを作成
func NewWorkRepository(db *gorm.DB) WorkRepository {
	return &workRepository{db: db}
}

// Create 新しい作品を作成
func (r *workRepository) Create(work *models.Work) error {
	return r.db.Create(work).Error
}

// FindByID IDで作品を検索
func (r *workRepository) FindByID(id uint) (*models.Work, error) {
	var work models.Work
	if err := r.db.First(&work, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("作品 ID=%d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &work, nil
}

// ListAll 全作品を新着順で取得
func (r *workRepository) ListAll() ([]models.Work, error) {
	works := []models.Work{}
	if err := r.db.
		Order("created_at DESC").
		Order("id DESC").
		Find(&works).Error; err != nil {
		return nil, err
	}
	return works, nil
}

// AdjustLikes いいね数を増減 (0未満にはしない)
func (r *workRepository) AdjustLikes(id uint, delta int) error {
	return r.adjust(id, "likes_count", delta)
}

// AdjustComments コメント数を増減 (0未満にはしない)
func (r *workRepository) AdjustComments(id uint, delta int) error {
	return r.adjust(id, "comments_count", delta)
}

func (r *workRepository) adjust(id uint, column string, delta int) error {
	expr := gorm.Expr(column+" + ?", delta)
	if delta < 0 {
		expr = gorm.Expr("CASE WHEN "+column+" + ? < 0 THEN 0 ELSE "+column+" + ? END", delta, delta)
	}

	// MySQLでは値が変わらない場合RowsAffectedが0になるため件数は見ない
	return r.db.Model(&models.Work{}).Where("id = ?", id).UpdateColumn(column, expr).Error
}

// Recount 全作品のいいね数とコメント数を実データから再計算
func (r *workRepository) Recount() (int64, error) {
	var updated int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		likes := tx.Model(&models.Like{}).Select("COUNT(*)").Where("likes.work_id = works.id")
		comments := tx.Model(&models.Comment{}).Select("COUNT(*)").Where("comments.work_id = works.id")

		result := tx.Model(&models.Work{}).
			Session(&gorm.Session{AllowGlobalUpdate: true}).
			UpdateColumns(map[string]interface{}{
				"likes_count":    likes,
				"comments_count": comments,
			})
		if result.Error != nil {
			return result.Error
		}
		updated = result.RowsAffected
		return nil
	})
	return updated, err
}
