package services

import (
	"fmt"
	"strings"

	"github.com/karyakir/karyakir_backend/internal/models"
	"github.com/karyakir/karyakir_backend/internal/repository"

	"go.uber.org/zap"
)

// CommentResult コメント投稿の結果
type CommentResult struct {
	Comment       *models.Comment `json:"comment"`
	CommentsCount int64           `json:"comments_count"`
}

// CommentService コメントに関するサービスインターフェース
type CommentService interface {
	Create(workID uint, authorName, content string) (*CommentResult, error)
	ListByWork(workID uint) ([]models.Comment, error)
}

// commentService CommentServiceの実装
type commentService struct {
	commentRepo repository.CommentRepository
	workRepo    repository.WorkRepository
	logger      *zap.Logger
}

// NewCommentService CommentServiceを作成
func NewCommentService(commentRepo repository.CommentRepository, workRepo repository.WorkRepository, logger *zap.Logger) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		workRepo:    workRepo,
		logger:      logger,
	}
}

// Create コメントを保存し、作品のコメント数を別途増やす
func (s *commentService) Create(workID uint, authorName, content string) (*CommentResult, error) {
	authorName = strings.TrimSpace(authorName)
	content = strings.TrimSpace(content)
	if authorName == "" || content == "" {
		return nil, newValidationError("Nama dan komentar tidak boleh kosong")
	}

	// 作品が存在するか確認
	if _, err := s.workRepo.FindByID(workID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		WorkID:     workID,
		AuthorName: authorName,
		Content:    content,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	if err := s.workRepo.AdjustComments(workID, 1); err != nil {
		s.logger.Error("コメント数の更新に失敗しました。カウンタが実データとずれています",
			zap.Uint("work_id", workID),
			zap.Uint("comment_id", comment.ID),
			zap.Error(err))
		return nil, fmt.Errorf("コメント数の更新に失敗しました: %w", err)
	}

	work, err := s.workRepo.FindByID(workID)
	if err != nil {
		return nil, err
	}

	return &CommentResult{Comment: comment, CommentsCount: work.CommentsCount}, nil
}

// ListByWork 作品のコメント一覧を新着順で取得
func (s *commentService) ListByWork(workID uint) ([]models.Comment, error) {
	// 作品が存在するか確認
	if _, err := s.workRepo.FindByID(workID); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByWork(workID)
}
