package services

import (
	"fmt"
	"strings"

	"github.com/karyakir/karyakir_backend/internal/models"
	"github.com/karyakir/karyakir_backend/internal/repository"

	"go.uber.org/zap"
)

// LikeResult いいね切り替えの結果
type LikeResult struct {
	Liked      bool  `json:"liked"`
	LikesCount int64 `json:"likes_count"`
}

// LikeService いいねに関するサービスインターフェース
type LikeService interface {
	Toggle(workID uint, userIP string) (*LikeResult, error)
	HasLiked(workID uint, userIP string) (bool, error)
}

// likeService LikeServiceの実装
type likeService struct {
	workRepo repository.WorkRepository
	likeRepo repository.LikeRepository
	logger   *zap.Logger
}

// NewLikeService LikeServiceを作成
func NewLikeService(workRepo repository.WorkRepository, likeRepo repository.LikeRepository, logger *zap.Logger) LikeService {
	return &likeService{
		workRepo: workRepo,
		likeRepo: likeRepo,
		logger:   logger,
	}
}

// Toggle いいねを付け外しし、作品のいいね数を別途増減する
// 2つの更新はトランザクションで囲まない。途中で失敗するとカウンタがずれる
func (s *likeService) Toggle(workID uint, userIP string) (*LikeResult, error) {
	userIP = strings.TrimSpace(userIP)
	if userIP == "" {
		return nil, newValidationError("Identitas pengguna tidak ditemukan")
	}

	if _, err := s.workRepo.FindByID(workID); err != nil {
		return nil, err
	}

	existing, err := s.likeRepo.Find(workID, userIP)
	if err != nil {
		return nil, err
	}

	liked := existing == nil
	delta := 1
	if existing != nil {
		if _, err := s.likeRepo.Delete(workID, userIP); err != nil {
			return nil, err
		}
		delta = -1
	} else {
		if err := s.likeRepo.Create(&models.Like{WorkID: workID, UserIP: userIP}); err != nil {
			return nil, err
		}
	}

	if err := s.workRepo.AdjustLikes(workID, delta); err != nil {
		s.logger.Error("いいね数の更新に失敗しました。カウンタが実データとずれています",
			zap.Uint("work_id", workID),
			zap.Int("delta", delta),
			zap.Error(err))
		return nil, fmt.Errorf("いいね数の更新に失敗しました: %w", err)
	}

	work, err := s.workRepo.FindByID(workID)
	if err != nil {
		return nil, err
	}

	return &LikeResult{Liked: liked, LikesCount: work.LikesCount}, nil
}

// HasLiked 利用者がいいねしているか確認
func (s *likeService) HasLiked(workID uint, userIP string) (bool, error) {
	// 作品が存在するか確認
	if _, err := s.workRepo.FindByID(workID); err != nil {
		return false, err
	}
	if strings.TrimSpace(userIP) == "" {
		return false, nil
	}
	like, err := s.likeRepo.Find(workID, userIP)
	if err != nil {
		return false, err
	}
	return like != nil, nil
}
