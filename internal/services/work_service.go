package services

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/karyakir/karyakir_backend/internal/models"
	"github.com/karyakir/karyakir_backend/internal/repository"
	"github.com/karyakir/karyakir_backend/internal/utils"

	"go.uber.org/zap"
)

// Attachment 作品に添付するファイル
type Attachment struct {
	FileName    string
	ContentType string
	Reader      io.Reader
}

// CreateWorkInput 作品投稿の入力
type CreateWorkInput struct {
	Title      string
	Content    string
	Category   models.Category
	AuthorName string
	Image      *Attachment
	Video      *Attachment
	File       *Attachment
}

// WorkDetail 作品詳細 (作品とコメント一覧)
type WorkDetail struct {
	Work     *models.Work     `json:"work"`
	Comments []models.Comment `json:"comments"`
}

// WorkService 作品に関するサービスインターフェース
type WorkService interface {
	Create(ctx context.Context, input CreateWorkInput) (*models.Work, error)
	GetByID(id uint) (*models.Work, error)
	GetDetail(id uint) (*WorkDetail, error)
	List(category models.Category) ([]models.Work, error)
	Recount() (int64, error)
}

// workService WorkServiceの実装
type workService struct {
	workRepo    repository.WorkRepository
	commentRepo repository.CommentRepository
	storage     StorageService
	events      EventPublisher
	logger      *zap.Logger
	now         func() time.Time
}

// NewWorkService WorkServiceを作成
func NewWorkService(
	workRepo repository.WorkRepository,
	commentRepo repository.CommentRepository,
	storage StorageService,
	events EventPublisher,
	logger *zap.Logger) WorkService {

	return &workService{
		workRepo:    workRepo,
		commentRepo: commentRepo,
		storage:     storage,
		events:      events,
		logger:      logger,
		now:         time.Now,
	}
}

// Create 添付ファイルをアップロードしてから作品を保存
// 保存に失敗してもアップロード済みのファイルは削除しない
func (s *workService) Create(ctx context.Context, input CreateWorkInput) (*models.Work, error) {
	title := strings.TrimSpace(input.Title)
	content := strings.TrimSpace(input.Content)
	if title == "" || content == "" {
		return nil, newValidationError("Judul dan konten tidak boleh kosong")
	}

	category := input.Category
	if category == "" {
		category = models.DefaultCategory
	}
	if !category.Valid() {
		return nil, newValidationError("Kategori tidak valid")
	}

	authorName := strings.TrimSpace(input.AuthorName)
	if authorName == "" {
		return nil, newValidationError("Nama tidak boleh kosong")
	}

	work := &models.Work{
		Title:         title,
		Content:       content,
		Category:      category,
		AuthorName:    authorName,
		LikesCount:    0,
		CommentsCount: 0,
	}

	attachments := []struct {
		field string
		file  *Attachment
		url   **string
	}{
		{"image", input.Image, &work.ImageURL},
		{"video", input.Video, &work.VideoURL},
		{"file", input.File, &work.FileURL},
	}

	var uploaded []string
	var imageObject string
	for _, a := range attachments {
		if a.file == nil {
			continue
		}

		objectName := utils.GenerateObjectName(a.file.FileName, s.now())
		contentType := utils.DetectContentType(a.file.ContentType, a.file.FileName)

		publicURL, err := s.storage.Upload(ctx, objectName, a.file.Reader, contentType)
		if err != nil {
			s.logger.Error("添付ファイルのアップロードに失敗しました",
				zap.String("field", a.field),
				zap.String("object", objectName),
				zap.Strings("orphans", uploaded),
				zap.Error(err))
			return nil, fmt.Errorf("%s のアップロードに失敗しました: %w", a.field, err)
		}

		s.logger.Debug("添付ファイルをアップロードしました",
			zap.String("field", a.field),
			zap.String("object", objectName),
			zap.String("url", publicURL))

		uploaded = append(uploaded, objectName)
		if a.field == "image" {
			imageObject = objectName
		}
		u := publicURL
		*a.url = &u
	}

	if err := s.workRepo.Create(work); err != nil {
		if len(uploaded) > 0 {
			s.logger.Warn("作品の保存に失敗したため、アップロード済みファイルが残っています",
				zap.Strings("orphans", uploaded),
				zap.Error(err))
		}
		return nil, err
	}

	s.logger.Info("作品を投稿しました",
		zap.Uint("work_id", work.ID),
		zap.String("category", string(work.Category)),
		zap.String("author", work.AuthorName),
		zap.Int("attachments", len(uploaded)))

	if work.ImageURL != nil {
		event := WorkCreatedEvent{
			WorkID:      work.ID,
			Category:    string(work.Category),
			ImageObject: imageObject,
			ImageURL:    *work.ImageURL,
			CreatedAt:   work.CreatedAt,
		}
		// イベント送信の失敗は投稿自体の失敗にしない
		if err := s.events.PublishWorkCreated(ctx, event); err != nil {
			s.logger.Warn("作品投稿イベントの送信に失敗しました", zap.Uint("work_id", work.ID), zap.Error(err))
		}
	}

	return work, nil
}

// GetByID IDで作品を取得
func (s *workService) GetByID(id uint) (*models.Work, error) {
	return s.workRepo.FindByID(id)
}

// GetDetail 作品とコメント一覧を取得
func (s *workService) GetDetail(id uint) (*WorkDetail, error) {
	work, err := s.workRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByWork(id)
	if err != nil {
		return nil, err
	}

	return &WorkDetail{Work: work, Comments: comments}, nil
}

// List 全作品を新着順で取得しカテゴリで絞り込む
func (s *workService) List(category models.Category) ([]models.Work, error) {
	works, err := s.workRepo.ListAll()
	if err != nil {
		return nil, err
	}
	return models.FilterByCategory(works, category), nil
}

// Recount いいね数とコメント数を再計算
func (s *workService) Recount() (int64, error) {
	return s.workRepo.Recount()
}
