package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/karyakir/karyakir_backend/internal/middlewares"
	"github.com/karyakir/karyakir_backend/internal/models"
	"github.com/karyakir/karyakir_backend/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// maxUploadMemory マルチパートフォームをメモリに保持する上限
const maxUploadMemory = 32 << 20

// WorkController 作品に関するコントローラー
type WorkController struct {
	workService services.WorkService
	likeService services.LikeService
	logger      *zap.Logger
}

// NewWorkController WorkControllerを作成
func NewWorkController(workService services.WorkService, likeService services.LikeService, logger *zap.Logger) *WorkController {
	return &WorkController{
		workService: workService,
		likeService: likeService,
		logger:      logger,
	}
}

// List 作品一覧を取得 (category で絞り込み)
// 読み込みに失敗した場合は空の一覧を返す
func (c *WorkController) List(ctx *gin.Context) {
	category := models.Category(strings.TrimSpace(ctx.Query("category")))

	works, err := c.workService.List(category)
	if err != nil {
		c.logger.Error("作品一覧の取得に失敗しました", zap.String("category", string(category)), zap.Error(err))
		_ = ctx.Error(err)
		works = []models.Work{}
	}

	ctx.JSON(http.StatusOK, gin.H{
		"works":    works,
		"category": category,
		"total":    len(works),
	})
}

// GetByID 作品の詳細をコメント付きで取得
func (c *WorkController) GetByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	detail, err := c.workService.GetDetail(id)
	if err != nil {
		respondError(ctx, c.logger, err, "Terjadi kesalahan saat memuat karya")
		return
	}

	ctx.JSON(http.StatusOK, detail)
}

// Create 新しい作品を投稿 (会員のみ)
func (c *WorkController) Create(ctx *gin.Context) {
	if err := ctx.Request.ParseMultipartForm(maxUploadMemory); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Formulir tidak valid"})
		return
	}

	// 投稿者名は未指定なら会員名を使う
	authorName := ctx.PostForm("author_name")
	if strings.TrimSpace(authorName) == "" {
		authorName = ctx.GetString(middlewares.MemberNameKey)
	}

	input := services.CreateWorkInput{
		Title:      ctx.PostForm("title"),
		Content:    ctx.PostForm("content"),
		Category:   models.Category(strings.TrimSpace(ctx.PostForm("category"))),
		AuthorName: authorName,
	}

	targets := []struct {
		field string
		dst   **services.Attachment
	}{
		{"image", &input.Image},
		{"video", &input.Video},
		{"file", &input.File},
	}
	for _, t := range targets {
		attachment, closeFn, err := formAttachment(ctx, t.field)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Berkas " + t.field + " tidak dapat dibaca"})
			return
		}
		if attachment == nil {
			continue
		}
		defer closeFn()
		*t.dst = attachment
	}

	work, err := c.workService.Create(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, c.logger, err, "Gagal mengunggah karya")
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Karya berhasil diunggah",
		"work":    work,
	})
}

// formAttachment フォームから任意の添付ファイルを取得。存在しなければnilを返す
func formAttachment(ctx *gin.Context, field string) (*services.Attachment, func(), error) {
	file, header, err := ctx.Request.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil, nil
		}
		return nil, nil, err
	}
	// 空のファイル入力は未選択と同じ扱い
	if header.Size == 0 {
		file.Close()
		return nil, nil, nil
	}
	return &services.Attachment{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Reader:      file,
	}, func() { file.Close() }, nil
}

// ToggleLike いいねを切り替え
func (c *WorkController) ToggleLike(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	result, err := c.likeService.Toggle(id, ctx.GetString(middlewares.ClientIDKey))
	if err != nil {
		respondError(ctx, c.logger, err, "Terjadi kesalahan saat menyukai karya")
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// HasLiked このクライアントがいいね済みか確認
func (c *WorkController) HasLiked(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	liked, err := c.likeService.HasLiked(id, ctx.GetString(middlewares.ClientIDKey))
	if err != nil {
		respondError(ctx, c.logger, err, "Terjadi kesalahan saat memuat status suka")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"liked": liked})
}

// GetFile 添付ファイルのURLへリダイレクト
func (c *WorkController) GetFile(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	work, err := c.workService.GetByID(id)
	if err != nil {
		respondError(ctx, c.logger, err, "Terjadi kesalahan saat memuat berkas")
		return
	}

	if work.FileURL == nil || *work.FileURL == "" {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Berkas tidak ditemukan"})
		return
	}

	ctx.Redirect(http.StatusFound, *work.FileURL)
}
