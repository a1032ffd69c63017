package controllers

import (
	"net/http"

	"github.com/karyakir/karyakir_backend/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CommentController コメントに関するコントローラー
type CommentController struct {
	commentService services.CommentService
	logger         *zap.Logger
}

// NewCommentController CommentControllerを作成
func NewCommentController(commentService services.CommentService, logger *zap.Logger) *CommentController {
	return &CommentController{
		commentService: commentService,
		logger:         logger,
	}
}

// CommentRequest コメントリクエスト
type CommentRequest struct {
	AuthorName string `json:"author_name" binding:"required"`
	Content    string `json:"content" binding:"required"`
}

// Create 新しいコメントを作成
func (c *CommentController) Create(ctx *gin.Context) {
	workID, ok := parseID(ctx)
	if !ok {
		return
	}

	var req CommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Nama dan komentar tidak boleh kosong"})
		return
	}

	result, err := c.commentService.Create(workID, req.AuthorName, req.Content)
	if err != nil {
		respondError(ctx, c.logger, err, "Terjadi kesalahan saat mengirim komentar")
		return
	}

	ctx.JSON(http.StatusCreated, result)
}

// List 作品のコメント一覧を取得
func (c *CommentController) List(ctx *gin.Context) {
	workID, ok := parseID(ctx)
	if !ok {
		return
	}

	comments, err := c.commentService.ListByWork(workID)
	if err != nil {
		respondError(ctx, c.logger, err, "Terjadi kesalahan saat memuat komentar")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"comments": comments,
		"total":    len(comments),
	})
}
