package controllers

import (
	"net/http"

	"github.com/karyakir/karyakir_backend/internal/models"

	"github.com/gin-gonic/gin"
)

// CategoryController カテゴリに関するコントローラー
type CategoryController struct{}

// NewCategoryController CategoryControllerを作成
func NewCategoryController() *CategoryController {
	return &CategoryController{}
}

// List カテゴリ一覧を取得 (先頭は絞り込み用の all)
func (c *CategoryController) List(ctx *gin.Context) {
	categories := append([]models.CategoryInfo{
		{ID: models.CategoryAll, Label: models.CategoryAll.Label()},
	}, models.Categories()...)

	ctx.JSON(http.StatusOK, gin.H{
		"categories": categories,
		"default":    models.DefaultCategory,
	})
}
