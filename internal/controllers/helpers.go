package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/karyakir/karyakir_backend/internal/repository"
	"github.com/karyakir/karyakir_backend/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// parseID パスパラメータのIDを解析。失敗した場合は400を返す
func parseID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil || id == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ID tidak valid"})
		return 0, false
	}
	return uint(id), true
}

// respondError エラーの種類に応じてレスポンスを返す
// 想定外のエラーはログに残し、利用者には汎用メッセージだけを返す
func respondError(ctx *gin.Context, logger *zap.Logger, err error, fallback string) {
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
	case errors.Is(err, repository.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Karya tidak ditemukan"})
	case errors.Is(err, services.ErrUnauthorized):
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Sesi anggota tidak valid"})
	default:
		logger.Error(fallback,
			zap.String("method", ctx.Request.Method),
			zap.String("path", ctx.Request.URL.Path),
			zap.Error(err))
		_ = ctx.Error(err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
