package middlewares

import (
	"net/http"
	"strings"

	"github.com/karyakir/karyakir_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// MemberNameKey コンテキストに保存する会員名のキー
const MemberNameKey = "member_name"

// MemberMiddleware 会員セッションが必要なエンドポイント用ミドルウェア
func MemberMiddleware(memberService services.MemberService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		// Authorizationヘッダーを取得
		authHeader := ctx.GetHeader("Authorization")

		// Bearer トークンの形式かチェック
		if !strings.HasPrefix(authHeader, "Bearer ") {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Silakan login sebagai anggota"})
			return
		}

		name, err := memberService.Verify(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Sesi anggota tidak valid"})
			return
		}

		// 会員名をコンテキストに保存
		ctx.Set(MemberNameKey, name)
		ctx.Next()
	}
}
