package controllers

import (
	"errors"
	"net/http"

	"github.com/karyakir/karyakir_backend/internal/middlewares"
	"github.com/karyakir/karyakir_backend/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MemberController 会員ゲートに関するコントローラー
type MemberController struct {
	memberService services.MemberService
	logger        *zap.Logger
}

// NewMemberController MemberControllerを作成
func NewMemberController(memberService services.MemberService, logger *zap.Logger) *MemberController {
	return &MemberController{
		memberService: memberService,
		logger:        logger,
	}
}

// LoginRequest 会員ログインリクエスト
type LoginRequest struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// Login 会員コードを確認しセッショントークンを返す
func (c *MemberController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Permintaan tidak valid"})
		return
	}

	session, err := c.memberService.Login(req.Name, req.Code)
	if err != nil {
		if errors.Is(err, services.ErrInvalidPassphrase) {
			c.logger.Info("会員コードが一致しません", zap.String("client_ip", ctx.ClientIP()))
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Kode rahasia salah"})
			return
		}
		respondError(ctx, c.logger, err, "Terjadi kesalahan saat login")
		return
	}

	ctx.JSON(http.StatusOK, session)
}

// Me ダッシュボード用に会員名を返す
func (c *MemberController) Me(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"member": true,
		"name":   ctx.GetString(middlewares.MemberNameKey),
	})
}
