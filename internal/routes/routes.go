package routes

import (
	"fmt"

	"github.com/karyakir/karyakir_backend/internal/config"
	"github.com/karyakir/karyakir_backend/internal/controllers"
	"github.com/karyakir/karyakir_backend/internal/middlewares"
	"github.com/karyakir/karyakir_backend/internal/repository"
	"github.com/karyakir/karyakir_backend/internal/services"

	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Dependencies ルーターが使う外部依存
// nilのフィールドは設定から作成する
type Dependencies struct {
	Storage services.StorageService
	Events  services.EventPublisher
}

// SetupRouter ルーターを設定
func SetupRouter(cfg *config.Config, db *gorm.DB, logger *zap.Logger) (*gin.Engine, error) {
	return SetupRouterWith(cfg, db, logger, Dependencies{})
}

// SetupRouterWith 依存を指定してルーターを設定
func SetupRouterWith(cfg *config.Config, db *gorm.DB, logger *zap.Logger, deps Dependencies) (*gin.Engine, error) {
	// Ginルーターを作成
	r := gin.New()

	// ミドルウェアを設定
	r.Use(middlewares.LoggerMiddleware(logger))
	r.Use(middlewares.ErrorMiddleware(logger))
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.ClientIDMiddleware())

	// AWSセッションはS3かSQSを使う場合のみ作成
	var awsSession *session.Session
	needsS3 := deps.Storage == nil && cfg.Storage.Driver == "s3"
	needsSQS := deps.Events == nil && cfg.AWS.WorkCreatedQueueURL != ""
	if needsS3 || needsSQS {
		sess, err := services.NewAWSSession(cfg)
		if err != nil {
			return nil, fmt.Errorf("AWSセッションの作成に失敗: %w", err)
		}
		awsSession = sess
	}

	storage := deps.Storage
	if storage == nil {
		s, err := services.NewStorageService(cfg, awsSession)
		if err != nil {
			return nil, fmt.Errorf("ストレージの初期化に失敗: %w", err)
		}
		storage = s
	}

	events := deps.Events
	if events == nil {
		events = services.NewEventPublisher(awsSession, cfg.AWS.WorkCreatedQueueURL)
	}

	// リポジトリを作成
	workRepo := repository.NewWorkRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	// サービスを作成
	workService := services.NewWorkService(workRepo, commentRepo, storage, events, logger)
	likeService := services.NewLikeService(workRepo, likeRepo, logger)
	commentService := services.NewCommentService(commentRepo, workRepo, logger)
	memberService := services.NewMemberService(cfg)
	healthService := services.NewHealthService(db, logger)

	// コントローラーを作成
	workController := controllers.NewWorkController(workService, likeService, logger)
	commentController := controllers.NewCommentController(commentService, logger)
	memberController := controllers.NewMemberController(memberService, logger)
	categoryController := controllers.NewCategoryController()
	healthController := controllers.NewHealthController(healthService)

	// 会員ミドルウェア
	memberMiddleware := middlewares.MemberMiddleware(memberService)

	// ローカルストレージのファイルを公開
	if cfg.Storage.Driver == "local" || cfg.Storage.Driver == "" {
		r.Static("/uploads", cfg.Storage.UploadDir)
	}

	// APIグループを作成
	api := r.Group("/api/v1")
	{
		// ヘルスチェックルート
		api.GET("/health", healthController.Check)

		// カテゴリルート
		api.GET("/categories", categoryController.List)

		// 作品ルート
		works := api.Group("/works")
		{
			works.GET("", workController.List)
			works.GET("/:id", workController.GetByID)
			works.GET("/:id/file", workController.GetFile)
			works.GET("/:id/liked", workController.HasLiked)
			works.POST("/:id/like", workController.ToggleLike)

			// コメント関連
			works.GET("/:id/comments", commentController.List)
			works.POST("/:id/comments", commentController.Create)

			// 会員のみ
			works.POST("", memberMiddleware, workController.Create)
		}

		// 会員ルート
		member := api.Group("/member")
		{
			member.POST("/login", memberController.Login)
			member.GET("/me", memberMiddleware, memberController.Me)
		}
	}

	return r, nil
}
