package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/karyakir/karyakir_backend/internal/config"

	"github.com/aws/aws-sdk-go/aws/session"
)

// StorageService ファイルバケットへのアップロードを行うインターフェース
type StorageService interface {
	// Upload objectName で保存し公開URLを返す
	Upload(ctx context.Context, objectName string, r io.Reader, contentType string) (string, error)
}

// NewStorageService 設定されたドライバのStorageServiceを作成
func NewStorageService(cfg *config.Config, awsSession *session.Session) (StorageService, error) {
	switch cfg.Storage.Driver {
	case "local", "":
		return NewLocalStorage(cfg)
	case "s3":
		if awsSession == nil {
			return nil, fmt.Errorf("s3ストレージにはAWSセッションが必要です")
		}
		return NewS3Storage(cfg, awsSession), nil
	case "cloudinary":
		return NewCloudinaryStorage(cfg)
	default:
		return nil, fmt.Errorf("未対応のストレージドライバです: %s", cfg.Storage.Driver)
	}
}

// localStorage ローカルディスクに保存するStorageService
type localStorage struct {
	dir     string
	baseURL string
}

// NewLocalStorage ローカルストレージを作成
// ファイルは UPLOAD_DIR/<bucket>/ に保存され /uploads/<bucket>/ で配信される
func NewLocalStorage(cfg *config.Config) (StorageService, error) {
	dir := filepath.Join(cfg.Storage.UploadDir, cfg.Storage.Bucket)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("ディレクトリの作成に失敗しました: %w", err)
	}

	baseURL := cfg.Storage.PublicBaseURL
	if baseURL == "" {
		baseURL = cfg.Server.BaseURL + "/uploads"
	}

	return &localStorage{
		dir:     dir,
		baseURL: baseURL + "/" + cfg.Storage.Bucket,
	}, nil
}

// Upload ファイルを保存
func (s *localStorage) Upload(ctx context.Context, objectName string, r io.Reader, contentType string) (string, error) {
	name := filepath.Base(objectName)
	if name == "." || name == string(filepath.Separator) {
		return "", fmt.Errorf("無効なファイル名: %q", objectName)
	}

	path := filepath.Join(s.dir, name)
	dest, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("ファイルの作成に失敗しました: %w", err)
	}

	// 書き込みに失敗した場合は途中まで書いたファイルを残さない
	if _, err := io.Copy(dest, r); err != nil {
		dest.Close()
		os.Remove(path)
		return "", fmt.Errorf("ファイルのコピーに失敗しました: %w", err)
	}
	if err := dest.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("ファイルの保存に失敗しました: %w", err)
	}

	return s.baseURL + "/" + name, nil
}
