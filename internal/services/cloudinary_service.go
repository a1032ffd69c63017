package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/karyakir/karyakir_backend/internal/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// cloudinaryStorage Cloudinaryに保存するStorageService
type cloudinaryStorage struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// NewCloudinaryStorage CloudinaryStorageを作成
func NewCloudinaryStorage(cfg *config.Config) (StorageService, error) {
	cld, err := cloudinary.NewFromParams(
		cfg.Cloudinary.CloudName,
		cfg.Cloudinary.APIKey,
		cfg.Cloudinary.APISecret,
	)
	if err != nil {
		return nil, err
	}

	return &cloudinaryStorage{
		cld:    cld,
		folder: cfg.Storage.Bucket,
	}, nil
}

// Upload ファイルをアップロード
// 画像・動画・その他ファイルが混在するためリソースタイプは auto とする
func (s *cloudinaryStorage) Upload(ctx context.Context, objectName string, r io.Reader, contentType string) (string, error) {
	uploadParams := uploader.UploadParams{
		Folder:       s.folder,
		PublicID:     strings.TrimSuffix(objectName, filepath.Ext(objectName)),
		ResourceType: "auto",
	}

	result, err := s.cld.Upload.Upload(ctx, r, uploadParams)
	if err != nil {
		return "", fmt.Errorf("Cloudinaryへのアップロードに失敗しました: %w", err)
	}
	if result.Error.Message != "" {
		return "", fmt.Errorf("Cloudinaryへのアップロードに失敗しました: %w", errors.New(result.Error.Message))
	}

	return result.SecureURL, nil
}
