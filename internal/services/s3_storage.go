package services

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/karyakir/karyakir_backend/internal/config"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/aws/aws-sdk-go/service/s3/s3manager/s3manageriface"
)

// s3Storage S3互換バケットに保存するStorageService
type s3Storage struct {
	uploader      s3manageriface.UploaderAPI
	bucket        string
	publicBaseURL string
}

// NewAWSSession AWSセッションを作成
func NewAWSSession(cfg *config.Config) (*session.Session, error) {
	awsConfig := &aws.Config{
		Region:           aws.String(cfg.AWS.Region),
		S3ForcePathStyle: aws.Bool(cfg.AWS.S3ForcePathStyle),
	}
	if cfg.AWS.S3Endpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.AWS.S3Endpoint)
	}
	return session.NewSession(awsConfig)
}

// NewS3Storage S3ストレージを作成
func NewS3Storage(cfg *config.Config, sess *session.Session) StorageService {
	return newS3Storage(s3manager.NewUploader(sess), cfg.Storage.Bucket, cfg.Storage.PublicBaseURL)
}

func newS3Storage(uploader s3manageriface.UploaderAPI, bucket, publicBaseURL string) *s3Storage {
	return &s3Storage{
		uploader:      uploader,
		bucket:        bucket,
		publicBaseURL: publicBaseURL,
	}
}

// Upload ファイルをS3にアップロード
func (s *s3Storage) Upload(ctx context.Context, objectName string, r io.Reader, contentType string) (string, error) {
	out, err := s.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(objectName),
		Body:        r,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("S3へのアップロードに失敗しました: %w", err)
	}

	if s.publicBaseURL != "" {
		return s.publicBaseURL + "/" + url.PathEscape(objectName), nil
	}
	return out.Location, nil
}
