package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config アプリケーション設定
type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Member     MemberConfig
	Storage    StorageConfig
	AWS        AWSConfig
	Cloudinary CloudinaryConfig
	Log        LogConfig
}

// ServerConfig サーバー設定
type ServerConfig struct {
	Port         string
	Mode         string // gin のモード (debug / release / test)
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	BaseURL      string // ローカルストレージの公開URLに使用
}

// DatabaseConfig データベース設定
type DatabaseConfig struct {
	Driver     string // mysql または sqlite
	Host       string
	Port       string
	Username   string
	Password   string
	DBName     string
	SQLitePath string
}

// MemberConfig 会員ゲート設定
type MemberConfig struct {
	Passphrase     string
	PassphraseHash string // bcryptハッシュ。設定されていればPassphraseより優先
	TokenSecret    string
	TokenExpiry    time.Duration
}

// StorageConfig ストレージ設定
type StorageConfig struct {
	Driver        string // local / s3 / cloudinary
	Bucket        string
	UploadDir     string
	PublicBaseURL string
}

// AWSConfig AWS設定
type AWSConfig struct {
	Region              string
	S3Endpoint          string
	S3ForcePathStyle    bool
	WorkCreatedQueueURL string
}

// CloudinaryConfig Cloudinary設定
type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
}

// LogConfig ログ設定
type LogConfig struct {
	Level string
}

// Load 環境変数から設定をロード
func Load() (*Config, error) {
	// .env ファイルをロード (存在すれば)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Mode:         getEnv("GIN_MODE", "debug"),
			ReadTimeout:  time.Duration(getEnvAsInt("SERVER_READ_TIMEOUT", 15)) * time.Second,
			WriteTimeout: time.Duration(getEnvAsInt("SERVER_WRITE_TIMEOUT", 60)) * time.Second,
			BaseURL:      strings.TrimRight(getEnv("API_BASE_URL", "http://localhost:8080"), "/"),
		},
		Database: DatabaseConfig{
			Driver:     getEnv("DB_DRIVER", "mysql"),
			Host:       getEnv("DB_HOST", "localhost"),
			Port:       getEnv("DB_PORT", "3306"),
			Username:   getEnv("DB_USER", "root"),
			Password:   getEnv("DB_PASSWORD", ""),
			DBName:     getEnv("DB_NAME", "karya_kir"),
			SQLitePath: getEnv("DB_SQLITE_PATH", "karya_kir.db"),
		},
		Member: MemberConfig{
			Passphrase:     getEnv("MEMBER_PASSPHRASE", "KIR 19010555X1"),
			PassphraseHash: getEnv("MEMBER_PASSPHRASE_HASH", ""),
			TokenSecret:    getEnv("MEMBER_TOKEN_SECRET", "your-secret-key"),
			TokenExpiry:    time.Duration(getEnvAsInt("MEMBER_TOKEN_EXPIRY", 12)) * time.Hour,
		},
		Storage: StorageConfig{
			Driver:        getEnv("STORAGE_DRIVER", "local"),
			Bucket:        getEnv("STORAGE_BUCKET", "works"),
			UploadDir:     getEnv("UPLOAD_DIR", "./uploads"),
			PublicBaseURL: strings.TrimRight(getEnv("STORAGE_PUBLIC_BASE_URL", ""), "/"),
		},
		AWS: AWSConfig{
			Region:              getEnv("AWS_REGION", "ap-southeast-1"),
			S3Endpoint:          getEnv("AWS_S3_ENDPOINT", ""),
			S3ForcePathStyle:    getEnvAsBool("AWS_S3_FORCE_PATH_STYLE", false),
			WorkCreatedQueueURL: getEnv("AWS_WORK_CREATED_QUEUE_URL", ""),
		},
		Cloudinary: CloudinaryConfig{
			CloudName: getEnv("CLOUDINARY_CLOUD_NAME", ""),
			APIKey:    getEnv("CLOUDINARY_API_KEY", ""),
			APISecret: getEnv("CLOUDINARY_API_SECRET", ""),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	return config, nil
}

// getEnv 環境変数を取得、存在しない場合はデフォルト値を返す
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvAsInt 環境変数を整数として取得
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsBool 環境変数をboolとして取得
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}
