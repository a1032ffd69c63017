package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"mime"
	"path/filepath"
	"strings"
	"time"
)

// GenerateRandomString ランダムな文字列を生成
func GenerateRandomString(length int) string {
	bytes := make([]byte, (length+1)/2)
	if _, err := rand.Read(bytes); err != nil {
		// 失敗した場合は時間ベースのフォールバック
		now := time.Now().UnixNano()
		for i := range bytes {
			bytes[i] = byte((now >> (i * 8)) & 0xff)
		}
	}
	return hex.EncodeToString(bytes)[:length]
}

// GenerateObjectName アップロード用のファイル名を生成 (<ミリ秒>_<ランダム><拡張子>)
func GenerateObjectName(originalName string, now time.Time) string {
	// 拡張子は入力のまま残す
	ext := filepath.Ext(originalName)
	return fmt.Sprintf("%d_%s%s", now.UnixMilli(), GenerateRandomString(8), ext)
}

// DetectContentType Content-Typeを決定。ヘッダーが無いか汎用型なら拡張子から推定
func DetectContentType(headerType, fileName string) string {
	if headerType != "" && headerType != "application/octet-stream" {
		return headerType
	}
	if byExt := mime.TypeByExtension(strings.ToLower(filepath.Ext(fileName))); byExt != "" {
		return byExt
	}
	return "application/octet-stream"
}
