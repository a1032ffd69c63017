package middlewares

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// ClientIDHeader 疑似識別子を受け渡すヘッダー
	ClientIDHeader = "X-Client-ID"
	// ClientIDCookie 疑似識別子を保存するクッキー
	ClientIDCookie = "user_ip"
	// ClientIDKey コンテキストに保存する疑似識別子のキー
	ClientIDKey = "client_id"

	clientIDMaxLength = 64
	clientIDMaxAge    = 365 * 24 * time.Hour
)

// ClientIDMiddleware ブラウザごとの疑似識別子を解決する
// ヘッダー、クッキーの順に探し、無ければ新しく発行してクッキーに保存する
// 本人確認ではないため、利用者が値を消したり差し替えたりすることは防げない
func ClientIDMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		clientID := strings.TrimSpace(ctx.GetHeader(ClientIDHeader))
		if clientID == "" {
			if cookie, err := ctx.Cookie(ClientIDCookie); err == nil {
				clientID = strings.TrimSpace(cookie)
			}
		}
		if len(clientID) > clientIDMaxLength {
			clientID = ""
		}

		if clientID == "" {
			clientID = "user_" + uuid.NewString()
			ctx.SetSameSite(http.SameSiteLaxMode)
			ctx.SetCookie(ClientIDCookie, clientID, int(clientIDMaxAge.Seconds()), "/", "", false, true)
		}

		ctx.Header(ClientIDHeader, clientID)
		ctx.Set(ClientIDKey, clientID)
		ctx.Next()
	}
}
