package utils

import (
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// MemberClaims 会員セッショントークンのペイロード
type MemberClaims struct {
	Member bool   `json:"member"`
	Name   string `json:"name"`
	jwt.StandardClaims
}

// GenerateMemberToken 会員名からセッショントークンを生成する
func GenerateMemberToken(secret []byte, name string, expiry time.Duration, now time.Time) (string, error) {
	claims := &MemberClaims{
		Member: true,
		Name:   name,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: now.Add(expiry).Unix(),
			IssuedAt:  now.Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ValidateMemberToken トークンを検証し会員名を返す
func ValidateMemberToken(secret []byte, tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &MemberClaims{}, func(token *jwt.Token) (interface{}, error) {
		// 署名方法を確認
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(*MemberClaims)
	if !ok || !token.Valid || !claims.Member || claims.Name == "" {
		return "", errors.New("invalid token")
	}
	return claims.Name, nil
}
