package services

import (
	"crypto/subtle"
	"strings"
	"time"

	"github.com/karyakir/karyakir_backend/internal/config"
	"github.com/karyakir/karyakir_backend/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

// MemberSession 会員セッション
type MemberSession struct {
	Token     string    `json:"token"`
	Name      string    `json:"name"`
	ExpiresAt time.Time `json:"expires_at"`
}

// MemberService 会員ゲートに関するサービスインターフェース
// 共有パスフレーズによるアクセス制御であり、個人認証ではない
type MemberService interface {
	Login(name, code string) (*MemberSession, error)
	Verify(token string) (string, error)
}

// memberService MemberServiceの実装
type memberService struct {
	passphrase     []byte
	passphraseHash []byte
	secret         []byte
	expiry         time.Duration
	now            func() time.Time
}

// NewMemberService MemberServiceを作成
func NewMemberService(cfg *config.Config) MemberService {
	return &memberService{
		passphrase:     []byte(cfg.Member.Passphrase),
		passphraseHash: []byte(cfg.Member.PassphraseHash),
		secret:         []byte(cfg.Member.TokenSecret),
		expiry:         cfg.Member.TokenExpiry,
		now:            time.Now,
	}
}

// Login 名前と会員コードを確認しセッショントークンを発行
func (s *memberService) Login(name, code string) (*MemberSession, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, newValidationError("Nama tidak boleh kosong")
	}

	if !s.matches(strings.TrimSpace(code)) {
		return nil, ErrInvalidPassphrase
	}

	now := s.now()
	token, err := utils.GenerateMemberToken(s.secret, name, s.expiry, now)
	if err != nil {
		return nil, err
	}

	return &MemberSession{
		Token:     token,
		Name:      name,
		ExpiresAt: now.Add(s.expiry),
	}, nil
}

// matches 会員コードを比較 (ハッシュが設定されていればbcryptで比較)
func (s *memberService) matches(code string) bool {
	if len(s.passphraseHash) > 0 {
		return bcrypt.CompareHashAndPassword(s.passphraseHash, []byte(code)) == nil
	}
	return subtle.ConstantTimeCompare(s.passphrase, []byte(code)) == 1
}

// Verify トークンを検証し会員名を返す
func (s *memberService) Verify(token string) (string, error) {
	name, err := utils.ValidateMemberToken(s.secret, token)
	if err != nil {
		return "", ErrUnauthorized
	}
	return name, nil
}
