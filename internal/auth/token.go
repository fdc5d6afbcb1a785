package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hitoshi/taskman/internal/model"
)

// TokenIssuer は署名付きトークンの発行と検証を提供する。
// HS256で署名したJWTのsubjectクレームにユーザーIDを格納する。
// 秘密鍵はプロセス全体の設定として起動時に1回読み込まれ、
// 鍵をローテーションすると発行済みのトークンはすべて無効になる。
type TokenIssuer struct {
	secret []byte
	expiry time.Duration
}

// NewTokenIssuer はTokenIssuerを生成する。
func NewTokenIssuer(secret string, expiry time.Duration) *TokenIssuer {
	return &TokenIssuer{
		secret: []byte(secret),
		expiry: expiry,
	}
}

// Issue は指定ユーザーIDを主張する期限付きトークンを発行する。
func (t *TokenIssuer) Issue(userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.expiry)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify はトークンを検証し、埋め込まれたユーザーIDを返す。
// 期限切れの場合はExpiredTokenエラー、署名不一致や形式不正の場合はInvalidTokenエラーを返す。
func (t *TokenIssuer) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(token *jwt.Token) (any, error) {
			return t.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", model.NewExpiredTokenError()
		}
		return "", model.NewInvalidTokenError()
	}

	if !token.Valid || claims.Subject == "" {
		return "", model.NewInvalidTokenError()
	}

	return claims.Subject, nil
}
