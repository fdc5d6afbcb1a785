// Package auth はパスワード認証、トークン発行・検証を提供する。
package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordBytes はbcryptが受け付けるパスワードの最大バイト数。
// これを超える入力はハッシュ化前のバリデーションで拒否する。
const MaxPasswordBytes = 72

// PasswordHasher はbcryptによるパスワードのハッシュ化と照合を提供する。
// ソルトはbcryptがダイジェストごとに自動生成する。
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher はPasswordHasherを生成する。
// costが有効範囲外の場合はbcrypt.DefaultCostを使用する。
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash は平文パスワードからソルト付きダイジェストを生成する。
func (h *PasswordHasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(digest), nil
}

// Compare は保存済みダイジェストと平文パスワードを照合する。
// bcryptの比較は保存ダイジェストに対して定数時間で行われる。
func (h *PasswordHasher) Compare(digest, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
