// Package security はアプリケーションのセキュリティ機能を提供する。
//
// ContentSanitizerService はタスクのタイトルと説明文をサニタイズし、
// XSS攻撃などのセキュリティリスクからクライアントを保護する。
// タスクの本文は平文として扱うため、HTMLタグは一切許可しない。
package security

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// ContentSanitizerService はテキストのサニタイズ機能のインターフェースを定義する。
// タスクの保存前に使用される。
type ContentSanitizerService interface {
	// Sanitize は入力からHTMLタグをすべて除去した平文を返す。
	// 前後の空白は取り除く。空文字列の入力には空文字列を返す。
	// 同一入力に対して常に同一出力を返す（冪等）。
	Sanitize(input string) string
}

// contentSanitizer はContentSanitizerServiceの実装。
// bluemondayのStrictPolicyを保持し、スレッドセーフにサニタイズ処理を行う。
type contentSanitizer struct {
	policy *bluemonday.Policy
}

// NewContentSanitizer はContentSanitizerServiceの新しいインスタンスを生成する。
// StrictPolicyはすべてのタグと属性を除去する。
func NewContentSanitizer() *contentSanitizer {
	return &contentSanitizer{
		policy: bluemonday.StrictPolicy(),
	}
}

// Sanitize は入力からHTMLタグをすべて除去した平文を返す。
// bluemondayはタグ除去後にHTMLエンティティへエスケープするため、
// 平文として保存できるようアンエスケープして戻す。
func (s *contentSanitizer) Sanitize(input string) string {
	stripped := s.policy.Sanitize(input)
	return strings.TrimSpace(html.UnescapeString(stripped))
}
