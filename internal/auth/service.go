package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hitoshi/taskman/internal/model"
	"github.com/hitoshi/taskman/internal/repository"
)

// Service はユーザー登録とログインのビジネスロジックを提供する。
type Service struct {
	userRepo repository.UserRepository
	hasher   *PasswordHasher
	issuer   *TokenIssuer
}

// NewService はServiceを生成する。
func NewService(userRepo repository.UserRepository, hasher *PasswordHasher, issuer *TokenIssuer) *Service {
	return &Service{
		userRepo: userRepo,
		hasher:   hasher,
		issuer:   issuer,
	}
}

// Register は新規ユーザーを登録する。
// ユーザー名・パスワードが空の場合はバリデーションエラー、
// ユーザー名が既に存在する場合は重複エラーを返す。
// 返すUserのPasswordHashは呼び出し側でレスポンスに含めないこと。
func (s *Service) Register(ctx context.Context, username, password string) (*model.User, error) {
	if username == "" || password == "" {
		return nil, model.NewValidationError("ユーザー名とパスワードを入力してください。")
	}
	if len(password) > MaxPasswordBytes {
		return nil, model.NewValidationError("パスワードは72バイト以内で入力してください。")
	}

	// 事前チェック。すり抜けた同時登録は一意制約違反として捕捉する。
	existing, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, model.NewDuplicateUsernameError(username)
	}

	digest, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: digest,
		CreatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil, model.NewDuplicateUsernameError(username)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	slog.Info("new user registered",
		slog.String("user_id", user.ID),
		slog.String("username", user.Username),
	)

	return user, nil
}

// Login は認証情報を検証し、署名付きトークンを発行する。
// ユーザーが存在しない場合もパスワードが一致しない場合も同一の
// InvalidCredentialsエラーを返し、どちらの検証で失敗したかを漏らさない。
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", model.NewValidationError("ユーザー名とパスワードを入力してください。")
	}

	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return "", fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		return "", model.NewInvalidCredentialsError()
	}

	if !s.hasher.Compare(user.PasswordHash, password) {
		return "", model.NewInvalidCredentialsError()
	}

	token, err := s.issuer.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	slog.Info("user logged in", slog.String("user_id", user.ID))

	return token, nil
}
