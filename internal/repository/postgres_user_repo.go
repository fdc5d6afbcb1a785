package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/hitoshi/taskman/internal/model"
)

// uniqueViolation はPostgreSQLの一意制約違反のエラーコード。
const uniqueViolation = "23505"

// PostgresUserRepo はPostgreSQLを使用したユーザーリポジトリ。
type PostgresUserRepo struct {
	db *sql.DB
}

// NewPostgresUserRepo はPostgresUserRepoを生成する。
func NewPostgresUserRepo(db *sql.DB) *PostgresUserRepo {
	return &PostgresUserRepo{db: db}
}

// Create はユーザーを作成する。
// ユーザー名が既に存在する場合はErrDuplicateUsernameを返す。
func (r *PostgresUserRepo) Create(ctx context.Context, user *model.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, username, password_hash, created_at)
		 VALUES ($1, $2, $3, $4)`,
		user.ID, user.Username, user.PasswordHash, user.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return ErrDuplicateUsername
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// FindByUsername は指定ユーザー名のユーザーを取得する。見つからない場合はnilを返す。
func (r *PostgresUserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	user := &model.User{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, username, password_hash, created_at FROM users WHERE username = $1`,
		username,
	).Scan(&user.ID, &user.Username, &user.PasswordHash, &user.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user by username: %w", err)
	}

	return user, nil
}

// compile-time interface check
var _ UserRepository = (*PostgresUserRepo)(nil)
