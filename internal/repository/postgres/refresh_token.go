package postgres

import (
	"context"
	"database/sql"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/eventfinder/auth-service/internal/model"
)

var _ model.RefreshTokenStore = (*RefreshTokenRepository)(nil)

// RefreshTokenRepository persists issued refresh tokens. The pool handle
// is kept separately from the query handle so that InUserScope can open a
// transaction and hand out a tx-bound copy of the repository.
type RefreshTokenRepository struct {
	db *sql.DB
	q  DBTX
}

func NewRefreshTokenRepository(db *sql.DB) *RefreshTokenRepository {
	return &RefreshTokenRepository{db: db, q: db}
}

const refreshTokenColumns = "id, token, token_kind, expiration_date, revoked, user_id, created_at, updated_at"

func (r *RefreshTokenRepository) GetByToken(ctx context.Context, token string) (model.RefreshToken, error) {
	query := `SELECT ` + refreshTokenColumns + ` FROM refresh_tokens WHERE token = $1`

	rt, err := scanRefreshToken(r.q.QueryRowContext(ctx, query, token))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.RefreshToken{}, model.ErrNotFound
		}
		return model.RefreshToken{}, fmt.Errorf("failed to get refresh token: %w", err)
	}

	return rt, nil
}

func (r *RefreshTokenRepository) ListValidByUser(ctx context.Context, userID uuid.UUID) ([]model.RefreshToken, error) {
	query := `SELECT ` + refreshTokenColumns + ` FROM refresh_tokens WHERE user_id = $1 AND revoked = FALSE`

	rows, err := r.q.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list valid refresh tokens: %w", err)
	}
	defer rows.Close()

	var tokens []model.RefreshToken
	for rows.Next() {
		var rt model.RefreshToken
		if err := rows.Scan(
			&rt.ID, &rt.Token, &rt.Kind, &rt.ExpiresAt,
			&rt.Revoked, &rt.UserID, &rt.CreatedAt, &rt.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan refresh token: %w", err)
		}
		tokens = append(tokens, rt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read refresh tokens: %w", err)
	}

	return tokens, nil
}

func (r *RefreshTokenRepository) Save(ctx context.Context, token model.RefreshToken) error {
	query := `INSERT INTO refresh_tokens (id, token, token_kind, expiration_date, revoked, user_id, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
			  ON CONFLICT (id) DO UPDATE SET revoked = EXCLUDED.revoked, updated_at = NOW()`

	if token.ID == uuid.Nil {
		token.ID = uuid.New()
	}

	_, err := r.q.ExecContext(ctx, query,
		token.ID, token.Token, token.Kind, token.ExpiresAt, token.Revoked, token.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to save refresh token: %w", err)
	}

	return nil
}

func (r *RefreshTokenRepository) SaveAll(ctx context.Context, tokens []model.RefreshToken) error {
	for _, token := range tokens {
		if err := r.Save(ctx, token); err != nil {
			return err
		}
	}
	return nil
}

// InUserScope serializes refresh-token writes per user with a transaction
// holding an advisory lock derived from the user id. Two concurrent
// issuances for the same user queue behind the lock, so neither can miss
// the other's freshly inserted row.
func (r *RefreshTokenRepository) InUserScope(ctx context.Context, userID uuid.UUID, fn func(ctx context.Context, store model.RefreshTokenStore) error) error {
	if r.db == nil {
		// Already inside a user scope.
		return fn(ctx, r)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, userLockKey(userID)); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to acquire user lock: %w", err)
	}

	if err := fn(ctx, &RefreshTokenRepository{q: tx}); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func userLockKey(id uuid.UUID) int64 {
	return int64(binary.BigEndian.Uint64(id[:8]))
}

func scanRefreshToken(row *sql.Row) (model.RefreshToken, error) {
	var rt model.RefreshToken
	err := row.Scan(
		&rt.ID, &rt.Token, &rt.Kind, &rt.ExpiresAt,
		&rt.Revoked, &rt.UserID, &rt.CreatedAt, &rt.UpdatedAt,
	)
	return rt, err
}
