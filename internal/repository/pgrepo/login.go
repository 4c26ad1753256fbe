package pgrepo

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"techtomorrow/internal/models"
	"techtomorrow/internal/repository"
)

type loginRepo struct{ db *pgxpool.Pool }

func (r *loginRepo) GetByEmail(ctx context.Context, email string) (*models.Login, error) {
	var l models.Login
	err := r.db.QueryRow(ctx,
		`SELECT email, password_hash, role, created_at FROM logins WHERE email=$1`,
		strings.ToLower(email),
	).Scan(&l.Email, &l.PasswordHash, &l.Role, &l.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *loginRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM logins`).Scan(&n)
	return n, err
}

func (r *loginRepo) Create(ctx context.Context, l *models.Login) error {
	const q = `
		INSERT INTO logins (email, password_hash, role, created_at)
		VALUES ($1,$2,$3,$4)
		ON CONFLICT (email) DO NOTHING
	`
	_, err := r.db.Exec(ctx, q, strings.ToLower(l.Email), l.PasswordHash, l.Role, l.CreatedAt)
	return err
}
