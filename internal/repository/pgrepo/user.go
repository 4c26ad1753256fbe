package pgrepo

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"techtomorrow/internal/models"
	"techtomorrow/internal/repository"
)

type userRepo struct{ db *pgxpool.Pool }

const userColumns = `email, user_name, age, address, phone_number, subscription, password_hash, created_at`

func (r *userRepo) List(ctx context.Context) ([]*models.User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []*models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(
			&u.Email, &u.UserName, &u.Age, &u.Address, &u.PhoneNumber, &u.Subscription, &u.PasswordHash, &u.Timestamp,
		); err != nil {
			return nil, err
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email=$1`, strings.ToLower(email),
	).Scan(&u.Email, &u.UserName, &u.Age, &u.Address, &u.PhoneNumber, &u.Subscription, &u.PasswordHash, &u.Timestamp)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) IsEmailTaken(ctx context.Context, email string) (bool, error) {
	var ok bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email=$1)`, strings.ToLower(email),
	).Scan(&ok)
	return ok, err
}

func (r *userRepo) Create(ctx context.Context, u *models.User) error {
	u.Email = strings.ToLower(u.Email)
	const q = `
		INSERT INTO users (email, user_name, age, address, phone_number, subscription, password_hash, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`
	_, err := r.db.Exec(ctx, q,
		u.Email, u.UserName, u.Age, u.Address, u.PhoneNumber, u.Subscription, u.PasswordHash, u.Timestamp,
	)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return repository.ErrEmailTaken
	}
	return err
}
