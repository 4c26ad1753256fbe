package pgrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"techtomorrow/internal/models"
	"techtomorrow/internal/repository"
)

type submissionRepo struct{ db *pgxpool.Pool }

const submissionColumns = `id, title, category, author, date, read_time, excerpt, content, status`

func scanSubmission(row pgx.Row) (*models.Submission, error) {
	var s models.Submission
	err := row.Scan(
		&s.ID, &s.Title, &s.Category, &s.Author, &s.Date, &s.ReadTime, &s.Excerpt, &s.Content, &s.Status,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *submissionRepo) List(ctx context.Context) ([]*models.Submission, error) {
	return r.query(ctx, `SELECT `+submissionColumns+` FROM submissions ORDER BY id ASC`)
}

func (r *submissionRepo) ListByAuthor(ctx context.Context, author string) ([]*models.Submission, error) {
	return r.query(ctx, `SELECT `+submissionColumns+` FROM submissions WHERE author=$1 ORDER BY id ASC`, author)
}

func (r *submissionRepo) query(ctx context.Context, sql string, args ...interface{}) ([]*models.Submission, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []*models.Submission{}
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func (r *submissionRepo) GetByID(ctx context.Context, id int64) (*models.Submission, error) {
	s, err := scanSubmission(r.db.QueryRow(ctx,
		`SELECT `+submissionColumns+` FROM submissions WHERE id=$1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	return s, err
}

func (r *submissionRepo) Create(ctx context.Context, s *models.Submission) error {
	const q = `
		INSERT INTO submissions (id, title, category, author, date, read_time, excerpt, content, status)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`
	_, err := r.db.Exec(ctx, q,
		s.ID, s.Title, s.Category, s.Author, s.Date, s.ReadTime, s.Excerpt, s.Content, s.Status,
	)
	return err
}

func (r *submissionRepo) DeleteByID(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM submissions WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}
