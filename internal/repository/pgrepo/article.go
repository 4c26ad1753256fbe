package pgrepo

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"techtomorrow/internal/models"
	"techtomorrow/internal/repository"
)

type articleRepo struct{ db *pgxpool.Pool }

// List сортирует по id по возрастанию: id — клиентский timestamp,
// так что хвост списка остаётся самым свежим, как и в файловом бэкенде.
func (r *articleRepo) List(ctx context.Context) ([]*models.Article, error) {
	const q = `
		SELECT id, title, category, author, date, read_time, excerpt, content
		FROM articles ORDER BY id ASC
	`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []*models.Article{}
	for rows.Next() {
		var a models.Article
		if err := rows.Scan(
			&a.ID, &a.Title, &a.Category, &a.Author, &a.Date, &a.ReadTime, &a.Excerpt, &a.Content,
		); err != nil {
			return nil, err
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

func (r *articleRepo) Create(ctx context.Context, a *models.Article) error {
	const q = `
		INSERT INTO articles (id, title, category, author, date, read_time, excerpt, content)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`
	_, err := r.db.Exec(ctx, q,
		a.ID, a.Title, a.Category, a.Author, a.Date, a.ReadTime, a.Excerpt, a.Content,
	)
	return err
}

func (r *articleRepo) DeleteByID(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM articles WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}
