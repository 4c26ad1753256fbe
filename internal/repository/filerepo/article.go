package filerepo

import (
	"context"

	"techtomorrow/internal/models"
	"techtomorrow/internal/repository"
)

type articleRepo struct {
	col collection
}

// List возвращает статьи в порядке добавления: хвост массива — самые свежие.
func (r *articleRepo) List(_ context.Context) ([]*models.Article, error) {
	r.col.mu.Lock()
	defer r.col.mu.Unlock()

	articles := []*models.Article{}
	r.col.load(&articles)
	return articles, nil
}

func (r *articleRepo) Create(_ context.Context, a *models.Article) error {
	r.col.mu.Lock()
	defer r.col.mu.Unlock()

	articles := []*models.Article{}
	r.col.load(&articles)
	articles = append(articles, a)
	return r.col.save(articles)
}

func (r *articleRepo) DeleteByID(_ context.Context, id int64) error {
	r.col.mu.Lock()
	defer r.col.mu.Unlock()

	articles := []*models.Article{}
	r.col.load(&articles)

	kept := articles[:0]
	for _, a := range articles {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	if len(kept) == len(articles) {
		return repository.ErrNotFound
	}
	return r.col.save(kept)
}
