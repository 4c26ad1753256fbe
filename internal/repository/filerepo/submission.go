package filerepo

import (
	"context"

	"techtomorrow/internal/models"
	"techtomorrow/internal/repository"
)

type submissionRepo struct {
	col collection
}

func (r *submissionRepo) List(_ context.Context) ([]*models.Submission, error) {
	r.col.mu.Lock()
	defer r.col.mu.Unlock()

	subs := []*models.Submission{}
	r.col.load(&subs)
	return subs, nil
}

func (r *submissionRepo) ListByAuthor(ctx context.Context, author string) ([]*models.Submission, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	mine := []*models.Submission{}
	for _, s := range all {
		if s.Author == author {
			mine = append(mine, s)
		}
	}
	return mine, nil
}

func (r *submissionRepo) GetByID(_ context.Context, id int64) (*models.Submission, error) {
	r.col.mu.Lock()
	defer r.col.mu.Unlock()

	subs := []*models.Submission{}
	r.col.load(&subs)
	for _, s := range subs {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *submissionRepo) Create(_ context.Context, s *models.Submission) error {
	r.col.mu.Lock()
	defer r.col.mu.Unlock()

	subs := []*models.Submission{}
	r.col.load(&subs)
	subs = append(subs, s)
	return r.col.save(subs)
}

func (r *submissionRepo) DeleteByID(_ context.Context, id int64) error {
	r.col.mu.Lock()
	defer r.col.mu.Unlock()

	subs := []*models.Submission{}
	r.col.load(&subs)

	kept := subs[:0]
	for _, s := range subs {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	if len(kept) == len(subs) {
		return repository.ErrNotFound
	}
	return r.col.save(kept)
}
