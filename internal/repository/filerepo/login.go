package filerepo

import (
	"context"
	"strings"

	"techtomorrow/internal/models"
	"techtomorrow/internal/repository"
)

type loginRepo struct {
	col collection
}

func (r *loginRepo) GetByEmail(_ context.Context, email string) (*models.Login, error) {
	r.col.mu.Lock()
	defer r.col.mu.Unlock()

	email = strings.ToLower(email)
	logins := []*models.Login{}
	r.col.load(&logins)
	for _, l := range logins {
		if l.Email == email {
			return l, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *loginRepo) Count(_ context.Context) (int, error) {
	r.col.mu.Lock()
	defer r.col.mu.Unlock()

	logins := []*models.Login{}
	r.col.load(&logins)
	return len(logins), nil
}

func (r *loginRepo) Create(_ context.Context, l *models.Login) error {
	r.col.mu.Lock()
	defer r.col.mu.Unlock()

	l.Email = strings.ToLower(l.Email)
	logins := []*models.Login{}
	r.col.load(&logins)
	logins = append(logins, l)
	return r.col.save(logins)
}
