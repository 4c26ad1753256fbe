package filerepo

import (
	"context"
	"strings"

	"techtomorrow/internal/models"
	"techtomorrow/internal/repository"
)

type userRepo struct {
	col collection
}

func (r *userRepo) List(_ context.Context) ([]*models.User, error) {
	r.col.mu.Lock()
	defer r.col.mu.Unlock()

	users := []*models.User{}
	r.col.load(&users)
	return users, nil
}

func (r *userRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.col.mu.Lock()
	defer r.col.mu.Unlock()

	email = strings.ToLower(email)
	users := []*models.User{}
	r.col.load(&users)
	for _, u := range users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *userRepo) IsEmailTaken(_ context.Context, email string) (bool, error) {
	r.col.mu.Lock()
	defer r.col.mu.Unlock()

	email = strings.ToLower(email)
	users := []*models.User{}
	r.col.load(&users)
	for _, u := range users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// Create приводит email к нижнему регистру при записи.
func (r *userRepo) Create(_ context.Context, u *models.User) error {
	r.col.mu.Lock()
	defer r.col.mu.Unlock()

	u.Email = strings.ToLower(u.Email)
	users := []*models.User{}
	r.col.load(&users)
	for _, existing := range users {
		if existing.Email == u.Email {
			return repository.ErrEmailTaken
		}
	}
	users = append(users, u)
	return r.col.save(users)
}
