package repository

import (
	"context"

	"techtomorrow/internal/models"
)

// Store — общий контракт хранилища. Два равнозначных бэкенда:
// filerepo (JSON-файлы, одна коллекция — один файл) и pgrepo (Postgres,
// построчные вставки/удаления). Выбирается конфигом STORAGE.

type ArticleRepo interface {
	List(ctx context.Context) ([]*models.Article, error)
	Create(ctx context.Context, a *models.Article) error
	DeleteByID(ctx context.Context, id int64) error
}

type SubmissionRepo interface {
	List(ctx context.Context) ([]*models.Submission, error)
	ListByAuthor(ctx context.Context, author string) ([]*models.Submission, error)
	GetByID(ctx context.Context, id int64) (*models.Submission, error)
	Create(ctx context.Context, s *models.Submission) error
	DeleteByID(ctx context.Context, id int64) error
}

type UserRepo interface {
	List(ctx context.Context) ([]*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	IsEmailTaken(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, u *models.User) error
}

type LoginRepo interface {
	GetByEmail(ctx context.Context, email string) (*models.Login, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, l *models.Login) error
}

// Store объединяет все коллекции одного бэкенда.
type Store struct {
	Articles    ArticleRepo
	Submissions SubmissionRepo
	Users       UserRepo
	Logins      LoginRepo
}
