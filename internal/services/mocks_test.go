package services

import (
	"context"
	"errors"

	"techtomorrow/internal/models"
	"techtomorrow/internal/repository"
)

// Мок-репозитории (заглушки) в памяти.

type mockArticleRepo struct {
	articles   []*models.Article
	failCreate bool
}

func (m *mockArticleRepo) List(_ context.Context) ([]*models.Article, error) {
	return m.articles, nil
}

func (m *mockArticleRepo) Create(_ context.Context, a *models.Article) error {
	if m.failCreate {
		return errors.New("хранилище недоступно")
	}
	m.articles = append(m.articles, a)
	return nil
}

func (m *mockArticleRepo) DeleteByID(_ context.Context, id int64) error {
	kept := m.articles[:0]
	for _, a := range m.articles {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	if len(kept) == len(m.articles) {
		return repository.ErrNotFound
	}
	m.articles = kept
	return nil
}

type mockSubmissionRepo struct {
	subs []*models.Submission
}

func (m *mockSubmissionRepo) List(_ context.Context) ([]*models.Submission, error) {
	return m.subs, nil
}

func (m *mockSubmissionRepo) ListByAuthor(_ context.Context, author string) ([]*models.Submission, error) {
	mine := []*models.Submission{}
	for _, s := range m.subs {
		if s.Author == author {
			mine = append(mine, s)
		}
	}
	return mine, nil
}

func (m *mockSubmissionRepo) GetByID(_ context.Context, id int64) (*models.Submission, error) {
	for _, s := range m.subs {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *mockSubmissionRepo) Create(_ context.Context, s *models.Submission) error {
	m.subs = append(m.subs, s)
	return nil
}

func (m *mockSubmissionRepo) DeleteByID(_ context.Context, id int64) error {
	kept := m.subs[:0]
	for _, s := range m.subs {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	if len(kept) == len(m.subs) {
		return repository.ErrNotFound
	}
	m.subs = kept
	return nil
}

type mockUserRepo struct {
	users map[string]*models.User
}

func (m *mockUserRepo) List(_ context.Context) ([]*models.User, error) {
	list := []*models.User{}
	for _, u := range m.users {
		list = append(list, u)
	}
	return list, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	u, ok := m.users[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) IsEmailTaken(_ context.Context, email string) (bool, error) {
	_, ok := m.users[email]
	return ok, nil
}

func (m *mockUserRepo) Create(_ context.Context, u *models.User) error {
	if _, ok := m.users[u.Email]; ok {
		return repository.ErrEmailTaken
	}
	m.users[u.Email] = u
	return nil
}

type mockLoginRepo struct {
	logins map[string]*models.Login
}

func (m *mockLoginRepo) GetByEmail(_ context.Context, email string) (*models.Login, error) {
	l, ok := m.logins[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return l, nil
}

func (m *mockLoginRepo) Count(_ context.Context) (int, error) {
	return len(m.logins), nil
}

func (m *mockLoginRepo) Create(_ context.Context, l *models.Login) error {
	m.logins[l.Email] = l
	return nil
}

// fakePages фиксирует вызовы рендерера.
type fakePages struct {
	written   []*models.Article
	removed   []int64
	refreshed int
	failWrite bool
}

func (f *fakePages) WriteArticlePage(a *models.Article) error {
	if f.failWrite {
		return errors.New("диск переполнен")
	}
	f.written = append(f.written, a)
	return nil
}

func (f *fakePages) RemoveArticlePage(id int64) {
	f.removed = append(f.removed, id)
}

func (f *fakePages) UpdateListingPage(_ []*models.Article) {}

func (f *fakePages) UpdateHomePage(_ []*models.Article) {}

func (f *fakePages) RefreshAll(_ []*models.Article) {
	f.refreshed++
}
