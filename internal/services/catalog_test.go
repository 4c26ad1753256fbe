package services

import (
	"context"
	"errors"
	"testing"

	"techtomorrow/internal/models"
	"techtomorrow/internal/repository"
)

func TestCreatePublishesAndRefreshes(t *testing.T) {
	repo := &mockArticleRepo{}
	pages := &fakePages{}
	svc := NewArticleService(repo, pages)

	a := &models.Article{ID: 1, Title: "A"}
	if err := svc.Create(context.Background(), a); err != nil {
		t.Fatal(err)
	}

	if len(repo.articles) != 1 {
		t.Error("статья не сохранена")
	}
	if len(pages.written) != 1 {
		t.Error("страница статьи не записана")
	}
	if pages.refreshed == 0 {
		t.Error("ленты не регенерированы")
	}
}

func TestCreatePageWriteFailureIsError(t *testing.T) {
	repo := &mockArticleRepo{}
	pages := &fakePages{failWrite: true}
	svc := NewArticleService(repo, pages)

	if err := svc.Create(context.Background(), &models.Article{ID: 1}); err == nil {
		t.Fatal("ошибка записи страницы не отдана наверх")
	}
	// Страница не записалась — статья не должна попасть в каталог
	if len(repo.articles) != 0 {
		t.Error("статья сохранена несмотря на ошибку записи страницы")
	}
}

func TestCreateStoreFailureIsError(t *testing.T) {
	repo := &mockArticleRepo{failCreate: true}
	pages := &fakePages{}
	svc := NewArticleService(repo, pages)

	if err := svc.Create(context.Background(), &models.Article{ID: 1}); err == nil {
		t.Fatal("ошибка хранилища не отдана наверх")
	}
}

func TestDeleteRemovesExactlyOne(t *testing.T) {
	repo := &mockArticleRepo{articles: []*models.Article{{ID: 1}, {ID: 2}}}
	pages := &fakePages{}
	svc := NewArticleService(repo, pages)
	ctx := context.Background()

	if err := svc.DeleteByID(ctx, 1); err != nil {
		t.Fatal(err)
	}
	if len(repo.articles) != 1 || repo.articles[0].ID != 2 {
		t.Error("удалена не та статья")
	}
	if len(pages.removed) != 1 || pages.removed[0] != 1 {
		t.Error("страница статьи не удалена")
	}
	if pages.refreshed == 0 {
		t.Error("ленты не регенерированы после удаления")
	}

	// Повторное удаление — not found
	if err := svc.DeleteByID(ctx, 1); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("ожидался ErrNotFound, получено %v", err)
	}
}
