package services

import (
	"context"
	"errors"
	"testing"

	"techtomorrow/internal/models"
	"techtomorrow/internal/repository"
)

func newSubmissionFixture() (*SubmissionService, *mockSubmissionRepo, *mockArticleRepo, *fakePages) {
	subs := &mockSubmissionRepo{}
	articles := &mockArticleRepo{}
	pages := &fakePages{}
	return NewSubmissionService(subs, articles, pages), subs, articles, pages
}

func TestSubmitKeepsClientID(t *testing.T) {
	svc, subs, _, _ := newSubmissionFixture()

	sub := &models.Submission{ID: 1700000000000, Title: "A", Author: "Jane"}
	if err := svc.Submit(context.Background(), sub); err != nil {
		t.Fatal(err)
	}

	if len(subs.subs) != 1 {
		t.Fatal("черновик не сохранён")
	}
	if subs.subs[0].ID != 1700000000000 {
		t.Error("клиентский id не сохранён")
	}
	if subs.subs[0].Status != models.SubmissionStatusPending {
		t.Error("статус не выставлен в pending")
	}
}

func TestSubmitAssignsIDWhenMissing(t *testing.T) {
	svc, subs, _, _ := newSubmissionFixture()

	if err := svc.Submit(context.Background(), &models.Submission{Title: "A"}); err != nil {
		t.Fatal(err)
	}
	if subs.subs[0].ID == 0 {
		t.Error("серверный id не назначен")
	}
}

func TestApproveMovesSubmissionToCatalog(t *testing.T) {
	svc, _, articles, pages := newSubmissionFixture()
	ctx := context.Background()

	sub := &models.Submission{
		ID: 1700000000000, Title: "A", Category: "Tech", Author: "Jane",
		Date: "Jan 1", ReadTime: 5, Excerpt: "e", Content: "<p>c</p>",
	}
	if err := svc.Submit(ctx, sub); err != nil {
		t.Fatal(err)
	}

	if err := svc.Approve(ctx, 1700000000000); err != nil {
		t.Fatalf("Approve: %v", err)
	}

	// Черновик исчез из очереди
	if pending, _ := svc.ListPending(ctx); len(pending) != 0 {
		t.Error("очередь модерации не пуста после одобрения")
	}

	// Статья появилась с полями без изменений
	if len(articles.articles) != 1 {
		t.Fatal("статья не попала в каталог")
	}
	a := articles.articles[0]
	if a.Title != "A" || a.Author != "Jane" || a.Content != "<p>c</p>" {
		t.Error("поля статьи искажены при одобрении")
	}

	// Страница статьи записана, ленты регенерированы
	if len(pages.written) != 1 || pages.written[0].ID != 1700000000000 {
		t.Error("страница статьи не записана")
	}
	if pages.refreshed == 0 {
		t.Error("ленты не регенерированы")
	}

	// Одобрение валидно один раз
	if err := svc.Approve(ctx, 1700000000000); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("повторное одобрение: ожидался ErrNotFound, получено %v", err)
	}
}

func TestApprovePageWriteFailureKeepsSubmission(t *testing.T) {
	svc, subs, articles, pages := newSubmissionFixture()
	pages.failWrite = true
	ctx := context.Background()

	_ = svc.Submit(ctx, &models.Submission{ID: 1, Title: "A"})
	if err := svc.Approve(ctx, 1); err == nil {
		t.Fatal("ошибка записи страницы не отдана наверх")
	}

	// Черновик остался в очереди, статья не опубликована
	if len(subs.subs) != 1 {
		t.Error("черновик потерян при ошибке записи страницы")
	}
	if len(articles.articles) != 0 {
		t.Error("статья опубликована несмотря на ошибку")
	}
}

func TestRejectDeletesWithoutTrace(t *testing.T) {
	svc, subs, articles, _ := newSubmissionFixture()
	ctx := context.Background()

	_ = svc.Submit(ctx, &models.Submission{ID: 1, Title: "A"})
	if err := svc.Reject(ctx, 1); err != nil {
		t.Fatal(err)
	}

	if len(subs.subs) != 0 {
		t.Error("черновик остался после отклонения")
	}
	if len(articles.articles) != 0 {
		t.Error("отклонённый черновик попал в каталог")
	}

	if err := svc.Reject(ctx, 1); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("повторное отклонение: ожидался ErrNotFound, получено %v", err)
	}
}

func TestListPendingFiltersApproved(t *testing.T) {
	svc, subs, _, _ := newSubmissionFixture()
	subs.subs = []*models.Submission{
		{ID: 1, Status: models.SubmissionStatusPending},
		{ID: 2, Status: ""}, // старые записи без статуса — тоже pending
		{ID: 3, Status: models.SubmissionStatusApproved},
	}

	pending, err := svc.ListPending(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(pending) != 2 {
		t.Errorf("ожидалось 2 pending, получено %d", len(pending))
	}
}
