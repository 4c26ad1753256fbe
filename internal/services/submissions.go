package services

import (
	"context"
	"time"

	"techtomorrow/internal/logger"
	"techtomorrow/internal/models"
	"techtomorrow/internal/repository"

	"go.uber.org/zap"
)

// Жизненный цикл черновика: pending → approved (копия уходит в каталог,
// запись исчезает из очереди) либо pending → rejected (запись удаляется
// без следа). Других переходов и правок на месте нет.
type SubmissionService struct {
	subs     repository.SubmissionRepo
	articles repository.ArticleRepo
	pages    Pages
}

func NewSubmissionService(subs repository.SubmissionRepo, articles repository.ArticleRepo, pages Pages) *SubmissionService {
	return &SubmissionService{subs: subs, articles: articles, pages: pages}
}

// Submit сохраняет черновик со статусом pending. Клиентский id (timestamp
// в мс) принимается как есть; без него id назначает сервер.
func (s *SubmissionService) Submit(ctx context.Context, sub *models.Submission) error {
	if sub.ID == 0 {
		sub.ID = time.Now().UnixMilli()
	}
	sub.Status = models.SubmissionStatusPending

	logger.Log.Info("Сервис: новый черновик",
		zap.Int64("submission_id", sub.ID), zap.String("author", sub.Author))

	if err := s.subs.Create(ctx, sub); err != nil {
		logger.Log.Error("Сервис: ошибка сохранения черновика", zap.Error(err))
		return err
	}
	return nil
}

// ListPending возвращает очередь модерации.
func (s *SubmissionService) ListPending(ctx context.Context) ([]*models.Submission, error) {
	logger.Log.Debug("Сервис: очередь модерации")
	all, err := s.subs.List(ctx)
	if err != nil {
		return nil, err
	}
	pending := []*models.Submission{}
	for _, sub := range all {
		if sub.Status == "" || sub.Status == models.SubmissionStatusPending {
			pending = append(pending, sub)
		}
	}
	return pending, nil
}

func (s *SubmissionService) ListByAuthor(ctx context.Context, author string) ([]*models.Submission, error) {
	logger.Log.Debug("Сервис: черновики автора", zap.String("author", author))
	return s.subs.ListByAuthor(ctx, author)
}

// Approve переносит черновик в каталог без изменений полей: страница
// статьи, запись в каталоге, удаление из очереди, регенерация лент.
// Шаги не атомарны: падение между ними оставляет черновик в очереди
// при уже существующей статье (или наоборот).
func (s *SubmissionService) Approve(ctx context.Context, id int64) error {
	logger.Log.Info("Сервис: одобрение черновика", zap.Int64("submission_id", id))

	sub, err := s.subs.GetByID(ctx, id)
	if err != nil {
		logger.Log.Warn("Сервис: черновик не найден", zap.Int64("submission_id", id))
		return err
	}

	article := sub.ToArticle()
	if err := s.pages.WriteArticlePage(article); err != nil {
		logger.Log.Error("Сервис: ошибка записи страницы статьи", zap.Int64("article_id", article.ID), zap.Error(err))
		return err
	}

	if err := s.articles.Create(ctx, article); err != nil {
		logger.Log.Error("Сервис: ошибка публикации статьи", zap.Int64("article_id", article.ID), zap.Error(err))
		return err
	}

	if err := s.subs.DeleteByID(ctx, id); err != nil {
		logger.Log.Error("Сервис: статья опубликована, но черновик не удалён",
			zap.Int64("submission_id", id), zap.Error(err))
		return err
	}

	s.refreshPages(ctx)
	logger.Log.Info("Сервис: черновик одобрен и опубликован", zap.Int64("article_id", article.ID))
	return nil
}

// Reject удаляет черновик навсегда; автор не уведомляется.
func (s *SubmissionService) Reject(ctx context.Context, id int64) error {
	logger.Log.Info("Сервис: отклонение черновика", zap.Int64("submission_id", id))
	if err := s.subs.DeleteByID(ctx, id); err != nil {
		logger.Log.Warn("Сервис: черновик не найден при отклонении", zap.Int64("submission_id", id))
		return err
	}
	return nil
}

func (s *SubmissionService) refreshPages(ctx context.Context) {
	articles, err := s.articles.List(ctx)
	if err != nil {
		logger.Log.Error("Сервис: не удалось перечитать статьи для регенерации", zap.Error(err))
		return
	}
	s.pages.RefreshAll(articles)
}
