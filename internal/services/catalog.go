package services

import (
	"context"

	"techtomorrow/internal/logger"
	"techtomorrow/internal/models"
	"techtomorrow/internal/repository"

	"go.uber.org/zap"
)

// Pages — то, что каталогу нужно от рендерера страниц.
// Реализуется pages.Renderer, в тестах подменяется заглушкой.
type Pages interface {
	WriteArticlePage(a *models.Article) error
	RemoveArticlePage(id int64)
	UpdateListingPage(articles []*models.Article)
	UpdateHomePage(articles []*models.Article)
	RefreshAll(articles []*models.Article)
}

type ArticleService struct {
	repo  repository.ArticleRepo
	pages Pages
}

func NewArticleService(repo repository.ArticleRepo, pages Pages) *ArticleService {
	return &ArticleService{repo: repo, pages: pages}
}

func (s *ArticleService) List(ctx context.Context) ([]*models.Article, error) {
	logger.Log.Debug("Сервис: список статей")
	return s.repo.List(ctx)
}

// Create публикует статью: сначала её собственная страница, затем запись
// в хранилище, затем best-effort регенерация лент. Запись в хранилище и
// регенерация не атомарны: упавшая регенерация оставляет ленты
// устаревшими, но статья уже опубликована.
func (s *ArticleService) Create(ctx context.Context, a *models.Article) error {
	logger.Log.Info("Сервис: публикация статьи", zap.Int64("article_id", a.ID), zap.String("title", a.Title))

	if err := s.pages.WriteArticlePage(a); err != nil {
		logger.Log.Error("Сервис: ошибка записи страницы статьи", zap.Int64("article_id", a.ID), zap.Error(err))
		return err
	}

	if err := s.repo.Create(ctx, a); err != nil {
		logger.Log.Error("Сервис: ошибка сохранения статьи", zap.Int64("article_id", a.ID), zap.Error(err))
		return err
	}

	s.refreshPages(ctx)
	logger.Log.Info("Сервис: статья опубликована", zap.Int64("article_id", a.ID))
	return nil
}

// DeleteByID убирает статью из каталога и её страницу с диска.
// Отсутствие файла страницы не считается ошибкой.
func (s *ArticleService) DeleteByID(ctx context.Context, id int64) error {
	logger.Log.Info("Сервис: удаление статьи", zap.Int64("article_id", id))

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}

	s.pages.RemoveArticlePage(id)
	s.refreshPages(ctx)
	logger.Log.Info("Сервис: статья удалена", zap.Int64("article_id", id))
	return nil
}

func (s *ArticleService) refreshPages(ctx context.Context) {
	articles, err := s.repo.List(ctx)
	if err != nil {
		logger.Log.Error("Сервис: не удалось перечитать статьи для регенерации", zap.Error(err))
		return
	}
	s.pages.RefreshAll(articles)
}
