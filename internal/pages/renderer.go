package pages

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"techtomorrow/internal/logger"
	"techtomorrow/internal/models"

	"go.uber.org/zap"
)

const (
	listingPage = "articles.html"
	homePage    = "index.html"
)

// Renderer регенерирует производный HTML из текущего списка статей:
// отдельную страницу на статью, общую ленту и выдержку на главной.
// Регенерация лент — best-effort: запись в хранилище уже прошла,
// поэтому ошибки здесь только логируются и запрос не валят.
type Renderer struct {
	siteDir string
}

func NewRenderer(siteDir string) *Renderer {
	return &Renderer{siteDir: siteDir}
}

func (r *Renderer) articlePath(id int64) string {
	return filepath.Join(r.siteDir, fmt.Sprintf("article-%d.html", id))
}

// WriteArticlePage пишет article-<id>.html. Ошибка записи отдаётся
// наверх: статья без собственной страницы — это 500 при создании.
func (r *Renderer) WriteArticlePage(a *models.Article) error {
	path := r.articlePath(a.ID)
	if err := os.WriteFile(path, []byte(ArticleDocumentHTML(a)), 0o644); err != nil {
		logger.Log.Error("Ошибка записи страницы статьи", zap.String("path", path), zap.Error(err))
		return err
	}
	logger.Log.Info("Страница статьи записана", zap.String("path", path))
	return nil
}

// RemoveArticlePage удаляет страницу статьи; отсутствие файла не ошибка.
func (r *Renderer) RemoveArticlePage(id int64) {
	path := r.articlePath(id)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		logger.Log.Warn("Не удалось удалить страницу статьи", zap.String("path", path), zap.Error(err))
	}
}

// UpdateListingPage перерисовывает динамическую область articles.html:
// по одной карточке на статью, в порядке массива.
func (r *Renderer) UpdateListingPage(articles []*models.Article) {
	var b strings.Builder
	for _, a := range articles {
		b.WriteString(listingCard(a))
	}
	r.patchPage(listingPage, b.String(), ensureListingMarkers)
}

// UpdateHomePage показывает две последние статьи массива, свежая первой.
// «Свежесть» позиционная (хвост массива), поле date не участвует.
func (r *Renderer) UpdateHomePage(articles []*models.Article) {
	latest := articles
	if len(latest) > 2 {
		latest = latest[len(latest)-2:]
	}

	var b strings.Builder
	for i := len(latest) - 1; i >= 0; i-- {
		b.WriteString(homeCard(latest[i]))
	}
	r.patchPage(homePage, b.String(), ensureHomeMarkers)
}

// RefreshAll регенерирует обе общие страницы.
func (r *Renderer) RefreshAll(articles []*models.Article) {
	r.UpdateListingPage(articles)
	r.UpdateHomePage(articles)
}

func (r *Renderer) patchPage(name, block string, ensure func(string) (string, bool)) {
	path := filepath.Join(r.siteDir, name)

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Log.Warn("Не удалось прочитать страницу, регенерация пропущена",
			zap.String("path", path), zap.Error(err))
		return
	}

	updated, ok := spliceDynamic(string(data), block, ensure)
	if !ok {
		logger.Log.Warn("Слот динамических статей не найден, страница не тронута",
			zap.String("path", path))
		return
	}

	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
		logger.Log.Error("Ошибка записи страницы", zap.String("path", path), zap.Error(err))
		return
	}
	logger.Log.Info("Страница обновлена", zap.String("path", path))
}
