package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"techtomorrow/internal/logger"
	"techtomorrow/internal/models"
	"techtomorrow/internal/repository"
	"techtomorrow/internal/services"
	helpers "techtomorrow/internal/utils/helpres"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type ArticleHandler struct {
	articleService *services.ArticleService
}

func NewArticleHandler(articleService *services.ArticleService) *ArticleHandler {
	return &ArticleHandler{articleService: articleService}
}

// GetAll godoc
// @Summary Получить все опубликованные статьи
// @Tags articles
// @Produce json
// @Success 200 {array} models.Article
// @Router /api/articles [get]
func (h *ArticleHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	logger.Log.Info("Запрос на список статей")
	articles, err := h.articleService.List(r.Context())
	if err != nil {
		logger.Log.Error("Ошибка получения статей", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Ошибка получения статей")
		return
	}

	logger.Log.Info("Статьи получены", zap.Int("count", len(articles)))
	helpers.JSON(w, http.StatusOK, articles)
}

// Create godoc
// @Summary Опубликовать статью (только admin)
// @Tags admin-articles
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body models.CreateArticleRequest true "Данные статьи"
// @Success 201 {string} string "Статья опубликована"
// @Failure 400 {string} string "Невалидный JSON"
// @Failure 500 {string} string "Ошибка публикации"
// @Router /api/articles [post]
func (h *ArticleHandler) Create(w http.ResponseWriter, r *http.Request) {
	logger.Log.Info("Запрос на публикацию статьи")
	var req models.CreateArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Log.Warn("Невалидный JSON при публикации статьи", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	article := req.ToArticle()
	if article.ID == 0 {
		article.ID = time.Now().UnixMilli()
	}

	if err := h.articleService.Create(r.Context(), article); err != nil {
		logger.Log.Error("Ошибка публикации статьи", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Ошибка публикации")
		return
	}

	logger.Log.Info("Статья опубликована", zap.Int64("article_id", article.ID))
	helpers.JSON(w, http.StatusCreated, article)
}

// Delete godoc
// @Summary Удалить статью (только admin)
// @Tags admin-articles
// @Security ApiKeyAuth
// @Param id path int true "ID статьи"
// @Success 200 {string} string "Удалено"
// @Failure 404 {string} string "Статья не найдена"
// @Router /api/articles/{id} [delete]
func (h *ArticleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	logger.Log.Info("Запрос на удаление статьи", zap.Int64("article_id", id))

	if err := h.articleService.DeleteByID(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			logger.Log.Warn("Статья не найдена", zap.Int64("article_id", id))
			helpers.Error(w, http.StatusNotFound, "Статья не найдена")
			return
		}
		logger.Log.Error("Ошибка удаления статьи", zap.Error(err), zap.Int64("article_id", id))
		helpers.Error(w, http.StatusInternalServerError, "Ошибка удаления")
		return
	}

	helpers.JSON(w, http.StatusOK, "Удалено")
}
