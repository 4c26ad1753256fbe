package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"techtomorrow/internal/logger"
	"techtomorrow/internal/middleware"
	"techtomorrow/internal/models"
	"techtomorrow/internal/repository"
	"techtomorrow/internal/services"
	helpers "techtomorrow/internal/utils/helpres"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type SubmissionHandler struct {
	submissionService *services.SubmissionService
}

func NewSubmissionHandler(submissionService *services.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{submissionService: submissionService}
}

type submitRequest struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Author   string `json:"author"`
	Date     string `json:"date"`
	ReadTime int    `json:"readTime"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content"`
}

// List godoc
// @Summary Очередь модерации (только admin)
// @Tags admin-submissions
// @Security ApiKeyAuth
// @Produce json
// @Param author query string false "Фильтр по имени автора"
// @Success 200 {array} models.Submission
// @Router /api/submissions [get]
func (h *SubmissionHandler) List(w http.ResponseWriter, r *http.Request) {
	logger.Log.Info("Запрос на очередь модерации")

	var (
		subs []*models.Submission
		err  error
	)
	if author := r.URL.Query().Get("author"); author != "" {
		subs, err = h.submissionService.ListByAuthor(r.Context(), author)
	} else {
		subs, err = h.submissionService.ListPending(r.Context())
	}
	if err != nil {
		logger.Log.Error("Ошибка получения черновиков", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Ошибка получения черновиков")
		return
	}

	logger.Log.Info("Очередь модерации получена", zap.Int("count", len(subs)))
	helpers.JSON(w, http.StatusOK, subs)
}

// ListMine godoc
// @Summary Черновики текущего автора
// @Tags submissions
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} models.Submission
// @Router /api/submissions/mine [get]
func (h *SubmissionHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	email, _ := r.Context().Value(middleware.ContextEmail).(string)
	logger.Log.Info("Запрос на свои черновики", zap.String("email", email))

	subs, err := h.submissionService.ListByAuthor(r.Context(), email)
	if err != nil {
		logger.Log.Error("Ошибка получения черновиков автора", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Ошибка получения черновиков")
		return
	}

	helpers.JSON(w, http.StatusOK, subs)
}

// Submit godoc
// @Summary Отправить черновик на модерацию
// @Tags submissions
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body submitRequest true "Черновик статьи"
// @Success 201 {object} models.Submission
// @Failure 400 {string} string "Невалидный JSON"
// @Router /api/submissions [post]
func (h *SubmissionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	logger.Log.Info("Запрос на отправку черновика")
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Log.Warn("Невалидный JSON при отправке черновика", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	sub := &models.Submission{
		ID:       req.ID,
		Title:    req.Title,
		Category: req.Category,
		Author:   req.Author,
		Date:     req.Date,
		ReadTime: req.ReadTime,
		Excerpt:  req.Excerpt,
		Content:  req.Content,
	}

	// Авторство берём из токена, а не из тела: автор не может
	// отправить черновик от чужого имени. Админ имя автора задаёт сам.
	email, _ := r.Context().Value(middleware.ContextEmail).(string)
	role, _ := r.Context().Value(middleware.ContextRole).(string)
	if role == models.RoleAuthor {
		sub.Author = email
	}

	if err := h.submissionService.Submit(r.Context(), sub); err != nil {
		logger.Log.Error("Ошибка сохранения черновика", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Ошибка сохранения черновика")
		return
	}

	logger.Log.Info("Черновик принят на модерацию", zap.Int64("submission_id", sub.ID))
	helpers.JSON(w, http.StatusCreated, sub)
}

// Approve godoc
// @Summary Одобрить черновик и опубликовать (только admin)
// @Tags admin-submissions
// @Security ApiKeyAuth
// @Param id path int true "ID черновика"
// @Success 200 {string} string "Одобрено и опубликовано"
// @Failure 404 {string} string "Черновик не найден"
// @Router /api/submissions/{id}/approve [post]
func (h *SubmissionHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	logger.Log.Info("Запрос на одобрение черновика", zap.Int64("submission_id", id))

	if err := h.submissionService.Approve(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			helpers.Error(w, http.StatusNotFound, "Черновик не найден")
			return
		}
		logger.Log.Error("Ошибка одобрения черновика", zap.Error(err), zap.Int64("submission_id", id))
		helpers.Error(w, http.StatusInternalServerError, "Ошибка одобрения")
		return
	}

	helpers.JSON(w, http.StatusOK, "Одобрено и опубликовано")
}

// Reject godoc
// @Summary Отклонить черновик (только admin)
// @Tags admin-submissions
// @Security ApiKeyAuth
// @Param id path int true "ID черновика"
// @Success 200 {string} string "Отклонено"
// @Failure 404 {string} string "Черновик не найден"
// @Router /api/submissions/{id} [delete]
func (h *SubmissionHandler) Reject(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	logger.Log.Info("Запрос на отклонение черновика", zap.Int64("submission_id", id))

	if err := h.submissionService.Reject(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			helpers.Error(w, http.StatusNotFound, "Черновик не найден")
			return
		}
		logger.Log.Error("Ошибка отклонения черновика", zap.Error(err), zap.Int64("submission_id", id))
		helpers.Error(w, http.StatusInternalServerError, "Ошибка отклонения")
		return
	}

	helpers.JSON(w, http.StatusOK, "Отклонено")
}
