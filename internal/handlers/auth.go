package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"techtomorrow/internal/config"
	"techtomorrow/internal/logger"
	"techtomorrow/internal/models"
	"techtomorrow/internal/repository"
	"techtomorrow/internal/services"
	helpers "techtomorrow/internal/utils/helpres"

	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *services.AuthService
	cfg         *config.Config
}

func NewAuthHandler(authService *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{authService: authService, cfg: cfg}
}

type loginRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	LoginType string `json:"loginType"`
}

// Login godoc
// @Summary Вход (редакция или подписчик, по флагу loginType)
// @Tags auth
// @Accept json
// @Produce json
// @Param input body loginRequest true "Учётные данные"
// @Success 200 {object} services.LoginResult
// @Failure 401 {string} string "Неверный email или пароль"
// @Router /login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Log.Warn("Невалидный JSON при входе", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}
	logger.Log.Info("Запрос на вход", zap.String("email", req.Email))

	accessTTL, err := time.ParseDuration(h.cfg.AccessTokenTTL)
	if err != nil {
		accessTTL = 12 * time.Hour
	}

	result, err := h.authService.Login(r.Context(), req.Email, req.Password, req.LoginType, h.cfg.JWTSecret, accessTTL)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			helpers.Error(w, http.StatusUnauthorized, "Неверный email или пароль")
			return
		}
		logger.Log.Error("Ошибка входа", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Ошибка входа")
		return
	}

	helpers.JSON(w, http.StatusOK, result)
}

// Signup godoc
// @Summary Регистрация подписчика
// @Tags auth
// @Accept json
// @Produce json
// @Param input body models.SignupRequest true "Данные регистрации"
// @Success 201 {object} models.User
// @Failure 400 {string} string "Email уже зарегистрирован или данные некорректны"
// @Router /signup [post]
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	logger.Log.Info("Запрос на регистрацию")
	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Log.Warn("Невалидный JSON при регистрации", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	user, err := h.authService.Signup(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEmailTaken):
			helpers.Error(w, http.StatusBadRequest, "Адрес электронной почты уже зарегистрирован")
		case errors.Is(err, services.ErrValidation):
			helpers.Error(w, http.StatusBadRequest, err.Error())
		default:
			logger.Log.Error("Ошибка регистрации", zap.Error(err))
			helpers.Error(w, http.StatusInternalServerError, "Ошибка регистрации")
		}
		return
	}

	logger.Log.Info("Подписчик зарегистрирован", zap.String("email", user.Email))
	helpers.JSON(w, http.StatusCreated, user)
}

// GetUsers godoc
// @Summary Список подписчиков (только admin)
// @Tags admin-users
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} models.User
// @Router /users [get]
func (h *AuthHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	logger.Log.Info("Запрос на список подписчиков")
	users, err := h.authService.ListUsers(r.Context())
	if err != nil {
		logger.Log.Error("Ошибка получения подписчиков", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Ошибка получения подписчиков")
		return
	}

	logger.Log.Info("Подписчики получены", zap.Int("count", len(users)))
	helpers.JSON(w, http.StatusOK, users)
}
