package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"techtomorrow/internal/logger"
	"techtomorrow/internal/models"
	"techtomorrow/internal/repository"
	"techtomorrow/internal/utils"

	"go.uber.org/zap"
)

var (
	ErrInvalidCredentials = errors.New("неверный email или пароль")
	ErrValidation         = errors.New("некорректные данные")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// AuthService — вход по двум таблицам (logins для редакции, users для
// подписчиков, выбирается флагом loginType) и регистрация подписчиков.
type AuthService struct {
	logins repository.LoginRepo
	users  repository.UserRepo
}

func NewAuthService(logins repository.LoginRepo, users repository.UserRepo) *AuthService {
	return &AuthService{logins: logins, users: users}
}

type LoginResult struct {
	AccessToken string `json:"access_token"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	Role        string `json:"role"`
}

// Login сверяет пароль с bcrypt-хешем и выдаёт access-токен.
// Несуществующий email и неверный пароль дают один и тот же ответ.
func (s *AuthService) Login(
	ctx context.Context,
	email, password, loginType, jwtSecret string,
	accessTTL time.Duration,
) (*LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	logger.Log.Info("Попытка входа (service)",
		zap.String("email", email), zap.String("login_type", loginType))

	var (
		role string
		name string
	)

	if loginType == models.RoleUser {
		u, err := s.users.GetByEmail(ctx, email)
		if err != nil || !utils.CheckPasswordHash(password, u.PasswordHash) {
			logger.Log.Warn("Вход подписчика отклонён (service)", zap.String("email", email))
			return nil, ErrInvalidCredentials
		}
		role = models.RoleUser
		name = u.UserName
	} else {
		l, err := s.logins.GetByEmail(ctx, email)
		if err != nil || !utils.CheckPasswordHash(password, l.PasswordHash) {
			logger.Log.Warn("Вход редакции отклонён (service)", zap.String("email", email))
			return nil, ErrInvalidCredentials
		}
		role = l.Role
		name = l.Email
	}

	token, err := utils.GenerateToken(jwtSecret, email, role, accessTTL)
	if err != nil {
		logger.Log.Error("Ошибка генерации access-токена", zap.Error(err))
		return nil, err
	}

	logger.Log.Info("Вход выполнен (service)", zap.String("email", email), zap.String("role", role))
	return &LoginResult{AccessToken: token, Email: email, Name: name, Role: role}, nil
}

// Signup регистрирует подписчика. Валидация повторяет правила формы
// регистрации, но на сервере. Повторный email — ErrEmailTaken.
func (s *AuthService) Signup(ctx context.Context, req *models.SignupRequest) (*models.User, error) {
	logger.Log.Info("Регистрация подписчика (service)",
		zap.String("email", req.Email), zap.String("plan", req.Subscription))

	if err := validateSignup(req); err != nil {
		logger.Log.Warn("Регистрация отклонена валидацией (service)",
			zap.String("email", req.Email), zap.Error(err))
		return nil, err
	}

	if taken, err := s.users.IsEmailTaken(ctx, req.Email); err != nil {
		return nil, err
	} else if taken {
		logger.Log.Warn("Email уже зарегистрирован (service)", zap.String("email", req.Email))
		return nil, repository.ErrEmailTaken
	}

	user := &models.User{
		UserName:     req.UserName,
		Age:          req.Age,
		Email:        strings.ToLower(req.Email),
		Address:      req.Address,
		PhoneNumber:  req.PhoneNumber,
		Subscription: req.Subscription,
		Timestamp:    time.Now().UTC(),
	}
	if user.Subscription == "" {
		user.Subscription = "free"
	}
	if req.Password != "" {
		hash, err := utils.HashPassword(req.Password)
		if err != nil {
			logger.Log.Error("Ошибка хеширования пароля", zap.Error(err))
			return nil, err
		}
		user.PasswordHash = hash
	}

	if err := s.users.Create(ctx, user); err != nil {
		logger.Log.Error("Ошибка создания подписчика (service)", zap.Error(err))
		return nil, err
	}
	logger.Log.Info("Подписчик зарегистрирован (service)", zap.String("email", user.Email))
	return user, nil
}

func (s *AuthService) ListUsers(ctx context.Context) ([]*models.User, error) {
	logger.Log.Debug("Сервис: список подписчиков")
	return s.users.List(ctx)
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func validateSignup(req *models.SignupRequest) error {
	if len(req.UserName) < 3 {
		return fmt.Errorf("%w: имя не короче 3 символов", ErrValidation)
	}
	if req.Age < 1 || req.Age > 120 {
		return fmt.Errorf("%w: возраст от 1 до 120", ErrValidation)
	}
	if !emailPattern.MatchString(req.Email) {
		return fmt.Errorf("%w: некорректный email", ErrValidation)
	}
	if len(req.Address) < 5 {
		return fmt.Errorf("%w: адрес не короче 5 символов", ErrValidation)
	}
	if req.PhoneNumber != "" && len(digitsOnly(req.PhoneNumber)) != 10 {
		return fmt.Errorf("%w: телефон — ровно 10 цифр", ErrValidation)
	}
	return nil
}
