package services

import (
	"context"
	"time"

	"techtomorrow/internal/logger"
	"techtomorrow/internal/models"
	"techtomorrow/internal/repository"
	"techtomorrow/internal/utils"

	"go.uber.org/zap"
)

// seedLogins — стартовые учётки редакции. Пароли хешируются на месте,
// в хранилище открытый текст не попадает.
var seedLogins = []struct {
	email    string
	password string
	role     string
}{
	{"user@example.com", "password123", models.RoleAuthor},
	{"admin@example.com", "admin456", models.RoleAdmin},
}

// SeedLogins наполняет пустую коллекцию logins. Непустая не трогается.
func SeedLogins(ctx context.Context, repo repository.LoginRepo) error {
	n, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	for _, seed := range seedLogins {
		hash, err := utils.HashPassword(seed.password)
		if err != nil {
			return err
		}
		l := &models.Login{
			Email:        seed.email,
			PasswordHash: hash,
			Role:         seed.role,
			CreatedAt:    time.Now().UTC(),
		}
		if err := repo.Create(ctx, l); err != nil {
			return err
		}
		logger.Log.Info("Учётка редакции создана", zap.String("email", seed.email), zap.String("role", seed.role))
	}
	return nil
}
