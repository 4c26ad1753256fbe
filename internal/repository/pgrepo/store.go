package pgrepo

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"techtomorrow/internal/repository"
)

// Постгрес-бэкенд: каждая запись — отдельная строка, вставки и удаления
// построчные. Многошаговые операции (approve) намеренно не обёрнуты в
// транзакцию — поведение исходной системы с падением между двумя
// записями сохранено.

func NewStore(pool *pgxpool.Pool) *repository.Store {
	return &repository.Store{
		Articles:    &articleRepo{pool},
		Submissions: &submissionRepo{pool},
		Users:       &userRepo{pool},
		Logins:      &loginRepo{pool},
	}
}
