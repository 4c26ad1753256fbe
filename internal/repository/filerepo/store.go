package filerepo

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"techtomorrow/internal/logger"
	"techtomorrow/internal/repository"

	"go.uber.org/zap"
)

// Файловый бэкенд: одна коллекция — один JSON-массив на диске.
// Каждая операция — полный цикл читать-изменить-записать под мьютексом
// коллекции, чтобы параллельные запросы не затирали друг друга.

type collection struct {
	mu   sync.Mutex
	path string
}

// load читает коллекцию с диска. Отсутствующий файл и битый JSON
// считаются пустой коллекцией — доступность важнее строгости.
func (c *collection) load(v interface{}) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return
	}
	if err := json.Unmarshal(data, v); err != nil {
		logger.Log.Warn("Битый JSON в файле коллекции, считаем коллекцию пустой",
			zap.String("path", c.path), zap.Error(err))
	}
}

func (c *collection) save(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(c.path, data, 0o644)
}

// NewStore создаёт dataDir и возвращает файловое хранилище.
func NewStore(dataDir string) (*repository.Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	return &repository.Store{
		Articles:    &articleRepo{collection{path: filepath.Join(dataDir, "articles.json")}},
		Submissions: &submissionRepo{collection{path: filepath.Join(dataDir, "submissions.json")}},
		Users:       &userRepo{collection{path: filepath.Join(dataDir, "users.json")}},
		Logins:      &loginRepo{collection{path: filepath.Join(dataDir, "logins.json")}},
	}, nil
}
