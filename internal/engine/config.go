package engine

import (
	"time"

	"github.com/bbagher/tibiaclone/internal/domain"
)

// Config хранит параметры запуска движка
type Config struct {
	// Seed - зерно генерации мира и всех бросков урона.
	// Один сид дает одинаковую карту, но не одинаковую партию:
	// порядок команд игроков сид не контролирует.
	Seed         int64
	MapWidth     int
	MapHeight    int
	MonsterCount int
}

// NewConfig создает конфиг по умолчанию (случайный сид)
func NewConfig() Config {
	return Config{
		Seed:         time.Now().UnixNano(),
		MapWidth:     domain.DefaultMapWidth,
		MapHeight:    domain.DefaultMapHeight,
		MonsterCount: domain.DefaultMonsterCount,
	}
}
