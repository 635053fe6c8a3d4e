package domain

import "time"

// Здоровье
const (
	PlayerMaxHealth  = 100
	MonsterMaxHealth = 50
)

// Урон (диапазоны включительные)
const (
	MeleeDamageMin   = 8
	MeleeDamageMax   = 12
	FireballDamage   = 15
	MonsterDamageMin = 5
	MonsterDamageMax = 10
)

// Параметры ИИ монстров
const (
	// MeleeRange покрывает все 8 соседних клеток (диагональ ~1.41)
	MeleeRange          = 1.5
	MonsterAttackChance = 0.3
)

// Тайминги
const (
	TickRate            = 60
	MonsterMoveInterval = 500 * time.Millisecond
	MonsterRespawnDelay = 5 * time.Second
)

// Спавн: держимся подальше от кромки карты, но не ищем вечно
const (
	SpawnEdgeMargin  = 2
	SpawnMaxAttempts = 100
)

// Пиксельная геометрия. Спрайты 32x32, как в классике.
const (
	TileSize          = 32
	FireballSpeed     = 320.0 // px/сек
	FireballHitRadius = 16.0  // половина тайла
)

// Размеры мира по умолчанию
const (
	DefaultMapWidth     = 20
	DefaultMapHeight    = 15
	DefaultMonsterCount = 5
)
