package domain

import "time"

// EntityID - числовой идентификатор сущности. Выдается миром
// монотонно, никогда не переиспользуется (см. World.NextID).
type EntityID int64

// --- СУЩНОСТИ ---

// Player - подключенный игрок.
type Player struct {
	ID        EntityID `json:"id"`
	Name      string   `json:"name"`
	Pos       Position `json:"pos"`
	Health    int      `json:"health"`
	MaxHealth int      `json:"maxHealth"`
}

// NewPlayer создает игрока с полным здоровьем.
func NewPlayer(id EntityID, name string, pos Position) *Player {
	return &Player{
		ID:        id,
		Name:      name,
		Pos:       pos,
		Health:    PlayerMaxHealth,
		MaxHealth: PlayerMaxHealth,
	}
}

// Monster - серверный монстр.
type Monster struct {
	ID        EntityID `json:"id"`
	Pos       Position `json:"pos"`
	Health    int      `json:"health"`
	MaxHealth int      `json:"maxHealth"`

	// LastMove - время последнего шага. ИИ думает каждый тик,
	// но шагает не чаще MonsterMoveInterval.
	LastMove time.Time `json:"-"`
}

// NewMonster создает монстра с полным здоровьем.
func NewMonster(id EntityID, pos Position) *Monster {
	return &Monster{
		ID:        id,
		Pos:       pos,
		Health:    MonsterMaxHealth,
		MaxHealth: MonsterMaxHealth,
	}
}

// Fireball - летящий снаряд. Сервер снаряды не симулирует:
// он выдает ID и рассылает событие каста, а полет и попадание
// считает клиентская реплика (см. internal/client).
type Fireball struct {
	ID       EntityID `json:"id"`
	PlayerID EntityID `json:"playerId"`
	Pos      Vec2     `json:"pos"`
	Vel      Vec2     `json:"vel"`
	Active   bool     `json:"active"`
}
