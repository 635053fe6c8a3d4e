package protocol

import (
	"github.com/bbagher/tibiaclone/internal/domain"
)

// Каждый кадр - плоский JSON-объект с дискриминатором "type".
// Значения дискриминатора для обоих направлений.
const (
	// Сервер -> Клиент
	TypeInit           = "init"
	TypePlayerJoined   = "playerJoined"
	TypePlayerLeft     = "playerLeft"
	TypePlayerMoved    = "playerMoved"
	TypePlayerDamaged  = "playerDamaged"
	TypePlayerDied     = "playerDied"
	TypeFireballCast   = "fireballCast"
	TypeMonsterMoved   = "monsterMoved"
	TypeMonsterDamaged = "monsterDamaged"
	TypeMonsterDied    = "monsterDied"
	TypeMonsterSpawned = "monsterSpawned"

	// Клиент -> Сервер
	TypeMove        = "move"
	TypeFireball    = "fireball"
	TypeAttack      = "attack"
	TypeFireballHit = "fireballHit"
)

// --- DTO СУЩНОСТЕЙ ---

// PlayerView это DTO игрока. Координаты плоские (x, y), не вложенные.
type PlayerView struct {
	ID        domain.EntityID `json:"id"`
	X         int             `json:"x"`
	Y         int             `json:"y"`
	Health    int             `json:"health"`
	MaxHealth int             `json:"maxHealth"`
	Name      string          `json:"name"`
}

// NewPlayerView собирает DTO из доменного игрока.
func NewPlayerView(p *domain.Player) PlayerView {
	return PlayerView{
		ID:        p.ID,
		X:         p.Pos.X,
		Y:         p.Pos.Y,
		Health:    p.Health,
		MaxHealth: p.MaxHealth,
		Name:      p.Name,
	}
}

// MonsterView это DTO монстра.
type MonsterView struct {
	ID        domain.EntityID `json:"id"`
	X         int             `json:"x"`
	Y         int             `json:"y"`
	Health    int             `json:"health"`
	MaxHealth int             `json:"maxHealth"`
}

// NewMonsterView собирает DTO из доменного монстра.
func NewMonsterView(m *domain.Monster) MonsterView {
	return MonsterView{
		ID:        m.ID,
		X:         m.Pos.X,
		Y:         m.Pos.Y,
		Health:    m.Health,
		MaxHealth: m.MaxHealth,
	}
}

// FireballView это DTO снаряда в момент каста. Старт - пиксельный центр
// клетки кастера, цель - пиксельная точка клика. Полет клиент считает сам.
type FireballView struct {
	ID        domain.EntityID `json:"id"`
	PlayerID  domain.EntityID `json:"playerId"`
	StartX    float64         `json:"startX"`
	StartY    float64         `json:"startY"`
	TargetX   float64         `json:"targetX"`
	TargetY   float64         `json:"targetY"`
	Timestamp int64           `json:"timestamp"` // Unix milliseconds
}

// --- СЕРВЕР -> КЛИЕНТ ---

// InitMessage это первое сообщение новой сессии: ID игрока и полный
// снимок мира. Все дальнейшие сообщения - точечные дельты.
type InitMessage struct {
	Type     string              `json:"type"`
	PlayerID domain.EntityID     `json:"playerId"`
	Map      [][]domain.TileType `json:"map"`
	Width    int                 `json:"width"`
	Height   int                 `json:"height"`
	Players  []PlayerView        `json:"players"`
	Monsters []MonsterView       `json:"monsters"`
}

// PlayerJoinedMessage рассылается всем, кроме самого новичка.
type PlayerJoinedMessage struct {
	Type   string     `json:"type"`
	Player PlayerView `json:"player"`
}

// PlayerLeftMessage рассылается при дисконнекте.
type PlayerLeftMessage struct {
	Type     string          `json:"type"`
	PlayerID domain.EntityID `json:"playerId"`
}

// PlayerMovedMessage рассылается всем, кроме самого ходившего:
// у него эта клетка уже нарисована оптимистично.
type PlayerMovedMessage struct {
	Type     string          `json:"type"`
	PlayerID domain.EntityID `json:"playerId"`
	X        int             `json:"x"`
	Y        int             `json:"y"`
}

// PlayerDamagedMessage несет новое здоровье и размер удара.
type PlayerDamagedMessage struct {
	Type     string          `json:"type"`
	PlayerID domain.EntityID `json:"playerId"`
	Health   int             `json:"health"`
	Damage   int             `json:"damage"`
}

// PlayerDiedMessage объявляется ровно один раз на смерть.
type PlayerDiedMessage struct {
	Type     string          `json:"type"`
	PlayerID domain.EntityID `json:"playerId"`
}

// FireballCastMessage получают все, включая кастера.
type FireballCastMessage struct {
	Type     string       `json:"type"`
	Fireball FireballView `json:"fireball"`
}

// MonsterMovedMessage рассылается на каждый шаг монстра.
type MonsterMovedMessage struct {
	Type      string          `json:"type"`
	MonsterID domain.EntityID `json:"monsterId"`
	X         int             `json:"x"`
	Y         int             `json:"y"`
}

// MonsterDamagedMessage несет новое здоровье и размер удара.
type MonsterDamagedMessage struct {
	Type      string          `json:"type"`
	MonsterID domain.EntityID `json:"monsterId"`
	Health    int             `json:"health"`
	Damage    int             `json:"damage"`
}

// MonsterDiedMessage объявляется ровно один раз на смерть.
type MonsterDiedMessage struct {
	Type      string          `json:"type"`
	MonsterID domain.EntityID `json:"monsterId"`
}

// MonsterSpawnedMessage рассылается на респаун и на стартовый спавн.
type MonsterSpawnedMessage struct {
	Type    string      `json:"type"`
	Monster MonsterView `json:"monster"`
}

// --- КОНСТРУКТОРЫ ---
// Выставляют дискриминатор, чтобы ни одна точка отправки его не забыла.

func NewInit(playerID domain.EntityID, grid *domain.TileGrid, players []PlayerView, monsters []MonsterView) InitMessage {
	return InitMessage{
		Type:     TypeInit,
		PlayerID: playerID,
		Map:      grid.Tiles,
		Width:    grid.Width,
		Height:   grid.Height,
		Players:  players,
		Monsters: monsters,
	}
}

func NewPlayerJoined(p *domain.Player) PlayerJoinedMessage {
	return PlayerJoinedMessage{Type: TypePlayerJoined, Player: NewPlayerView(p)}
}

func NewPlayerLeft(id domain.EntityID) PlayerLeftMessage {
	return PlayerLeftMessage{Type: TypePlayerLeft, PlayerID: id}
}

func NewPlayerMoved(id domain.EntityID, pos domain.Position) PlayerMovedMessage {
	return PlayerMovedMessage{Type: TypePlayerMoved, PlayerID: id, X: pos.X, Y: pos.Y}
}

func NewPlayerDamaged(id domain.EntityID, health, damage int) PlayerDamagedMessage {
	return PlayerDamagedMessage{Type: TypePlayerDamaged, PlayerID: id, Health: health, Damage: damage}
}

func NewPlayerDied(id domain.EntityID) PlayerDiedMessage {
	return PlayerDiedMessage{Type: TypePlayerDied, PlayerID: id}
}

func NewFireballCast(fb FireballView) FireballCastMessage {
	return FireballCastMessage{Type: TypeFireballCast, Fireball: fb}
}

func NewMonsterMoved(id domain.EntityID, pos domain.Position) MonsterMovedMessage {
	return MonsterMovedMessage{Type: TypeMonsterMoved, MonsterID: id, X: pos.X, Y: pos.Y}
}

func NewMonsterDamaged(id domain.EntityID, health, damage int) MonsterDamagedMessage {
	return MonsterDamagedMessage{Type: TypeMonsterDamaged, MonsterID: id, Health: health, Damage: damage}
}

func NewMonsterDied(id domain.EntityID) MonsterDiedMessage {
	return MonsterDiedMessage{Type: TypeMonsterDied, MonsterID: id}
}

func NewMonsterSpawned(m *domain.Monster) MonsterSpawnedMessage {
	return MonsterSpawnedMessage{Type: TypeMonsterSpawned, Monster: NewMonsterView(m)}
}

// --- КЛИЕНТ -> СЕРВЕР ---

// MoveCommand - запрос шага на клетку (x, y). Абсолютные координаты.
type MoveCommand struct {
	Type string `json:"type"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

// FireballCommand - запрос каста в пиксельную точку карты.
type FireballCommand struct {
	Type    string  `json:"type"`
	TargetX float64 `json:"targetX"`
	TargetY float64 `json:"targetY"`
}

// AttackCommand - удар рукой по монстру.
type AttackCommand struct {
	Type      string          `json:"type"`
	MonsterID domain.EntityID `json:"monsterId"`
}

// FireballHitCommand - клиент сообщает, что его снаряд долетел до
// монстра. Сервер верит факту попадания, но урон считает сам.
type FireballHitCommand struct {
	Type      string          `json:"type"`
	MonsterID domain.EntityID `json:"monsterId"`
}
