package domain

import "strings"

// ActionType - внутренний числовой идентификатор действия
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionMove
	ActionFireball
	ActionAttack
	ActionFireballHit

	// ActionSpawnMonster - служебное действие. С провода не принимается:
	// его ставит в очередь сам движок (респаун) или админский эндпоинт.
	ActionSpawnMonster
)

// Маппинг для конвертации JSON -> Domain.
// spawnMonster здесь намеренно отсутствует.
var actionStringToCmd = map[string]ActionType{
	"MOVE":        ActionMove,
	"FIREBALL":    ActionFireball,
	"ATTACK":      ActionAttack,
	"FIREBALLHIT": ActionFireballHit,
}

// Маппинг для логов Domain -> String
var actionCmdToString = map[ActionType]string{
	ActionMove:         "MOVE",
	ActionFireball:     "FIREBALL",
	ActionAttack:       "ATTACK",
	ActionFireballHit:  "FIREBALLHIT",
	ActionSpawnMonster: "SPAWNMONSTER",
}

// ParseAction конвертирует строку из JSON в ActionType
func ParseAction(s string) ActionType {
	// Делаем нечувствительным к регистру для надежности
	upper := strings.ToUpper(s)
	if val, ok := actionStringToCmd[upper]; ok {
		return val
	}
	return ActionUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (a ActionType) String() string {
	if val, ok := actionCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}
