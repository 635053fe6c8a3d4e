package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
)

type typeHead struct {
	Type string `json:"type"`
}

// PeekType читает дискриминатор "type", не разбирая остальной кадр.
func PeekType(raw []byte) (string, error) {
	var head typeHead
	if err := json.Unmarshal(raw, &head); err != nil {
		return "", fmt.Errorf("malformed frame: %w", err)
	}
	if head.Type == "" {
		return "", errors.New("frame has no type")
	}
	return head.Type, nil
}

// DecodeServerMessage разбирает кадр сервера в типизированную структуру.
// Используется клиентской репликой и тестами; сам сервер свои кадры
// обратно не читает.
func DecodeServerMessage(raw []byte) (any, error) {
	t, err := PeekType(raw)
	if err != nil {
		return nil, err
	}

	var msg any
	switch t {
	case TypeInit:
		msg = &InitMessage{}
	case TypePlayerJoined:
		msg = &PlayerJoinedMessage{}
	case TypePlayerLeft:
		msg = &PlayerLeftMessage{}
	case TypePlayerMoved:
		msg = &PlayerMovedMessage{}
	case TypePlayerDamaged:
		msg = &PlayerDamagedMessage{}
	case TypePlayerDied:
		msg = &PlayerDiedMessage{}
	case TypeFireballCast:
		msg = &FireballCastMessage{}
	case TypeMonsterMoved:
		msg = &MonsterMovedMessage{}
	case TypeMonsterDamaged:
		msg = &MonsterDamagedMessage{}
	case TypeMonsterDied:
		msg = &MonsterDiedMessage{}
	case TypeMonsterSpawned:
		msg = &MonsterSpawnedMessage{}
	default:
		return nil, fmt.Errorf("unknown server message type %q", t)
	}

	if err := json.Unmarshal(raw, msg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", t, err)
	}
	return msg, nil
}
