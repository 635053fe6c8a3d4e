package domain

import "encoding/json"

// InternalCommand - оптимизированная команда для движка.
// Использует ActionType вместо string.
type InternalCommand struct {
	Action  ActionType      // Число! Быстро и безопасно.
	Actor   EntityID        // Кто выполняет команду
	Payload json.RawMessage // Сырой кадр (парсится хендлером)
}
