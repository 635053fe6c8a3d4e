package network

import (
	"encoding/json"
	"sync"
	"sync/atomic"

	"github.com/bbagher/tibiaclone/internal/domain"
	"github.com/bbagher/tibiaclone/pkg/logger"
)

// Hub занимается только рассылкой сообщений подписчикам.
// Сообщение сериализуется один раз, подписчикам раздаются байты:
// при десятке подписчиков не кодируем один и тот же JSON десять раз.
type Hub struct {
	mu sync.RWMutex
	// Мапа: EntityID -> Личный канал сессии
	subscribers map[domain.EntityID]chan []byte

	dropped int64 // Кадры, потерянные на переполненных каналах
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[domain.EntityID]chan []byte),
	}
}

// Register создает личный канал для игрока (сессии или бота).
func (h *Hub) Register(id domain.EntityID) chan []byte {
	h.mu.Lock()
	defer h.mu.Unlock()

	// Если канал был, закрываем
	if old, ok := h.subscribers[id]; ok {
		close(old)
	}

	ch := make(chan []byte, 256)
	h.subscribers[id] = ch
	return ch
}

// Unregister удаляет подписчика и закрывает его канал.
func (h *Hub) Unregister(id domain.EntityID) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if ch, ok := h.subscribers[id]; ok {
		close(ch)
		delete(h.subscribers, id)
	}
}

// SendTo отправляет сообщение конкретному ID (Unicast).
// Доставка fire-and-forget: нет подписчика или канал полон - кадр
// молча пропускается, никаких повторов и очередей.
func (h *Hub) SendTo(id domain.EntityID, msg any) {
	data, ok := h.encode(msg)
	if !ok {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	if ch, ok := h.subscribers[id]; ok {
		h.push(id, ch, data)
	}
}

// Broadcast отправляет кадр всем подписчикам.
func (h *Hub) Broadcast(msg any) {
	h.broadcast(msg, 0)
}

// BroadcastExcept отправляет кадр всем, кроме указанного ID.
// Так ходивший игрок не получает эхо собственного шага.
func (h *Hub) BroadcastExcept(exclude domain.EntityID, msg any) {
	h.broadcast(msg, exclude)
}

func (h *Hub) broadcast(msg any, exclude domain.EntityID) {
	data, ok := h.encode(msg)
	if !ok {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for id, ch := range h.subscribers {
		if id == exclude {
			continue
		}
		h.push(id, ch, data)
	}
}

// HasSubscriber проверяет, подключена ли сессия для данного ID.
func (h *Hub) HasSubscriber(id domain.EntityID) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.subscribers[id]
	return ok
}

// SubscriberCount возвращает количество активных подписчиков.
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}

func (h *Hub) encode(msg any) ([]byte, bool) {
	data, err := json.Marshal(msg)
	if err != nil {
		logger.Log.WithError(err).Error("Hub: failed to encode message")
		return nil, false
	}
	return data, true
}

func (h *Hub) push(id domain.EntityID, ch chan []byte, data []byte) {
	select {
	case ch <- data:
	default:
		// Канал переполнен: клиент безнадежно отстал, кадр теряем
		atomic.AddInt64(&h.dropped, 1)
		logger.Log.WithField("entity_id", id).Debug("Hub: channel full, frame dropped")
	}
}

// Dropped возвращает счетчик потерянных кадров.
func (h *Hub) Dropped() int64 {
	return atomic.LoadInt64(&h.dropped)
}
