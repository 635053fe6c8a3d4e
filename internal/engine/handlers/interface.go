package handlers

import (
	"encoding/json"
	"math/rand"
	"time"

	"github.com/bbagher/tibiaclone/internal/domain"
)

// Scope определяет адресатов исходящего события.
type Scope uint8

const (
	ScopeAll    Scope = iota // всем подписчикам
	ScopeOthers              // всем, кроме актора
	ScopeActor               // только актору
)

// Event - одно исходящее сообщение с адресацией.
type Event struct {
	Scope Scope
	Msg   any
}

// Timer - отложенная команда (респаун монстра).
type Timer struct {
	After time.Duration
	Cmd   domain.InternalCommand
}

// Context передает хендлеру состояние мира.
// Хендлер мутирует мир напрямую: весь пакет вызывается из единственной
// горутины игрового цикла, поэтому блокировки не нужны.
type Context struct {
	World *domain.World
	Actor domain.EntityID // кто выполняет команду; 0 для системных команд
	Rng   *rand.Rand
	Now   time.Time
}

// Result - что движок должен сделать после команды: какие события
// разослать и какие таймеры поставить. Хендлер сам в сеть не пишет,
// поэтому логику можно тестировать без единого сокета.
type Result struct {
	Events []Event
	Timers []Timer

	// Rejected помечает молчаливый отказ (например, шаг в воду).
	// Клиент об отказе не узнает, но метрики его считают.
	Rejected bool
}

// HandlerFunc - это контракт для любой команды (move, attack, etc).
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)

// EmptyResult - вспомогательная функция для пустого успешного ответа
func EmptyResult() Result {
	return Result{}
}

// Rejected - пустой результат с пометкой отказа
func Rejected() Result {
	return Result{Rejected: true}
}

// Broadcast добавляет событие для всех подписчиков.
func (r *Result) Broadcast(msg any) {
	r.Events = append(r.Events, Event{Scope: ScopeAll, Msg: msg})
}

// BroadcastOthers добавляет событие для всех, кроме актора.
func (r *Result) BroadcastOthers(msg any) {
	r.Events = append(r.Events, Event{Scope: ScopeOthers, Msg: msg})
}

// Reply добавляет событие только для актора.
func (r *Result) Reply(msg any) {
	r.Events = append(r.Events, Event{Scope: ScopeActor, Msg: msg})
}

// Schedule добавляет отложенную команду.
func (r *Result) Schedule(after time.Duration, cmd domain.InternalCommand) {
	r.Timers = append(r.Timers, Timer{After: after, Cmd: cmd})
}
