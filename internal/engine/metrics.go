package engine

import (
	"sync/atomic"
)

// Metrics считает ключевые показатели игрового цикла.
// Пишет их горутина движка, читает HTTP-хендлер /metrics,
// поэтому все доступы атомарные.
type Metrics struct {
	Ticks            int64 // Прошедшие тики игрового цикла
	CommandsApplied  int64 // Принятые и исполненные команды
	CommandsRejected int64 // Молча отклоненные команды (шаг в стену и т.п.)
	CommandsFailed   int64 // Команды с битым payload
	Joins            int64 // Подключения игроков
	Leaves           int64 // Отключения игроков
	MonsterKills     int64 // Убитые монстры
	MonsterSpawns    int64 // Рожденные монстры (старт + респауны)
}

func (m *Metrics) IncTick()     { atomic.AddInt64(&m.Ticks, 1) }
func (m *Metrics) IncApplied()  { atomic.AddInt64(&m.CommandsApplied, 1) }
func (m *Metrics) IncRejected() { atomic.AddInt64(&m.CommandsRejected, 1) }
func (m *Metrics) IncFailed()   { atomic.AddInt64(&m.CommandsFailed, 1) }
func (m *Metrics) IncJoin()     { atomic.AddInt64(&m.Joins, 1) }
func (m *Metrics) IncLeave()    { atomic.AddInt64(&m.Leaves, 1) }
func (m *Metrics) IncKill()     { atomic.AddInt64(&m.MonsterKills, 1) }
func (m *Metrics) IncSpawn()    { atomic.AddInt64(&m.MonsterSpawns, 1) }

// Snapshot возвращает копию счетчиков для HTTP-выдачи.
func (m *Metrics) Snapshot() map[string]int64 {
	return map[string]int64{
		"ticks":             atomic.LoadInt64(&m.Ticks),
		"commands_applied":  atomic.LoadInt64(&m.CommandsApplied),
		"commands_rejected": atomic.LoadInt64(&m.CommandsRejected),
		"commands_failed":   atomic.LoadInt64(&m.CommandsFailed),
		"joins":             atomic.LoadInt64(&m.Joins),
		"leaves":            atomic.LoadInt64(&m.Leaves),
		"monster_kills":     atomic.LoadInt64(&m.MonsterKills),
		"monster_spawns":    atomic.LoadInt64(&m.MonsterSpawns),
	}
}
