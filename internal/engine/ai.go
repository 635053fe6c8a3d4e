package engine

import (
	"math/rand"
	"time"

	"github.com/bbagher/tibiaclone/internal/domain"
	"github.com/bbagher/tibiaclone/internal/engine/handlers"
	"github.com/bbagher/tibiaclone/internal/systems"
	"github.com/bbagher/tibiaclone/pkg/protocol"
)

// AdvanceMonsters прогоняет ИИ всех монстров на один тик и возвращает
// события для рассылки. Монстры обходятся по возрастанию ID: порядок
// детерминирован, два монстра у одной цели всегда бьют в одном порядке.
func AdvanceMonsters(w *domain.World, rng *rand.Rand, now time.Time) []handlers.Event {
	var events []handlers.Event

	for _, id := range w.MonsterIDs() {
		m := w.Monsters[id]
		decision := systems.ComputeMonsterAction(w, m, now)

		switch decision.Action {
		case systems.MonsterAttack:
			// Рядом с игроком монстр пробует ударить каждый тик,
			// но попадает с шансом MonsterAttackChance
			if !systems.MonsterStrikes(rng) {
				continue
			}
			target := decision.Target
			damage := systems.RollMonsterDamage(rng)
			died := target.TakeDamage(damage)

			events = append(events, handlers.Event{
				Scope: handlers.ScopeAll,
				Msg:   protocol.NewPlayerDamaged(target.ID, target.Health, damage),
			})
			if died {
				events = append(events, handlers.Event{
					Scope: handlers.ScopeAll,
					Msg:   protocol.NewPlayerDied(target.ID),
				})
			}

		case systems.MonsterMove:
			m.Pos = decision.Next
			m.LastMove = now
			events = append(events, handlers.Event{
				Scope: handlers.ScopeAll,
				Msg:   protocol.NewMonsterMoved(m.ID, m.Pos),
			})
		}
	}

	return events
}
