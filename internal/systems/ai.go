package systems

import (
	"time"

	"github.com/bbagher/tibiaclone/internal/domain"
)

// MonsterAction - вид решения ИИ на текущий тик.
type MonsterAction uint8

const (
	MonsterWait MonsterAction = iota
	MonsterAttack
	MonsterMove
)

// MonsterDecision - что монстр делает в этом тике. Состояние между
// тиками не хранится: охота/атака каждый раз выводятся заново из
// текущей дистанции до ближайшего игрока.
type MonsterDecision struct {
	Action MonsterAction
	Target *domain.Player  // цель атаки (для MonsterAttack)
	Next   domain.Position // следующая клетка (для MonsterMove)
}

// ComputeMonsterAction решает, что делать монстру.
// Решение чистое: бросок шанса атаки и урона делает движок.
func ComputeMonsterAction(w *domain.World, m *domain.Monster, now time.Time) MonsterDecision {
	target := NearestPlayer(w, m.Pos)
	if target == nil {
		return MonsterDecision{Action: MonsterWait}
	}

	dist := m.Pos.DistanceTo(target.Pos)

	// В радиусе удара (включая диагонали)
	if dist <= domain.MeleeRange {
		return MonsterDecision{Action: MonsterAttack, Target: target}
	}

	// Погоня. Думаем каждый тик, но шагаем не чаще MonsterMoveInterval.
	if now.Sub(m.LastMove) < domain.MonsterMoveInterval {
		return MonsterDecision{Action: MonsterWait}
	}

	next := StepToward(w.Grid, m.Pos, target.Pos)
	if next == m.Pos {
		return MonsterDecision{Action: MonsterWait} // путь перекрыт
	}

	return MonsterDecision{Action: MonsterMove, Next: next}
}

// NearestPlayer находит ближайшего живого игрока к точке from.
// При равных дистанциях побеждает меньший ID, так что выбор
// детерминирован независимо от порядка обхода map.
func NearestPlayer(w *domain.World, from domain.Position) *domain.Player {
	var best *domain.Player
	bestDist := 0

	for _, id := range w.PlayerIDs() {
		p := w.Players[id]
		if p.IsDead() {
			continue
		}
		d := from.DistanceSquaredTo(p.Pos)
		if best == nil || d < bestDist {
			best = p
			bestDist = d
		}
	}
	return best
}
