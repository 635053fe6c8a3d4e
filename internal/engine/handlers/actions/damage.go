package actions

import (
	"github.com/bbagher/tibiaclone/internal/domain"
	"github.com/bbagher/tibiaclone/internal/engine/handlers"
	"github.com/bbagher/tibiaclone/pkg/protocol"
)

// applyMonsterDamage - общий финал любой атаки по монстру, что ближней,
// что снарядом. Урон уже брошен вызывающей стороной, здесь только
// применение и оповещения.
//
// Если монстра с таким ID в мире нет, это не ошибка: два снаряда могли
// долететь в один тик, и второй бьет по уже убранному монстру.
func applyMonsterDamage(ctx handlers.Context, monsterID domain.EntityID, damage int) (handlers.Result, error) {
	monster := ctx.World.Monster(monsterID)
	if monster == nil {
		return handlers.EmptyResult(), nil
	}

	died := monster.TakeDamage(damage)
	var res handlers.Result

	if !died {
		res.Broadcast(protocol.NewMonsterDamaged(monster.ID, monster.Health, damage))
		return res, nil
	}

	ctx.World.RemoveMonster(monster.ID)
	res.Broadcast(protocol.NewMonsterDied(monster.ID))
	res.Schedule(domain.MonsterRespawnDelay, domain.InternalCommand{
		Action: domain.ActionSpawnMonster,
	})
	return res, nil
}
