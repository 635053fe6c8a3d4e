package actions

import (
	"github.com/bbagher/tibiaclone/internal/engine/handlers"
	"github.com/bbagher/tibiaclone/internal/systems"
	"github.com/bbagher/tibiaclone/pkg/protocol"
)

// HandleAttack - удар рукой по монстру. Дистанцию сервер не проверяет,
// урон бросает сам: клиенту доверяется факт, но не цифры.
func HandleAttack(ctx handlers.Context, p protocol.AttackCommand) (handlers.Result, error) {
	actor := ctx.World.Player(ctx.Actor)
	if actor == nil || actor.IsDead() {
		return handlers.Rejected(), nil
	}

	return applyMonsterDamage(ctx, p.MonsterID, systems.RollMeleeDamage(ctx.Rng))
}
