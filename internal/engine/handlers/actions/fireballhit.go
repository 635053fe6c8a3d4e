package actions

import (
	"github.com/bbagher/tibiaclone/internal/domain"
	"github.com/bbagher/tibiaclone/internal/engine/handlers"
	"github.com/bbagher/tibiaclone/pkg/protocol"
)

// HandleFireballHit применяет попадание снаряда, о котором доложил
// клиент. Факт попадания на слово, урон всегда фиксированный.
func HandleFireballHit(ctx handlers.Context, p protocol.FireballHitCommand) (handlers.Result, error) {
	actor := ctx.World.Player(ctx.Actor)
	if actor == nil || actor.IsDead() {
		return handlers.Rejected(), nil
	}

	return applyMonsterDamage(ctx, p.MonsterID, domain.FireballDamage)
}
