package actions

import (
	"github.com/bbagher/tibiaclone/internal/domain"
	"github.com/bbagher/tibiaclone/internal/engine/handlers"
	"github.com/bbagher/tibiaclone/internal/systems"
	"github.com/bbagher/tibiaclone/pkg/protocol"
)

// HandleSpawnMonster рождает нового монстра на случайной проходимой
// клетке. Команда служебная: её ставит таймер респауна и стартовое
// заселение мира, с провода она не приходит.
func HandleSpawnMonster(ctx handlers.Context) (handlers.Result, error) {
	pos := systems.FindSpawnPosition(ctx.World.Grid, ctx.Rng)
	monster := domain.NewMonster(ctx.World.NextID(), pos)
	ctx.World.AddMonster(monster)

	var res handlers.Result
	res.Broadcast(protocol.NewMonsterSpawned(monster))
	return res, nil
}
