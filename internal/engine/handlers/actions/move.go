package actions

import (
	"github.com/bbagher/tibiaclone/internal/engine/handlers"
	"github.com/bbagher/tibiaclone/internal/systems"
	"github.com/bbagher/tibiaclone/pkg/protocol"
)

// HandleMove переставляет игрока на запрошенную клетку.
// Непроходимая цель отклоняется молча: ни ошибки, ни рассылки -
// оптимистичный шаг клиента просто никогда не подтвердится.
func HandleMove(ctx handlers.Context, p protocol.MoveCommand) (handlers.Result, error) {
	actor := ctx.World.Player(ctx.Actor)
	if actor == nil || actor.IsDead() {
		return handlers.Rejected(), nil
	}

	if !systems.IsWalkable(ctx.World.Grid, p.X, p.Y) {
		return handlers.Rejected(), nil
	}

	actor.Pos.X = p.X
	actor.Pos.Y = p.Y

	// Сам ходивший эхо не получает: у него клетка уже нарисована
	var res handlers.Result
	res.BroadcastOthers(protocol.NewPlayerMoved(actor.ID, actor.Pos))
	return res, nil
}
