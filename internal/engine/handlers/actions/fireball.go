package actions

import (
	"github.com/bbagher/tibiaclone/internal/engine/handlers"
	"github.com/bbagher/tibiaclone/pkg/protocol"
)

// HandleFireball регистрирует запуск снаряда и ретранслирует его всем,
// включая самого кастера. Сервер полёт не считает: траектория целиком
// на клиентах, здесь только выдаётся id и фиксируется точка старта.
func HandleFireball(ctx handlers.Context, p protocol.FireballCommand) (handlers.Result, error) {
	actor := ctx.World.Player(ctx.Actor)
	if actor == nil || actor.IsDead() {
		return handlers.Rejected(), nil
	}

	start := actor.Pos.Center()
	view := protocol.FireballView{
		ID:        ctx.World.NextID(),
		PlayerID:  actor.ID,
		StartX:    start.X,
		StartY:    start.Y,
		TargetX:   p.TargetX,
		TargetY:   p.TargetY,
		Timestamp: ctx.Now.UnixMilli(),
	}

	var res handlers.Result
	res.Broadcast(protocol.NewFireballCast(view))
	return res, nil
}
