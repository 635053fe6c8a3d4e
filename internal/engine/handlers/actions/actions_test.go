package actions

import (
	"math/rand"
	"testing"
	"time"

	"github.com/bbagher/tibiaclone/internal/domain"
	"github.com/bbagher/tibiaclone/internal/engine/handlers"
	"github.com/bbagher/tibiaclone/pkg/protocol"
)

// Helper: мир 6x5 из травы, вода в (3,2)
// [ . . . . . . ]
// [ . . . . . . ]
// [ . . . ~ . . ]  <- вода в (3,2)
// [ . . . . . . ]
// [ . . . . . . ]
func newTestContext(t *testing.T) handlers.Context {
	t.Helper()
	grid := domain.NewTileGrid(6, 5, domain.TileGrass)
	grid.Set(3, 2, domain.TileWater)

	return handlers.Context{
		World: domain.NewWorld(grid),
		Rng:   rand.New(rand.NewSource(42)),
		Now:   time.UnixMilli(1700000000000),
	}
}

func addPlayer(ctx *handlers.Context, pos domain.Position) *domain.Player {
	p := domain.NewPlayer(ctx.World.NextID(), "Tester", pos)
	ctx.World.AddPlayer(p)
	ctx.Actor = p.ID
	return p
}

func addMonster(ctx *handlers.Context, pos domain.Position) *domain.Monster {
	m := domain.NewMonster(ctx.World.NextID(), pos)
	ctx.World.AddMonster(m)
	return m
}

func TestHandleMove_Success(t *testing.T) {
	ctx := newTestContext(t)
	p := addPlayer(&ctx, domain.Position{X: 1, Y: 1})

	res, err := HandleMove(ctx, protocol.MoveCommand{X: 2, Y: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.Pos.X != 2 || p.Pos.Y != 1 {
		t.Errorf("Expected pos (2,1), got (%d,%d)", p.Pos.X, p.Pos.Y)
	}

	// Подтверждение уходит всем, кроме самого ходившего
	if len(res.Events) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(res.Events))
	}
	if res.Events[0].Scope != handlers.ScopeOthers {
		t.Error("playerMoved must not echo back to the mover")
	}
	msg, ok := res.Events[0].Msg.(protocol.PlayerMovedMessage)
	if !ok {
		t.Fatalf("Expected PlayerMovedMessage, got %T", res.Events[0].Msg)
	}
	if msg.PlayerID != p.ID || msg.X != 2 || msg.Y != 1 {
		t.Errorf("Bad event payload: %+v", msg)
	}
}

func TestHandleMove_BlockedTile(t *testing.T) {
	ctx := newTestContext(t)
	p := addPlayer(&ctx, domain.Position{X: 2, Y: 2})

	// Шаг в воду. Игрок остается на месте, клиенту - тишина.
	res, err := HandleMove(ctx, protocol.MoveCommand{X: 3, Y: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !res.Rejected {
		t.Error("Move into water must be rejected")
	}
	if len(res.Events) != 0 {
		t.Errorf("Rejected move must stay silent, got %d events", len(res.Events))
	}
	if p.Pos.X != 2 || p.Pos.Y != 2 {
		t.Errorf("Player moved into water: (%d,%d)", p.Pos.X, p.Pos.Y)
	}
}

func TestHandleMove_OutOfBounds(t *testing.T) {
	ctx := newTestContext(t)
	p := addPlayer(&ctx, domain.Position{X: 0, Y: 0})

	res, _ := HandleMove(ctx, protocol.MoveCommand{X: -1, Y: 0})

	if !res.Rejected {
		t.Error("Move out of bounds must be rejected")
	}
	if p.Pos.X != 0 {
		t.Error("Player moved out of bounds!")
	}
}

func TestHandleMove_DeadActor(t *testing.T) {
	ctx := newTestContext(t)
	p := addPlayer(&ctx, domain.Position{X: 1, Y: 1})
	p.Health = 0

	res, _ := HandleMove(ctx, protocol.MoveCommand{X: 2, Y: 1})

	if !res.Rejected {
		t.Error("Dead player must not move")
	}
	if p.Pos.X != 1 || p.Pos.Y != 1 {
		t.Error("Dead player changed position")
	}
}

func TestHandleFireball_BroadcastToAll(t *testing.T) {
	ctx := newTestContext(t)
	p := addPlayer(&ctx, domain.Position{X: 2, Y: 1})

	res, err := HandleFireball(ctx, protocol.FireballCommand{TargetX: 500, TargetY: 300})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(res.Events) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(res.Events))
	}
	// Кастер тоже получает событие: его снаряд рисуется по рассылке
	if res.Events[0].Scope != handlers.ScopeAll {
		t.Error("fireballCast must reach everyone including the caster")
	}

	msg, ok := res.Events[0].Msg.(protocol.FireballCastMessage)
	if !ok {
		t.Fatalf("Expected FireballCastMessage, got %T", res.Events[0].Msg)
	}
	fb := msg.Fireball
	if fb.ID == 0 {
		t.Error("Fireball must get a world-unique id")
	}
	if fb.PlayerID != p.ID {
		t.Errorf("Expected caster %d, got %d", p.ID, fb.PlayerID)
	}
	// Старт - пиксельный центр клетки кастера: (2*32+16, 1*32+16)
	if fb.StartX != 80 || fb.StartY != 48 {
		t.Errorf("Expected start (80,48), got (%v,%v)", fb.StartX, fb.StartY)
	}
	if fb.TargetX != 500 || fb.TargetY != 300 {
		t.Errorf("Target must pass through unchanged, got (%v,%v)", fb.TargetX, fb.TargetY)
	}
	if fb.Timestamp != ctx.Now.UnixMilli() {
		t.Errorf("Expected timestamp %d, got %d", ctx.Now.UnixMilli(), fb.Timestamp)
	}
}

func TestHandleAttack_DamageRange(t *testing.T) {
	ctx := newTestContext(t)
	addPlayer(&ctx, domain.Position{X: 1, Y: 1})
	m := addMonster(&ctx, domain.Position{X: 2, Y: 1})

	res, err := HandleAttack(ctx, protocol.AttackCommand{MonsterID: m.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	dealt := domain.MonsterMaxHealth - m.Health
	if dealt < domain.MeleeDamageMin || dealt > domain.MeleeDamageMax {
		t.Errorf("Melee damage %d out of range [%d,%d]", dealt, domain.MeleeDamageMin, domain.MeleeDamageMax)
	}

	if len(res.Events) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(res.Events))
	}
	msg, ok := res.Events[0].Msg.(protocol.MonsterDamagedMessage)
	if !ok {
		t.Fatalf("Expected MonsterDamagedMessage, got %T", res.Events[0].Msg)
	}
	if msg.Health != m.Health || msg.Damage != dealt {
		t.Errorf("Event disagrees with world: %+v vs health=%d dealt=%d", msg, m.Health, dealt)
	}
	if len(res.Timers) != 0 {
		t.Error("Surviving monster must not schedule a respawn")
	}
}

func TestHandleAttack_AbsentMonster(t *testing.T) {
	ctx := newTestContext(t)
	addPlayer(&ctx, domain.Position{X: 1, Y: 1})

	// Монстр уже убран из мира (убит за мгновение до). Тихий no-op.
	res, err := HandleAttack(ctx, protocol.AttackCommand{MonsterID: 999})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Events) != 0 || len(res.Timers) != 0 {
		t.Error("Attack on a missing monster must do nothing")
	}
}

func TestHandleFireballHit_FixedDamageUntilDeath(t *testing.T) {
	ctx := newTestContext(t)
	addPlayer(&ctx, domain.Position{X: 1, Y: 1})
	m := addMonster(&ctx, domain.Position{X: 4, Y: 3})

	// 50 -> 35 -> 20 -> 5, каждый раз ровно FireballDamage
	want := []int{35, 20, 5}
	for i, expected := range want {
		res, err := HandleFireballHit(ctx, protocol.FireballHitCommand{MonsterID: m.ID})
		if err != nil {
			t.Fatalf("hit %d: unexpected error: %v", i+1, err)
		}
		if m.Health != expected {
			t.Fatalf("hit %d: expected health %d, got %d", i+1, expected, m.Health)
		}
		msg := res.Events[0].Msg.(protocol.MonsterDamagedMessage)
		if msg.Damage != domain.FireballDamage {
			t.Errorf("hit %d: expected damage %d, got %d", i+1, domain.FireballDamage, msg.Damage)
		}
	}

	// Четвертое попадание добивает: monsterDied, удаление, таймер респауна
	res, err := HandleFireballHit(ctx, protocol.FireballHitCommand{MonsterID: m.ID})
	if err != nil {
		t.Fatalf("killing hit: unexpected error: %v", err)
	}

	if ctx.World.Monster(m.ID) != nil {
		t.Error("Dead monster must be removed from the world")
	}
	if len(res.Events) != 1 {
		t.Fatalf("Expected single monsterDied, got %d events", len(res.Events))
	}
	died, ok := res.Events[0].Msg.(protocol.MonsterDiedMessage)
	if !ok {
		t.Fatalf("Expected MonsterDiedMessage, got %T", res.Events[0].Msg)
	}
	if died.MonsterID != m.ID {
		t.Errorf("Expected monster %d, got %d", m.ID, died.MonsterID)
	}

	if len(res.Timers) != 1 {
		t.Fatalf("Expected 1 respawn timer, got %d", len(res.Timers))
	}
	timer := res.Timers[0]
	if timer.After != domain.MonsterRespawnDelay {
		t.Errorf("Expected respawn in %v, got %v", domain.MonsterRespawnDelay, timer.After)
	}
	if timer.Cmd.Action != domain.ActionSpawnMonster {
		t.Errorf("Expected spawnMonster command, got %v", timer.Cmd.Action)
	}

	// Пятое попадание бьет в пустоту и молчит
	res, _ = HandleFireballHit(ctx, protocol.FireballHitCommand{MonsterID: m.ID})
	if len(res.Events) != 0 || len(res.Timers) != 0 {
		t.Error("Hit after death must be a silent no-op")
	}
}

func TestHandleSpawnMonster(t *testing.T) {
	ctx := newTestContext(t)

	res, err := HandleSpawnMonster(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ids := ctx.World.MonsterIDs()
	if len(ids) != 1 {
		t.Fatalf("Expected 1 monster in world, got %d", len(ids))
	}
	m := ctx.World.Monster(ids[0])
	if m.Health != domain.MonsterMaxHealth {
		t.Errorf("Expected full health %d, got %d", domain.MonsterMaxHealth, m.Health)
	}
	if !ctx.World.Grid.At(m.Pos.X, m.Pos.Y).Walkable() {
		t.Errorf("Monster spawned on blocked tile (%d,%d)", m.Pos.X, m.Pos.Y)
	}

	if len(res.Events) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(res.Events))
	}
	msg, ok := res.Events[0].Msg.(protocol.MonsterSpawnedMessage)
	if !ok {
		t.Fatalf("Expected MonsterSpawnedMessage, got %T", res.Events[0].Msg)
	}
	if msg.Monster.ID != m.ID || msg.Monster.Health != domain.MonsterMaxHealth {
		t.Errorf("Bad spawn payload: %+v", msg.Monster)
	}
}
