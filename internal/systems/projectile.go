package systems

import (
	"math"
	"time"

	"github.com/bbagher/tibiaclone/internal/domain"
)

// NewFireball создает снаряд, летящий из центра клетки кастера в
// указанную пиксельную точку с постоянной скоростью.
// Сервер полет не считает - эта математика живет у клиентской реплики,
// но лежит здесь, чтобы обе стороны считали одинаково.
func NewFireball(id, casterID domain.EntityID, from domain.Position, target domain.Vec2) *domain.Fireball {
	start := from.Center()
	return &domain.Fireball{
		ID:       id,
		PlayerID: casterID,
		Pos:      start,
		Vel:      FireballVelocity(start, target),
		Active:   true,
	}
}

// FireballVelocity возвращает вектор скорости снаряда (px/сек).
// Если цель совпадает со стартом, снаряд летит вправо.
func FireballVelocity(start, target domain.Vec2) domain.Vec2 {
	dx := target.X - start.X
	dy := target.Y - start.Y
	length := math.Sqrt(dx*dx + dy*dy)
	if length == 0 {
		return domain.Vec2{X: domain.FireballSpeed}
	}
	return domain.Vec2{
		X: dx / length * domain.FireballSpeed,
		Y: dy / length * domain.FireballSpeed,
	}
}

// AdvanceFireball продвигает снаряд на dt вперед.
// Снаряд гаснет, вылетев за пределы карты.
func AdvanceFireball(grid *domain.TileGrid, fb *domain.Fireball, dt time.Duration) {
	if !fb.Active {
		return
	}
	fb.Pos = fb.Pos.Add(fb.Vel.Scale(dt.Seconds()))

	tile := fb.Pos.Tile()
	if !grid.InBounds(tile.X, tile.Y) {
		fb.Active = false
	}
}

// FireballHits проверяет попадание: расстояние от снаряда до центра
// клетки монстра меньше FireballHitRadius.
func FireballHits(fb *domain.Fireball, monsterPos domain.Position) bool {
	return fb.Active && fb.Pos.DistanceTo(monsterPos.Center()) < domain.FireballHitRadius
}
