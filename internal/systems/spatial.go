package systems

import (
	"math/rand"

	"github.com/bbagher/tibiaclone/internal/domain"
)

// IsWalkable проверяет, можно ли встать на клетку. Для координат за
// пределами карты всегда false - невалидный ввод значит "не пройти".
func IsWalkable(grid *domain.TileGrid, x, y int) bool {
	return grid.At(x, y).Walkable()
}

// FindSpawnPosition подбирает случайную проходимую клетку, отступая от
// кромки карты на SpawnEdgeMargin. Поиск ограничен SpawnMaxAttempts:
// после исчерпания возвращается последняя выборка, даже непроходимая.
func FindSpawnPosition(grid *domain.TileGrid, rng *rand.Rand) domain.Position {
	margin := domain.SpawnEdgeMargin
	spanX := grid.Width - 2*margin
	spanY := grid.Height - 2*margin
	if spanX <= 0 || spanY <= 0 {
		// Карта слишком маленькая для отступов
		margin = 0
		spanX = grid.Width
		spanY = grid.Height
	}

	var pos domain.Position
	for i := 0; i < domain.SpawnMaxAttempts; i++ {
		pos = domain.Position{
			X: margin + rng.Intn(spanX),
			Y: margin + rng.Intn(spanY),
		}
		if IsWalkable(grid, pos.X, pos.Y) {
			return pos
		}
	}
	return pos
}

// StepToward вычисляет один жадный шаг из from в сторону to.
// Порядок кандидатов: диагональ, потом только горизонталь, потом только
// вертикаль. Первый проходимый побеждает; если все заблокированы,
// позиция не меняется.
func StepToward(grid *domain.TileGrid, from, to domain.Position) domain.Position {
	dx := sign(to.X - from.X)
	dy := sign(to.Y - from.Y)

	if dx == 0 && dy == 0 {
		return from
	}

	var candidates []domain.Position
	if dx != 0 && dy != 0 {
		candidates = append(candidates, from.Shift(dx, dy))
	}
	if dx != 0 {
		candidates = append(candidates, from.Shift(dx, 0))
	}
	if dy != 0 {
		candidates = append(candidates, from.Shift(0, dy))
	}

	for _, c := range candidates {
		if IsWalkable(grid, c.X, c.Y) {
			return c
		}
	}

	return from // Тупик
}

func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
