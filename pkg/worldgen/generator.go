package worldgen

import (
	"math/rand"

	"github.com/bbagher/tibiaclone/internal/domain"
)

// Веса тайлов внутренней области (в сумме 100)
const (
	weightGrass = 62
	weightDirt  = 14
	weightTree  = 12
	weightStone = 7
	weightWater = 5
)

// Generate создает карту мира: сплошная водяная кромка по периметру,
// внутренность набирается по таблице весов. Для карт от 3x3 генератор
// гарантирует хотя бы одну проходимую клетку внутри; карты меньше
// не имеют внутренности и остаются водой.
func Generate(width, height int, rng *rand.Rand) *domain.TileGrid {
	grid := domain.NewTileGrid(width, height, domain.TileWater)
	if width < 3 || height < 3 {
		return grid
	}

	// 1. Внутренняя область по таблице весов
	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			grid.Set(x, y, rollTile(rng))
		}
	}

	// 2. Страховка от вырожденной карты: если суши не выпало,
	// центр превращается в траву.
	if !hasWalkableInterior(grid) {
		grid.Set(width/2, height/2, domain.TileGrass)
	}

	return grid
}

func rollTile(rng *rand.Rand) domain.TileType {
	roll := rng.Intn(100)
	switch {
	case roll < weightGrass:
		return domain.TileGrass
	case roll < weightGrass+weightDirt:
		return domain.TileDirt
	case roll < weightGrass+weightDirt+weightTree:
		return domain.TileTree
	case roll < weightGrass+weightDirt+weightTree+weightStone:
		return domain.TileStone
	default:
		return domain.TileWater
	}
}

func hasWalkableInterior(grid *domain.TileGrid) bool {
	for y := 1; y < grid.Height-1; y++ {
		for x := 1; x < grid.Width-1; x++ {
			if grid.At(x, y).Walkable() {
				return true
			}
		}
	}
	return false
}
