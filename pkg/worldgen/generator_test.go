package worldgen

import (
	"math/rand"
	"testing"

	"github.com/bbagher/tibiaclone/internal/domain"
)

func TestGenerate(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	grid := Generate(domain.DefaultMapWidth, domain.DefaultMapHeight, rng)

	// 1. Проверка размеров мира
	if grid.Width != domain.DefaultMapWidth || grid.Height != domain.DefaultMapHeight {
		t.Errorf("Expected map size %dx%d, got %dx%d",
			domain.DefaultMapWidth, domain.DefaultMapHeight, grid.Width, grid.Height)
	}
	if len(grid.Tiles) != grid.Height || len(grid.Tiles[0]) != grid.Width {
		t.Fatalf("Tiles slice is %dx%d, want %dx%d",
			len(grid.Tiles), len(grid.Tiles[0]), grid.Height, grid.Width)
	}

	// 2. Кромка карты - всегда вода (замкнутая арена)
	for x := 0; x < grid.Width; x++ {
		if grid.At(x, 0) != domain.TileWater || grid.At(x, grid.Height-1) != domain.TileWater {
			t.Fatalf("Border at x=%d is not water", x)
		}
	}
	for y := 0; y < grid.Height; y++ {
		if grid.At(0, y) != domain.TileWater || grid.At(grid.Width-1, y) != domain.TileWater {
			t.Fatalf("Border at y=%d is not water", y)
		}
	}

	// 3. Внутри только известные типы тайлов
	known := map[domain.TileType]bool{
		domain.TileGrass: true, domain.TileWater: true, domain.TileTree: true,
		domain.TileStone: true, domain.TileDirt: true,
	}
	walkable := 0
	for y := 1; y < grid.Height-1; y++ {
		for x := 1; x < grid.Width-1; x++ {
			tile := grid.At(x, y)
			if !known[tile] {
				t.Fatalf("Unknown tile %q at (%d,%d)", tile, x, y)
			}
			if tile.Walkable() {
				walkable++
			}
		}
	}

	// 4. Должна быть хоть одна клетка, куда можно встать
	if walkable == 0 {
		t.Error("Generated map has no walkable interior tile")
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	// Один сид - одна и та же карта
	first := Generate(20, 15, rand.New(rand.NewSource(77)))
	second := Generate(20, 15, rand.New(rand.NewSource(77)))

	for y := 0; y < first.Height; y++ {
		for x := 0; x < first.Width; x++ {
			if first.At(x, y) != second.At(x, y) {
				t.Fatalf("Maps diverge at (%d,%d): %q vs %q", x, y, first.At(x, y), second.At(x, y))
			}
		}
	}
}

func TestGenerate_TinyMapIsAllWater(t *testing.T) {
	grid := Generate(2, 2, rand.New(rand.NewSource(1)))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if grid.At(x, y) != domain.TileWater {
				t.Errorf("Tile (%d,%d) = %q, want water on a 2x2 map", x, y, grid.At(x, y))
			}
		}
	}
}
