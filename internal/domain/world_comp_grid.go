package domain

// Walkable: по траве и земле ходим, вода/дерево/камень - преграда.
func (t TileType) Walkable() bool {
	switch t {
	case TileGrass, TileDirt:
		return true
	default:
		return false
	}
}

// NewTileGrid создает карту, залитую указанным тайлом.
func NewTileGrid(width, height int, fill TileType) *TileGrid {
	tiles := make([][]TileType, height)
	for y := range tiles {
		row := make([]TileType, width)
		for x := range row {
			row[x] = fill
		}
		tiles[y] = row
	}
	return &TileGrid{Tiles: tiles, Width: width, Height: height}
}

// InBounds проверяет, что координаты лежат внутри карты.
func (g *TileGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At возвращает тайл по координатам. За границей карты - TileWater,
// чтобы вызывающему не нужно было отдельно проверять выход за край.
func (g *TileGrid) At(x, y int) TileType {
	if !g.InBounds(x, y) {
		return TileWater
	}
	return g.Tiles[y][x]
}

// Set меняет тайл. Используется только генератором карты.
func (g *TileGrid) Set(x, y int, t TileType) {
	if g.InBounds(x, y) {
		g.Tiles[y][x] = t
	}
}
