package domain

// Position - позиция на тайловой сетке.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Vec2 - точка в пиксельных координатах (полет снарядов).
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// TileType - тип тайла. Строки в верхнем регистре уходят клиенту как есть.
type TileType string

const (
	TileGrass TileType = "GRASS"
	TileWater TileType = "WATER"
	TileTree  TileType = "TREE"
	TileStone TileType = "STONE"
	TileDirt  TileType = "DIRT"
)

// TileGrid - прямоугольная карта мира. Индексация Tiles[y][x].
// После генерации карта не меняется, поэтому её можно читать
// из любой горутины без блокировок.
type TileGrid struct {
	Tiles  [][]TileType `json:"map"`
	Width  int          `json:"width"`
	Height int          `json:"height"`
}

// World - агрегат состояния игры: карта плюс живые сущности.
// Мир принадлежит единственной горутине игрового цикла: только она
// мутирует его, поэтому внутри нет ни одного мьютекса.
type World struct {
	Grid     *TileGrid
	Players  map[EntityID]*Player
	Monsters map[EntityID]*Monster

	// nextID - монотонный счетчик. ID не переиспользуются,
	// даже после смерти сущности.
	nextID EntityID
}

// NewWorld создает пустой мир поверх готовой карты.
func NewWorld(grid *TileGrid) *World {
	return &World{
		Grid:     grid,
		Players:  make(map[EntityID]*Player),
		Monsters: make(map[EntityID]*Monster),
	}
}
