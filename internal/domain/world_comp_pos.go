package domain

import "math"

// DistanceTo возвращает евклидово расстояние до другой точки (float)
func (p Position) DistanceTo(other Position) float64 {
	dx := float64(p.X - other.X)
	dy := float64(p.Y - other.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// DistanceSquaredTo возвращает квадрат расстояния (int) для сравнения без корней
func (p Position) DistanceSquaredTo(other Position) int {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return dx*dx + dy*dy
}

// Shift возвращает новую позицию со смещением (не меняя текущую, т.к. Go передает структуры по значению)
func (p Position) Shift(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Center возвращает пиксельный центр тайла
func (p Position) Center() Vec2 {
	return Vec2{
		X: float64(p.X)*TileSize + TileSize/2,
		Y: float64(p.Y)*TileSize + TileSize/2,
	}
}

// Tile возвращает тайловую клетку, в которой лежит пиксельная точка
func (v Vec2) Tile() Position {
	return Position{
		X: int(math.Floor(v.X / TileSize)),
		Y: int(math.Floor(v.Y / TileSize)),
	}
}

// DistanceTo возвращает расстояние между пиксельными точками
func (v Vec2) DistanceTo(other Vec2) float64 {
	dx := v.X - other.X
	dy := v.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Add возвращает сумму векторов
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Scale возвращает вектор, умноженный на скаляр
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}
