package domain

// TakeDamage наносит урон игроку. Возвращает true, если игрок погиб
// именно от этого удара. Здоровье не уходит ниже нуля, и по уже
// мертвому урон не проходит - смерть объявляется ровно один раз.
func (p *Player) TakeDamage(amount int) bool {
	if p.Health <= 0 {
		return false
	}
	if amount < 0 {
		amount = 0
	}

	p.Health -= amount

	if p.Health <= 0 {
		p.Health = 0
		return true
	}
	return false
}

// IsDead возвращает true, если здоровье на нуле
func (p *Player) IsDead() bool {
	return p.Health <= 0
}

// TakeDamage наносит урон монстру. Возвращает true, если монстр погиб
// именно от этого удара. Семантика та же, что у игрока.
func (m *Monster) TakeDamage(amount int) bool {
	if m.Health <= 0 {
		return false
	}
	if amount < 0 {
		amount = 0
	}

	m.Health -= amount

	if m.Health <= 0 {
		m.Health = 0
		return true
	}
	return false
}

// IsDead возвращает true, если здоровье на нуле
func (m *Monster) IsDead() bool {
	return m.Health <= 0
}
