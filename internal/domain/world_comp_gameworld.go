package domain

import "sort"

// NextID выдает следующий ID. Счетчик общий для игроков, монстров
// и снарядов, так что ID уникален в пределах всего мира.
func (w *World) NextID() EntityID {
	w.nextID++
	return w.nextID
}

// AddPlayer регистрирует игрока в мире
func (w *World) AddPlayer(p *Player) {
	w.Players[p.ID] = p
}

// RemovePlayer удаляет игрока (дисконнект)
func (w *World) RemovePlayer(id EntityID) {
	delete(w.Players, id)
}

// Player ищет игрока по ID. nil, если такого нет.
func (w *World) Player(id EntityID) *Player {
	return w.Players[id]
}

// AddMonster регистрирует монстра в мире
func (w *World) AddMonster(m *Monster) {
	w.Monsters[m.ID] = m
}

// RemoveMonster удаляет монстра (смерть)
func (w *World) RemoveMonster(id EntityID) {
	delete(w.Monsters, id)
}

// Monster ищет монстра по ID. nil, если такого нет.
func (w *World) Monster(id EntityID) *Monster {
	return w.Monsters[id]
}

// PlayerIDs возвращает ID игроков по возрастанию.
// Сортировка дает детерминированный порядок обхода: итог тика
// не зависит от случайного порядка map.
func (w *World) PlayerIDs() []EntityID {
	ids := make([]EntityID, 0, len(w.Players))
	for id := range w.Players {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// MonsterIDs возвращает ID монстров по возрастанию.
func (w *World) MonsterIDs() []EntityID {
	ids := make([]EntityID, 0, len(w.Monsters))
	for id := range w.Monsters {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
