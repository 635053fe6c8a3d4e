package engine

import (
	"github.com/bbagher/tibiaclone/internal/domain"
	"github.com/bbagher/tibiaclone/pkg/protocol"
)

// BuildInit создает стартовый снимок мира для нового игрока: его ID,
// карту целиком и всех живых сущностей. Тумана войны нет, карта
// маленькая и статичная, так что каждый видит всё.
func BuildInit(w *domain.World, playerID domain.EntityID) protocol.InitMessage {
	players := make([]protocol.PlayerView, 0, len(w.Players))
	for _, id := range w.PlayerIDs() {
		players = append(players, protocol.NewPlayerView(w.Players[id]))
	}

	monsters := make([]protocol.MonsterView, 0, len(w.Monsters))
	for _, id := range w.MonsterIDs() {
		monsters = append(monsters, protocol.NewMonsterView(w.Monsters[id]))
	}

	return protocol.NewInit(playerID, w.Grid, players, monsters)
}
