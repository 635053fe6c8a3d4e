package agent

import (
	"testing"

	"github.com/bbagher/tibiaclone/internal/client"
	"github.com/bbagher/tibiaclone/internal/domain"
)

// botWithMonsters собирает бота с минимальной репликой: для выбора цели
// ни сокет, ни логгер не нужны.
func botWithMonsters(monsters ...*domain.Monster) *Bot {
	r := &client.Replica{
		SelfID:   1,
		Monsters: make(map[domain.EntityID]*domain.Monster),
	}
	for _, m := range monsters {
		r.Monsters[m.ID] = m
	}
	return &Bot{replica: r}
}

func TestNearestMonster_PicksCloser(t *testing.T) {
	far := domain.NewMonster(10, domain.Position{X: 5, Y: 5})
	near := domain.NewMonster(20, domain.Position{X: 2, Y: 1})
	b := botWithMonsters(far, near)

	got := b.nearestMonster(domain.Position{X: 0, Y: 0})
	if got == nil || got.ID != 20 {
		t.Fatalf("expected monster 20, got %+v", got)
	}
}

func TestNearestMonster_TieBreaksByLowestID(t *testing.T) {
	// Обе цели на квадрате расстояния 8 от (3,3)
	a := domain.NewMonster(9, domain.Position{X: 1, Y: 1})
	c := domain.NewMonster(4, domain.Position{X: 5, Y: 5})
	b := botWithMonsters(a, c)

	got := b.nearestMonster(domain.Position{X: 3, Y: 3})
	if got == nil || got.ID != 4 {
		t.Fatalf("expected monster 4 to win the tie, got %+v", got)
	}
}

func TestNearestMonster_EmptyWorld(t *testing.T) {
	b := botWithMonsters()

	if got := b.nearestMonster(domain.Position{X: 0, Y: 0}); got != nil {
		t.Fatalf("expected nil with no monsters, got %+v", got)
	}
}
