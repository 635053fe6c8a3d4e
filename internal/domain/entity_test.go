package domain

import "testing"

func TestMonster_TakeDamageClampsAtZero(t *testing.T) {
	m := NewMonster(1, Position{X: 2, Y: 2})
	if m.Health != MonsterMaxHealth {
		t.Fatalf("new monster health = %d, want %d", m.Health, MonsterMaxHealth)
	}

	died := m.TakeDamage(MonsterMaxHealth + 40)
	if !died {
		t.Error("TakeDamage should report death on a lethal hit")
	}
	if m.Health != 0 {
		t.Errorf("health after lethal hit = %d, want 0", m.Health)
	}
}

func TestMonster_TakeDamageReportsDeathOnce(t *testing.T) {
	m := NewMonster(1, Position{})

	if died := m.TakeDamage(MonsterMaxHealth); !died {
		t.Fatal("first lethal hit should report death")
	}
	if died := m.TakeDamage(10); died {
		t.Error("damage to a dead monster must not report death again")
	}
	if m.Health != 0 {
		t.Errorf("health = %d, want 0", m.Health)
	}
}

func TestPlayer_TakeDamageSequence(t *testing.T) {
	p := NewPlayer(7, "Knight", Position{X: 1, Y: 1})

	steps := []struct {
		damage     int
		wantHealth int
		wantDied   bool
	}{
		{30, 70, false},
		{30, 40, false},
		{-5, 40, false}, // negative damage is ignored
		{40, 0, true},
	}

	for i, step := range steps {
		died := p.TakeDamage(step.damage)
		if p.Health != step.wantHealth {
			t.Errorf("step %d: health = %d, want %d", i, p.Health, step.wantHealth)
		}
		if died != step.wantDied {
			t.Errorf("step %d: died = %v, want %v", i, died, step.wantDied)
		}
	}

	if !p.IsDead() {
		t.Error("IsDead() = false after health reached 0")
	}
}

func TestPosition_Center(t *testing.T) {
	got := Position{X: 2, Y: 3}.Center()
	want := Vec2{X: 2*TileSize + TileSize/2, Y: 3*TileSize + TileSize/2}
	if got != want {
		t.Errorf("Center() = %v, want %v", got, want)
	}

	// Center and Tile are inverses for any cell.
	if back := got.Tile(); back != (Position{X: 2, Y: 3}) {
		t.Errorf("Tile() = %v, want {2 3}", back)
	}
}
