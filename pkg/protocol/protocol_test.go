package protocol

import (
	"encoding/json"
	"testing"

	"github.com/bbagher/tibiaclone/internal/domain"
)

func TestPeekType(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{"client move", `{"type":"move","x":3,"y":4}`, "move", false},
		{"fireball hit", `{"type":"fireballHit","monsterId":12}`, "fireballHit", false},
		{"missing type", `{"x":3}`, "", true},
		{"not json", `move 3 4`, "", true},
		{"empty frame", ``, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PeekType([]byte(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Fatalf("PeekType error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("PeekType = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecodeServerMessage(t *testing.T) {
	t.Run("playerMoved round trip", func(t *testing.T) {
		raw, err := json.Marshal(NewPlayerMoved(5, domain.Position{X: 3, Y: 9}))
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}

		decoded, err := DecodeServerMessage(raw)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		msg, ok := decoded.(*PlayerMovedMessage)
		if !ok {
			t.Fatalf("decoded %T, want *PlayerMovedMessage", decoded)
		}
		if msg.PlayerID != 5 || msg.X != 3 || msg.Y != 9 {
			t.Errorf("decoded %+v, want playerId=5 x=3 y=9", msg)
		}
	})

	t.Run("init carries the whole grid", func(t *testing.T) {
		grid := domain.NewTileGrid(4, 3, domain.TileGrass)
		grid.Set(0, 0, domain.TileWater)
		init := NewInit(7, grid, []PlayerView{{ID: 7, Name: "Ava"}}, nil)

		raw, err := json.Marshal(init)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		decoded, err := DecodeServerMessage(raw)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		msg := decoded.(*InitMessage)
		if msg.Width != 4 || msg.Height != 3 {
			t.Errorf("size = %dx%d, want 4x3", msg.Width, msg.Height)
		}
		if msg.Map[0][0] != domain.TileWater || msg.Map[2][3] != domain.TileGrass {
			t.Errorf("grid content lost in transit: %v", msg.Map)
		}
		if len(msg.Players) != 1 || msg.Players[0].Name != "Ava" {
			t.Errorf("players lost in transit: %+v", msg.Players)
		}
	})

	t.Run("unknown type is an error", func(t *testing.T) {
		if _, err := DecodeServerMessage([]byte(`{"type":"teleport"}`)); err == nil {
			t.Error("expected an error for an unknown type")
		}
	})
}

func TestWireShape(t *testing.T) {
	// The browser client matches on exact field names; pin them.
	raw, _ := json.Marshal(NewMonsterDamaged(3, 35, 15))
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	for _, key := range []string{"type", "monsterId", "health", "damage"} {
		if _, ok := m[key]; !ok {
			t.Errorf("monsterDamaged frame is missing %q: %s", key, raw)
		}
	}
	if m["type"] != "monsterDamaged" {
		t.Errorf("type = %v, want monsterDamaged", m["type"])
	}
}

func TestCommandValidation(t *testing.T) {
	tests := []struct {
		name    string
		cmd     Validator
		wantErr bool
	}{
		{"valid move", MoveCommand{Type: TypeMove, X: 2, Y: 3}, false},
		{"negative move", MoveCommand{Type: TypeMove, X: -1, Y: 3}, true},
		{"valid attack", AttackCommand{Type: TypeAttack, MonsterID: 4}, false},
		{"attack without target", AttackCommand{Type: TypeAttack}, true},
		{"hit without target", FireballHitCommand{Type: TypeFireballHit}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cmd.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
