package client

import (
	"fmt"
	"time"

	"github.com/bbagher/tibiaclone/internal/domain"
	"github.com/bbagher/tibiaclone/internal/systems"
	"github.com/bbagher/tibiaclone/pkg/protocol"
)

// Replica - клиентская копия мира, собранная из кадров сервера.
// Живет на стороне клиента (бот, тесты): init дает полный снимок,
// дальше состояние ведется по дельтам.
//
// Снаряды - особый случай: сервер их не симулирует. Реплика сама
// считает полет всех снарядов (для отрисовки), но о попаданиях
// докладывает только своих - о чужих доложат их владельцы.
type Replica struct {
	SelfID   domain.EntityID
	Grid     *domain.TileGrid
	Players  map[domain.EntityID]*domain.Player
	Monsters map[domain.EntityID]*domain.Monster

	fireballs []*domain.Fireball

	// localSeq - счетчик ID для своих снарядов, запущенных до прихода
	// эха. Идет вниз от нуля: серверные ID всегда положительные.
	localSeq domain.EntityID
}

// HitReport - зафиксированное попадание своего снаряда в монстра.
// Клиент обязан доложить о нем серверу командой fireballHit.
type HitReport struct {
	FireballID domain.EntityID
	MonsterID  domain.EntityID
}

// FromInit строит реплику из стартового снимка.
func FromInit(init protocol.InitMessage) *Replica {
	r := &Replica{
		SelfID: init.PlayerID,
		Grid: &domain.TileGrid{
			Tiles:  init.Map,
			Width:  init.Width,
			Height: init.Height,
		},
		Players:  make(map[domain.EntityID]*domain.Player),
		Monsters: make(map[domain.EntityID]*domain.Monster),
	}

	for _, pv := range init.Players {
		r.Players[pv.ID] = playerFromView(pv)
	}
	for _, mv := range init.Monsters {
		r.Monsters[mv.ID] = monsterFromView(mv)
	}
	return r
}

// ApplyServer применяет один кадр сервера к реплике.
// Кадры о самом себе (playerMoved) не приходят никогда: свой шаг
// клиент рисует оптимистично через PredictMove.
func (r *Replica) ApplyServer(raw []byte) error {
	msg, err := protocol.DecodeServerMessage(raw)
	if err != nil {
		return err
	}

	switch m := msg.(type) {
	case *protocol.InitMessage:
		*r = *FromInit(*m)

	case *protocol.PlayerJoinedMessage:
		r.Players[m.Player.ID] = playerFromView(m.Player)

	case *protocol.PlayerLeftMessage:
		delete(r.Players, m.PlayerID)

	case *protocol.PlayerMovedMessage:
		if p, ok := r.Players[m.PlayerID]; ok {
			p.Pos = domain.Position{X: m.X, Y: m.Y}
		}

	case *protocol.PlayerDamagedMessage:
		if p, ok := r.Players[m.PlayerID]; ok {
			p.Health = m.Health
		}

	case *protocol.PlayerDiedMessage:
		if p, ok := r.Players[m.PlayerID]; ok {
			p.Health = 0
		}

	case *protocol.FireballCastMessage:
		// Свое эхо узнаем по playerId: этот снаряд уже летит локально
		// с момента CastFireball.
		if m.Fireball.PlayerID != r.SelfID {
			r.fireballs = append(r.fireballs, fireballFromView(m.Fireball))
		}

	case *protocol.MonsterMovedMessage:
		if mon, ok := r.Monsters[m.MonsterID]; ok {
			mon.Pos = domain.Position{X: m.X, Y: m.Y}
		}

	case *protocol.MonsterDamagedMessage:
		if mon, ok := r.Monsters[m.MonsterID]; ok {
			mon.Health = m.Health
		}

	case *protocol.MonsterDiedMessage:
		delete(r.Monsters, m.MonsterID)

	case *protocol.MonsterSpawnedMessage:
		r.Monsters[m.Monster.ID] = monsterFromView(m.Monster)

	default:
		return fmt.Errorf("unhandled server message %T", msg)
	}
	return nil
}

// Self возвращает собственного игрока. nil, пока init не применен.
func (r *Replica) Self() *domain.Player {
	return r.Players[r.SelfID]
}

// PredictMove - оптимистичный шаг: клиент проверяет проходимость
// по своей копии карты и сразу рисует себя на новой клетке.
// Сервер подтверждения не шлет; если он отказал, клиент останется
// рассинхронизирован до следующего успешного шага.
func (r *Replica) PredictMove(x, y int) bool {
	self := r.Self()
	if self == nil || self.IsDead() {
		return false
	}
	if !systems.IsWalkable(r.Grid, x, y) {
		return false
	}
	self.Pos = domain.Position{X: x, Y: y}
	return true
}

// CastFireball запускает свой снаряд сразу, не дожидаясь эха от
// сервера. Отправить команду fireball серверу - забота вызывающего,
// как и у PredictMove. nil для мертвого или еще не вошедшего игрока.
func (r *Replica) CastFireball(target domain.Vec2) *domain.Fireball {
	self := r.Self()
	if self == nil || self.IsDead() {
		return nil
	}
	r.localSeq--
	fb := systems.NewFireball(r.localSeq, r.SelfID, self.Pos, target)
	r.fireballs = append(r.fireballs, fb)
	return fb
}

// Step продвигает все снаряды на dt и возвращает попадания СВОИХ
// снарядов. Попавший или вылетевший за карту снаряд убирается.
func (r *Replica) Step(dt time.Duration) []HitReport {
	var reports []HitReport

	alive := r.fireballs[:0]
	for _, fb := range r.fireballs {
		systems.AdvanceFireball(r.Grid, fb, dt)
		if !fb.Active {
			continue
		}

		if fb.PlayerID == r.SelfID {
			if hit := r.detectHit(fb); hit != nil {
				reports = append(reports, *hit)
				fb.Active = false
				continue
			}
		}

		alive = append(alive, fb)
	}
	r.fireballs = alive

	return reports
}

// Fireballs возвращает активные снаряды (для отрисовки).
func (r *Replica) Fireballs() []*domain.Fireball {
	return r.fireballs
}

func (r *Replica) detectHit(fb *domain.Fireball) *HitReport {
	for _, m := range r.Monsters {
		if systems.FireballHits(fb, m.Pos) {
			return &HitReport{FireballID: fb.ID, MonsterID: m.ID}
		}
	}
	return nil
}

func playerFromView(v protocol.PlayerView) *domain.Player {
	return &domain.Player{
		ID:        v.ID,
		Name:      v.Name,
		Pos:       domain.Position{X: v.X, Y: v.Y},
		Health:    v.Health,
		MaxHealth: v.MaxHealth,
	}
}

func monsterFromView(v protocol.MonsterView) *domain.Monster {
	return &domain.Monster{
		ID:        v.ID,
		Pos:       domain.Position{X: v.X, Y: v.Y},
		Health:    v.Health,
		MaxHealth: v.MaxHealth,
	}
}

func fireballFromView(v protocol.FireballView) *domain.Fireball {
	start := domain.Vec2{X: v.StartX, Y: v.StartY}
	target := domain.Vec2{X: v.TargetX, Y: v.TargetY}
	return &domain.Fireball{
		ID:       v.ID,
		PlayerID: v.PlayerID,
		Pos:      start,
		Vel:      systems.FireballVelocity(start, target),
		Active:   true,
	}
}
