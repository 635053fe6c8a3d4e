package agent

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/bbagher/tibiaclone/internal/client"
	"github.com/bbagher/tibiaclone/internal/domain"
	"github.com/bbagher/tibiaclone/internal/systems"
	"github.com/bbagher/tibiaclone/pkg/logger"
	"github.com/bbagher/tibiaclone/pkg/protocol"
)

// Параметры охоты и подключения.
const (
	// thinkInterval - период принятия решений. Сервер тикает в 60 Гц,
	// боту хватает 10 Гц.
	thinkInterval = 100 * time.Millisecond

	// fireballCooldown - самоограничение на каст. Сервер касты не
	// лимитирует, лимит живет на клиенте.
	fireballCooldown = 2 * time.Second

	dialAttempts   = 12
	dialRetryDelay = 180 * time.Millisecond
	initTimeout    = 5 * time.Second
)

// Bot представляет собой "игрока-компьютера" (Headless Agent).
// Этот код является примером ВНЕШНЕГО клиента: он подключается к серверу
// так же, как браузерный клиент, через WebSocket, получает init и дельты,
// ведет локальную реплику мира и на ее основе охотится на монстров.
//
// Жизненный цикл:
//  1. Dial -> соединение с /ws?name=, первый кадр init, построение реплики.
//  2. Run -> горутина чтения складывает кадры в канал frames,
//     основной цикл раз в thinkInterval делает ход.
//  3. Ход: продвинуть снаряды (Step) и доложить о попаданиях (fireballHit);
//     выбрать ближайшего монстра; рядом - attack, далеко - fireball
//     не чаще раза в fireballCooldown плюс шаг навстречу (move).
//  4. Move отправляется только после успешного PredictMove: эхо своего
//     шага сервер не шлет, реплика обязана шагнуть сама.
type Bot struct {
	Name string

	conn    *websocket.Conn
	replica *client.Replica

	frames  chan []byte
	readErr chan error

	lastCast time.Time
	lastStep time.Time

	log *logrus.Entry
}

// Dial подключает бота к серверу и блокируется до получения init.
// rawURL - адрес WebSocket-эндпоинта, например ws://localhost:8080/ws.
func Dial(ctx context.Context, rawURL, name string) (*Bot, error) {
	if !strings.HasPrefix(rawURL, "ws://") && !strings.HasPrefix(rawURL, "wss://") {
		return nil, fmt.Errorf("invalid ws url: %s", rawURL)
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse ws url: %w", err)
	}
	q := u.Query()
	q.Set("name", name)
	u.RawQuery = q.Encode()

	conn, err := dialWithRetry(ctx, u.String())
	if err != nil {
		return nil, err
	}

	replica, err := readInit(conn)
	if err != nil {
		conn.Close()
		return nil, err
	}

	b := &Bot{
		Name:    name,
		conn:    conn,
		replica: replica,
		frames:  make(chan []byte, 256),
		readErr: make(chan error, 1),
		log:     logger.Log.WithField("bot", name),
	}

	b.log.WithFields(logrus.Fields{
		"player_id": replica.SelfID,
		"players":   len(replica.Players),
		"monsters":  len(replica.Monsters),
	}).Info("🤖 Joined the world")

	return b, nil
}

// dialWithRetry пробует подключиться несколько раз: бота часто запускают
// одновременно с сервером, и первые попытки приходятся на его старт.
func dialWithRetry(ctx context.Context, wsURL string) (*websocket.Conn, error) {
	var lastErr error
	for attempt := 0; attempt < dialAttempts; attempt++ {
		conn, _, err := websocket.DefaultDialer.DialContext(ctx, wsURL, nil)
		if err == nil {
			return conn, nil
		}
		lastErr = err
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(dialRetryDelay):
		}
	}
	return nil, lastErr
}

// readInit читает первый кадр сессии. Протокол присоединения гарантирует,
// что это init: сервер кладет его в канал подписчика до любых рассылок.
func readInit(conn *websocket.Conn) (*client.Replica, error) {
	if err := conn.SetReadDeadline(time.Now().Add(initTimeout)); err != nil {
		return nil, err
	}
	_, raw, err := conn.ReadMessage()
	if err != nil {
		return nil, fmt.Errorf("read init: %w", err)
	}
	_ = conn.SetReadDeadline(time.Time{})

	t, err := protocol.PeekType(raw)
	if err != nil {
		return nil, err
	}
	if t != protocol.TypeInit {
		return nil, fmt.Errorf("expected init as first frame, got %q", t)
	}

	r := &client.Replica{}
	if err := r.ApplyServer(raw); err != nil {
		return nil, fmt.Errorf("apply init: %w", err)
	}
	return r, nil
}

// Run запускает цикл жизни бота. Блокируется до обрыва соединения
// или отмены контекста.
func (b *Bot) Run(ctx context.Context) error {
	defer b.conn.Close()

	go b.readLoop()

	ticker := time.NewTicker(thinkInterval)
	defer ticker.Stop()

	b.lastStep = time.Now()

	for {
		select {
		case <-ctx.Done():
			deadline := time.Now().Add(time.Second)
			_ = b.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), deadline)
			b.log.Info("Bot leaving the world")
			return ctx.Err()
		case err := <-b.readErr:
			return err
		case raw := <-b.frames:
			b.apply(raw)
		case now := <-ticker.C:
			b.think(now)
		}
	}
}

// readLoop переносит кадры из сокета в канал. Кадры не теряются:
// реплика обязана увидеть каждую дельту.
func (b *Bot) readLoop() {
	for {
		_, raw, err := b.conn.ReadMessage()
		if err != nil {
			b.readErr <- err
			return
		}
		b.frames <- raw
	}
}

// apply вносит серверный кадр в реплику и отмечает в логе события,
// заметные снаружи: входы игроков, полученный урон, смерти монстров.
func (b *Bot) apply(raw []byte) {
	if err := b.replica.ApplyServer(raw); err != nil {
		b.log.WithError(err).Debug("Skipping frame")
		return
	}

	msg, err := protocol.DecodeServerMessage(raw)
	if err != nil {
		return
	}
	switch m := msg.(type) {
	case *protocol.PlayerJoinedMessage:
		b.log.WithField("name", m.Player.Name).Info("Player joined")
	case *protocol.PlayerDamagedMessage:
		if m.PlayerID == b.replica.SelfID {
			b.log.WithFields(logrus.Fields{
				"damage": m.Damage,
				"health": m.Health,
			}).Info("💥 Took damage")
		}
	case *protocol.PlayerDiedMessage:
		if m.PlayerID == b.replica.SelfID {
			b.log.Warn("💀 Bot died")
		}
	case *protocol.MonsterDiedMessage:
		b.log.WithField("monster_id", m.MonsterID).Info("Monster down")
	}
}

// think - один ход охотника.
func (b *Bot) think(now time.Time) {
	dt := now.Sub(b.lastStep)
	b.lastStep = now

	for _, hit := range b.replica.Step(dt) {
		b.send(protocol.FireballHitCommand{
			Type:      protocol.TypeFireballHit,
			MonsterID: hit.MonsterID,
		})
		b.log.WithField("monster_id", hit.MonsterID).Debug("🎯 Fireball connected")
	}

	me := b.replica.Self()
	if me == nil || me.IsDead() {
		return
	}

	target := b.nearestMonster(me.Pos)
	if target == nil {
		return
	}

	if me.Pos.DistanceTo(target.Pos) <= domain.MeleeRange {
		b.send(protocol.AttackCommand{Type: protocol.TypeAttack, MonsterID: target.ID})
		return
	}

	if now.Sub(b.lastCast) >= fireballCooldown {
		center := target.Pos.Center()
		if b.replica.CastFireball(center) != nil {
			b.send(protocol.FireballCommand{
				Type:    protocol.TypeFireball,
				TargetX: center.X,
				TargetY: center.Y,
			})
			b.lastCast = now
		}
	}

	next := systems.StepToward(b.replica.Grid, me.Pos, target.Pos)
	if next != me.Pos && b.replica.PredictMove(next.X, next.Y) {
		b.send(protocol.MoveCommand{Type: protocol.TypeMove, X: next.X, Y: next.Y})
	}
}

// nearestMonster выбирает цель так же, как серверный ИИ выбирает игрока:
// минимальный квадрат расстояния, при равенстве - меньший ID.
func (b *Bot) nearestMonster(from domain.Position) *domain.Monster {
	var best *domain.Monster
	bestDist := 0
	for _, m := range b.replica.Monsters {
		d := from.DistanceSquaredTo(m.Pos)
		if best == nil || d < bestDist || (d == bestDist && m.ID < best.ID) {
			best = m
			bestDist = d
		}
	}
	return best
}

// Пишет только горутина Run. Понг на серверные пинги уходит через
// WriteControl внутри читателя, это безопасно рядом с WriteJSON.
func (b *Bot) send(cmd any) {
	if err := b.conn.WriteJSON(cmd); err != nil {
		b.log.WithError(err).Debug("Send failed")
	}
}
