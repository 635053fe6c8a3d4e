package engine

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/bbagher/tibiaclone/internal/domain"
	"github.com/bbagher/tibiaclone/internal/engine/handlers"
	"github.com/bbagher/tibiaclone/internal/engine/handlers/actions"
	"github.com/bbagher/tibiaclone/internal/network"
	"github.com/bbagher/tibiaclone/internal/systems"
	"github.com/bbagher/tibiaclone/pkg/logger"
	"github.com/bbagher/tibiaclone/pkg/protocol"
	"github.com/bbagher/tibiaclone/pkg/worldgen"
)

// JoinReply - ответ движка на подключение игрока. Первым кадром
// в канале уже лежит init-снимок мира.
type JoinReply struct {
	ID domain.EntityID
	Ch chan []byte
}

type joinRequest struct {
	name  string
	reply chan JoinReply
}

type snapshotRequest struct {
	reply chan protocol.InitMessage
}

// GameService - сердце сервера. Владеет миром единолично: все мутации
// происходят в горутине Run, снаружи к миру можно достучаться только
// через каналы. Поэтому ни в домене, ни в хендлерах нет блокировок.
type GameService struct {
	World *domain.World
	Hub   *network.Hub

	CommandChan chan domain.InternalCommand

	joinChan     chan joinRequest
	leaveChan    chan domain.EntityID
	snapshotChan chan snapshotRequest
	stop         chan struct{}

	timers   *Timers
	rng      *rand.Rand
	metrics  *Metrics
	handlers map[domain.ActionType]handlers.HandlerFunc

	cfg Config
}

// NewService генерирует мир и заселяет его монстрами.
func NewService(cfg Config) *GameService {
	rng := rand.New(rand.NewSource(cfg.Seed))

	s := &GameService{
		World:        domain.NewWorld(worldgen.Generate(cfg.MapWidth, cfg.MapHeight, rng)),
		Hub:          network.NewHub(),
		CommandChan:  make(chan domain.InternalCommand, 256),
		joinChan:     make(chan joinRequest),
		leaveChan:    make(chan domain.EntityID),
		snapshotChan: make(chan snapshotRequest),
		stop:         make(chan struct{}),
		timers:       NewTimers(),
		rng:          rng,
		metrics:      &Metrics{},
		handlers:     make(map[domain.ActionType]handlers.HandlerFunc),
		cfg:          cfg,
	}

	s.registerHandlers()

	// Стартовое население. Идет через тот же хендлер, что и респаун:
	// подписчиков еще нет, так что рассылка уходит в пустоту.
	now := time.Now()
	for i := 0; i < cfg.MonsterCount; i++ {
		s.execute(domain.InternalCommand{Action: domain.ActionSpawnMonster}, now)
	}

	return s
}

func (s *GameService) registerHandlers() {
	s.handlers[domain.ActionMove] = handlers.WithPayload(actions.HandleMove)
	s.handlers[domain.ActionFireball] = handlers.WithPayload(actions.HandleFireball)
	s.handlers[domain.ActionAttack] = handlers.WithPayload(actions.HandleAttack)
	s.handlers[domain.ActionFireballHit] = handlers.WithPayload(actions.HandleFireballHit)
	s.handlers[domain.ActionSpawnMonster] = handlers.WithEmptyPayload(actions.HandleSpawnMonster)
}

// Start запускает игровой цикл в отдельной горутине.
func (s *GameService) Start() {
	go s.Run()
}

// Stop останавливает игровой цикл.
func (s *GameService) Stop() {
	close(s.stop)
}

// Metrics отдает счетчики игрового цикла.
func (s *GameService) Metrics() *Metrics {
	return s.metrics
}

// Join подключает игрока и блокируется до ответа движка.
func (s *GameService) Join(name string) JoinReply {
	req := joinRequest{name: name, reply: make(chan JoinReply, 1)}
	s.joinChan <- req
	return <-req.reply
}

// Leave отключает игрока. Вызывается из горутины сессии.
func (s *GameService) Leave(id domain.EntityID) {
	s.leaveChan <- id
}

// Submit ставит команду игрока в очередь движка.
func (s *GameService) Submit(cmd domain.InternalCommand) {
	s.CommandChan <- cmd
}

// Snapshot возвращает полный слепок мира (для отладочных ручек).
// Читает его горутина движка, так что слепок всегда консистентный.
func (s *GameService) Snapshot() protocol.InitMessage {
	req := snapshotRequest{reply: make(chan protocol.InitMessage, 1)}
	s.snapshotChan <- req
	return <-req.reply
}

// --- GAME LOOP ---

// Run крутит игровой цикл: команды игроков, тики ИИ, таймеры респауна.
// Единственная горутина, которой позволено трогать мир.
func (s *GameService) Run() {
	logger.Log.WithField("tick_rate", domain.TickRate).Info("Game loop started")

	ticker := time.NewTicker(time.Second / domain.TickRate)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			logger.Log.Info("Game loop stopped")
			return

		case req := <-s.joinChan:
			s.handleJoin(req)

		case id := <-s.leaveChan:
			s.handleLeave(id)

		case cmd := <-s.CommandChan:
			s.execute(cmd, time.Now())

		case req := <-s.snapshotChan:
			req.reply <- BuildInit(s.World, 0)

		case now := <-ticker.C:
			s.tick(now)
		}
	}
}

func (s *GameService) handleJoin(req joinRequest) {
	id := s.World.NextID()
	name := req.name
	if name == "" {
		name = fmt.Sprintf("Player %d", id)
	}

	pos := systems.FindSpawnPosition(s.World.Grid, s.rng)
	player := domain.NewPlayer(id, name, pos)
	s.World.AddPlayer(player)

	ch := s.Hub.Register(id)

	// init обязан лечь в канал раньше любых бродкастов
	s.Hub.SendTo(id, BuildInit(s.World, id))
	s.Hub.BroadcastExcept(id, protocol.NewPlayerJoined(player))

	s.metrics.IncJoin()
	logger.Log.WithFields(logrus.Fields{
		"player_id": id,
		"name":      name,
		"pos_x":     pos.X,
		"pos_y":     pos.Y,
	}).Info("Player joined")

	req.reply <- JoinReply{ID: id, Ch: ch}
}

func (s *GameService) handleLeave(id domain.EntityID) {
	if s.World.Player(id) == nil {
		return
	}
	s.World.RemovePlayer(id)
	s.Hub.Unregister(id)
	s.Hub.Broadcast(protocol.NewPlayerLeft(id))

	s.metrics.IncLeave()
	logger.Log.WithField("player_id", id).Info("Player left")
}

// execute прогоняет команду через хендлер и разносит результат:
// события в хаб, таймеры в очередь, счетчики в метрики.
func (s *GameService) execute(cmd domain.InternalCommand, now time.Time) {
	handler, ok := s.handlers[cmd.Action]
	if !ok {
		return
	}

	ctx := handlers.Context{
		World: s.World,
		Actor: cmd.Actor,
		Rng:   s.rng,
		Now:   now,
	}

	result, err := handler(ctx, cmd.Payload)
	if err != nil {
		s.metrics.IncFailed()
		logger.Log.WithError(err).WithFields(logrus.Fields{
			"action": cmd.Action.String(),
			"actor":  cmd.Actor,
		}).Warn("Command failed")
		return
	}
	if result.Rejected {
		s.metrics.IncRejected()
		return
	}
	s.metrics.IncApplied()

	s.routeEvents(cmd.Actor, result.Events)

	for _, timer := range result.Timers {
		s.timers.Schedule(now.Add(timer.After), timer.Cmd)
	}
}

// routeEvents переводит адресацию событий в вызовы хаба.
func (s *GameService) routeEvents(actor domain.EntityID, events []handlers.Event) {
	for _, ev := range events {
		switch ev.Scope {
		case handlers.ScopeAll:
			s.Hub.Broadcast(ev.Msg)
		case handlers.ScopeOthers:
			s.Hub.BroadcastExcept(actor, ev.Msg)
		case handlers.ScopeActor:
			s.Hub.SendTo(actor, ev.Msg)
		}

		switch ev.Msg.(type) {
		case protocol.MonsterDiedMessage:
			s.metrics.IncKill()
		case protocol.MonsterSpawnedMessage:
			s.metrics.IncSpawn()
		}
	}
}

// tick - один шаг игрового времени: сработавшие таймеры, затем ИИ.
func (s *GameService) tick(now time.Time) {
	s.metrics.IncTick()

	for _, cmd := range s.timers.PopDue(now) {
		s.execute(cmd, now)
	}

	s.routeEvents(0, AdvanceMonsters(s.World, s.rng, now))
}
