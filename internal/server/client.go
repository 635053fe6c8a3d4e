package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/bbagher/tibiaclone/internal/domain"
	"github.com/bbagher/tibiaclone/internal/engine"
	"github.com/bbagher/tibiaclone/pkg/logger"
	"github.com/bbagher/tibiaclone/pkg/protocol"
)

// Настройки WebSocket
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512

	maxNameLen = 24
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client - посредник между WebSocket и GameService.
// Жизненный цикл простой: подключение это вход в игру, разрыв - выход.
type Client struct {
	Game     *engine.GameService
	Conn     *websocket.Conn
	EntityID domain.EntityID

	// send - личный канал из хаба. init уже лежит в нем первым кадром.
	send chan []byte

	// session - идентификатор соединения для корреляции логов.
	// EntityID для этого не годится: после переподключения игрок
	// получает новый EntityID, а жалоба в саппорт - одна.
	session string
}

// NewClient заводит игрока в мир и блокируется до ответа движка.
func NewClient(game *engine.GameService, conn *websocket.Conn, name string) *Client {
	reply := game.Join(sanitizeName(name))

	c := &Client{
		Game:     game,
		Conn:     conn,
		EntityID: reply.ID,
		send:     reply.Ch,
		session:  uuid.NewString(),
	}

	logger.Log.WithFields(logrus.Fields{
		"session":   c.session,
		"player_id": c.EntityID,
		"remote":    conn.RemoteAddr().String(),
	}).Info("Client connected")

	return c
}

// sanitizeName чистит имя из query-параметра. Пустое имя заменит движок.
func sanitizeName(name string) string {
	name = strings.TrimSpace(name)
	runes := []rune(name)
	if len(runes) > maxNameLen {
		name = string(runes[:maxNameLen])
	}
	return name
}

// readPump читает команды от клиента
func (c *Client) readPump() {
	defer func() {
		c.Game.Leave(c.EntityID)
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("failed to close websocket connection")
		}
		logger.Log.WithFields(logrus.Fields{
			"session":   c.session,
			"player_id": c.EntityID,
		}).Info("Client disconnected")
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logger.Log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			logger.Log.WithError(err).Warn("failed to set pong read deadline")
		}
		return nil
	})

	for {
		_, raw, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Log.Errorf("WS Error: %v", err)
			}
			break
		}

		typ, err := protocol.PeekType(raw)
		if err != nil {
			logger.Log.WithField("session", c.session).WithError(err).Debug("Malformed frame")
			continue
		}

		action := domain.ParseAction(typ)
		if action == domain.ActionUnknown {
			logger.Log.WithFields(logrus.Fields{
				"session": c.session,
				"type":    typ,
			}).Debug("Unknown command type")
			continue
		}

		c.Game.Submit(domain.InternalCommand{
			Action:  action,
			Actor:   c.EntityID,
			Payload: raw,
		})
	}
}

// writePump отправляет кадры клиенту + Ping
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("failed to close websocket connection in writePump")
		}
	}()

	for {
		select {
		case data, ok := <-c.send:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				// Движок закрыл канал: мир нас уже выписал
				if err := c.Conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					logger.Log.WithError(err).Debug("write close message failed")
				}
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, data); err != nil {
				logger.Log.WithError(err).Debug("write message failed")
				return
			}

		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				logger.Log.WithError(err).Debug("ping failed")
				return
			}
		}
	}
}
