package server

import (
	"encoding/json"
	"net/http"
	_ "net/http/pprof" // Profiling

	"github.com/bbagher/tibiaclone/internal/engine"
	"github.com/bbagher/tibiaclone/internal/version"
	"github.com/bbagher/tibiaclone/pkg/logger"
)

type Server struct {
	Engine *engine.GameService
	Port   string

	// StaticDir - каталог с веб-клиентом. Пустая строка - не раздаем.
	StaticDir string
}

func New(engine *engine.GameService, port string) *Server {
	return &Server{
		Engine: engine,
		Port:   port,
	}
}

// Run запускает HTTP сервер
func (s *Server) Run() error {
	mux := http.DefaultServeMux

	// Регистрируем роуты
	mux.HandleFunc("/ws", enableCORS(s.handleWS))
	mux.HandleFunc("/health", enableCORS(s.handleHealth))
	mux.HandleFunc("/version", enableCORS(s.handleVersion))
	mux.HandleFunc("/metrics", enableCORS(s.handleMetrics))

	debugHandler := NewDebugHandler(s.Engine)
	debugHandler.RegisterRoutes(mux)

	if s.StaticDir != "" {
		mux.Handle("/", http.FileServer(http.Dir(s.StaticDir)))
		logger.Log.Infof("Serving web client from %s", s.StaticDir)
	}

	logger.Log.Infof("⚔️  Tibia Clone Server running on :%s", s.Port)
	return http.ListenAndServe(":"+s.Port, mux)
}

func enableCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Разрешаем запросы с фронтенда
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		next(w, r)
	}
}

// handleWS обрабатывает подключение по WebSocket
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.Error("Upgrade error:", err)
		return
	}

	client := NewClient(s.Engine, conn, r.URL.Query().Get("name"))

	// Запускаем пампы
	go client.writePump()
	go client.readPump()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(version.Info())
}

// handleMetrics отдает счетчики движка и хаба одним JSON-объектом.
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	snapshot := s.Engine.Metrics().Snapshot()
	snapshot["frames_dropped"] = s.Engine.Hub.Dropped()
	snapshot["subscribers"] = int64(s.Engine.Hub.SubscriberCount())

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(snapshot)
}
