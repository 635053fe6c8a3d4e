package server

import (
	"encoding/json"
	"net/http"

	"github.com/bbagher/tibiaclone/internal/domain"
	"github.com/bbagher/tibiaclone/internal/engine"
)

// DebugHandler предоставляет доступ к внутреннему состоянию движка
type DebugHandler struct {
	Service *engine.GameService
}

func NewDebugHandler(s *engine.GameService) *DebugHandler {
	return &DebugHandler{Service: s}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/world", h.handleDumpWorld)
	mux.HandleFunc("/debug/players", h.handleDumpPlayers)
	mux.HandleFunc("/debug/spawn", h.handleSpawnMonster)
}

// /debug/world - полный слепок мира: карта, игроки, монстры.
// Слепок собирает горутина движка, так что гонок с игровым циклом нет.
func (h *DebugHandler) handleDumpWorld(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Service.Snapshot())
}

// /debug/players - список игроков без карты и монстров.
func (h *DebugHandler) handleDumpPlayers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Service.Snapshot().Players)
}

// POST /debug/spawn - подкинуть монстра сверх нормы.
// Команда встает в общую очередь и выполняется на ближайшей итерации.
func (h *DebugHandler) handleSpawnMonster(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST only", http.StatusMethodNotAllowed)
		return
	}

	h.Service.Submit(domain.InternalCommand{Action: domain.ActionSpawnMonster})
	w.WriteHeader(http.StatusAccepted)
	w.Write([]byte("spawn queued"))
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	// Разрешаем запросы с любого источника (нужно для дебага из браузера)
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	w.Header().Set("Content-Type", "application/json")

	if data == nil {
		w.Write([]byte("[]"))
		return
	}

	json.NewEncoder(w).Encode(data)
}
