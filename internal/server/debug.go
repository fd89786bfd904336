package server

import (
	"encoding/json"
	"net/http"

	"spectral-server/internal/engine"
)

// DebugHandler предоставляет доступ к внутреннему состоянию прогона
type DebugHandler struct {
	Service *engine.GameService
}

func NewDebugHandler(s *engine.GameService) *DebugHandler {
	return &DebugHandler{Service: s}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/state", h.handleState)
	mux.HandleFunc("/debug/spectators", h.handleSpectators)
}

// /debug/state - снимок дома: комнаты, ростеры, улики, флаг завершения.
// Снимок собирается по коллекции за раз, без глобальной блокировки,
// поэтому он может быть слегка несогласованным - для дебага сойдет.
func (h *DebugHandler) handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Service.StateSnapshot())
}

// /debug/spectators - счетчик подключенных зрителей
func (h *DebugHandler) handleSpectators(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]int{"spectators": h.Service.Hub.SubscriberCount()})
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	// Разрешаем запросы с любого источника (нужно для локального debug_client.html)
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
