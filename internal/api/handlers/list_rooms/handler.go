package list_rooms

import (
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
)

type Handler struct {
	service RoomService
	logger  Logger
}

func NewHandler(service RoomService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /rooms/list/?sort_by=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sortBy := r.URL.Query().Get("sort_by")

	result, err := h.service.List(r.Context(), sortBy)
	if err != nil {
		h.logger.Error("GET /rooms/list - Failed to list rooms: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /rooms/list - Listed %d rooms, sort_by=%q", len(result.Rooms), sortBy)
	// Ответ — массив номеров, без обёртки
	handlers.RespondJSON(w, http.StatusOK, result.Rooms)
}
