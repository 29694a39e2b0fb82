package create_room

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/service/rooms"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
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

// Handle POST /rooms/create/
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateRoomRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /rooms/create - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), req.ToServiceRequest())
	if err != nil {
		var verr *rooms.ValidationError
		switch {
		case errors.As(err, &verr):
			h.logger.Warn("POST /rooms/create - Validation failed: %v", verr)
			handlers.RespondFieldErrors(w, verr.Fields)

		default:
			h.logger.Error("POST /rooms/create - Failed to create room: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /rooms/create - Room created successfully: room_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, CreateRoomResponse{RoomID: result.ID})
}
