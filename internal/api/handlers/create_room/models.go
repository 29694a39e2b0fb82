package create_room

import (
	"github.com/m04kA/SMC-HotelService/internal/service/rooms/models"
)

// CreateRoomRequest HTTP request model
type CreateRoomRequest struct {
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// CreateRoomResponse HTTP response model: ID созданного номера
type CreateRoomResponse struct {
	RoomID int64 `json:"room_id"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateRoomRequest) ToServiceRequest() *models.CreateRoomRequest {
	return &models.CreateRoomRequest{
		Description: r.Description,
		Price:       r.Price,
	}
}
