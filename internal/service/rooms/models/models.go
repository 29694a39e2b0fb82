package models

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// Request модели

// CreateRoomRequest запрос на создание номера
type CreateRoomRequest struct {
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// Response модели

// RoomResponse ответ с данными номера
type RoomResponse struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	Price       string `json:"price"`      // Цена строкой с двумя знаками, "2500.00"
	CreatedAt   string `json:"created_at"` // RFC3339
}

// RoomListResponse список номеров
type RoomListResponse struct {
	Rooms []*RoomResponse `json:"rooms"`
}

// FromDomainRoom конвертирует доменную модель в response
func FromDomainRoom(room *domain.Room) *RoomResponse {
	return &RoomResponse{
		ID:          room.ID,
		Description: room.Description,
		Price:       fmt.Sprintf("%.2f", room.Price),
		CreatedAt:   room.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainRoomList конвертирует список доменных моделей в response
func FromDomainRoomList(rooms []*domain.Room) *RoomListResponse {
	resp := &RoomListResponse{
		Rooms: make([]*RoomResponse, 0, len(rooms)),
	}
	for _, room := range rooms {
		resp.Rooms = append(resp.Rooms, FromDomainRoom(room))
	}
	return resp
}
