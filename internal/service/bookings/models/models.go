package models

import (
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// BookingResponse ответ с данными брони
type BookingResponse struct {
	ID        int64  `json:"id"`
	Room      int64  `json:"room"`       // ID номера
	DateStart string `json:"date_start"` // "2025-10-15"
	DateEnd   string `json:"date_end"`   // "2025-10-18"
	CreatedAt string `json:"created_at"` // RFC3339
}

// BookingListResponse список броней
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
}

// FromDomainBooking конвертирует доменную модель в response
func FromDomainBooking(booking *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:        booking.ID,
		Room:      booking.RoomID,
		DateStart: booking.DateStart.Format(domain.DateFormat),
		DateEnd:   booking.DateEnd.Format(domain.DateFormat),
		CreatedAt: booking.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainBookingList конвертирует список доменных моделей в response
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]*BookingResponse, 0, len(bookings)),
	}
	for _, booking := range bookings {
		resp.Bookings = append(resp.Bookings, FromDomainBooking(booking))
	}
	return resp
}
