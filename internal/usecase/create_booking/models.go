package create_booking

import "time"

// Request модель запроса на создание брони
type Request struct {
	RoomID    int64     // ID номера
	DateStart time.Time // Дата заезда (без времени)
	DateEnd   time.Time // Дата выезда (без времени), день выезда не занят
}

// Response модель ответа с созданной бронью
type Response struct {
	ID        int64     // ID созданной брони
	RoomID    int64     // ID номера
	DateStart time.Time // Дата заезда
	DateEnd   time.Time // Дата выезда
	CreatedAt time.Time // Время создания
}
