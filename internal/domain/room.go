package domain

import "time"

// Room represents a hotel room available for booking
type Room struct {
	ID          int64
	Description string
	Price       float64 // Цена за ночь, хранится с точностью до копеек
	CreatedAt   time.Time
}

// RoomSortKey ключ сортировки списка номеров
type RoomSortKey string

const (
	// SortDefault сортировка по умолчанию: новые номера сверху
	SortDefault RoomSortKey = ""
	// SortPriceAsc по возрастанию цены
	SortPriceAsc RoomSortKey = "price_asc"
	// SortPriceDesc по убыванию цены
	SortPriceDesc RoomSortKey = "price_desc"
	// SortDateAsc по дате добавления, старые сверху
	SortDateAsc RoomSortKey = "date_asc"
	// SortDateDesc по дате добавления, новые сверху
	SortDateDesc RoomSortKey = "date_desc"
)

// ParseRoomSortKey парсит ключ сортировки из query-параметра
// Неизвестные значения трактуются как сортировка по умолчанию, ошибки нет
func ParseRoomSortKey(s string) RoomSortKey {
	switch RoomSortKey(s) {
	case SortPriceAsc, SortPriceDesc, SortDateAsc, SortDateDesc:
		return RoomSortKey(s)
	default:
		return SortDefault
	}
}
