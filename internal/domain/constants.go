package domain

// Business validation constants
const (
	MinRoomPrice         = 0.01
	MaxRoomPrice         = 10_000_000
	MaxDescriptionLength = 2000
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ConflictMode режим защиты от двойного бронирования
type ConflictMode string

const (
	// ConflictModeStrict проверка пересечений и вставка выполняются
	// в сериализуемой транзакции с блокировкой броней номера
	ConflictModeStrict ConflictMode = "strict"

	// ConflictModeBestEffort легаси-поведение: проверка и вставка без
	// транзакции, параллельные запросы могут создать пересекающиеся брони
	ConflictModeBestEffort ConflictMode = "best-effort"
)

// ParseConflictMode парсит режим из конфигурации
// Неизвестные значения трактуются как strict
func ParseConflictMode(s string) ConflictMode {
	if ConflictMode(s) == ConflictModeBestEffort {
		return ConflictModeBestEffort
	}
	return ConflictModeStrict
}
