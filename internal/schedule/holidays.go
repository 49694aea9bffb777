package schedule

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// DefaultHolidays feriados Уругвая на 2025 год
// Используется, если в конфигурации не задан свой список
var DefaultHolidays = []string{
	"2025-01-01",
	"2025-03-03", "2025-03-04",
	"2025-04-17", "2025-04-18",
	"2025-05-01",
	"2025-06-19",
	"2025-07-18",
	"2025-08-25",
	"2025-12-25",
}

// HolidaySet набор нерабочих дат, сравнение по календарному дню
type HolidaySet map[string]struct{}

// NewHolidaySet создает набор из списка дат в формате YYYY-MM-DD
func NewHolidaySet(dates []string) (HolidaySet, error) {
	set := make(HolidaySet, len(dates))
	for _, d := range dates {
		if _, err := time.Parse(domain.DateFormat, d); err != nil {
			return nil, fmt.Errorf("schedule: invalid holiday date %q: %v", d, err)
		}
		set[d] = struct{}{}
	}
	return set, nil
}

// MustDefaultHolidaySet возвращает набор дефолтных feriados
// Паника невозможна: список статический и валидный
func MustDefaultHolidaySet() HolidaySet {
	set, err := NewHolidaySet(DefaultHolidays)
	if err != nil {
		panic(err)
	}
	return set
}

// Contains returns true if date's calendar day is in the set
func (h HolidaySet) Contains(date time.Time) bool {
	_, ok := h[date.Format(domain.DateFormat)]
	return ok
}
