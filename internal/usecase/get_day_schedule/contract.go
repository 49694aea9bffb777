package get_day_schedule

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// AppointmentRepository интерфейс репозитория приёмов
type AppointmentRepository interface {
	// GetByDate получает все приёмы на календарный день, отсортированные по времени начала
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error)
}

// ScheduleResolver интерфейс резолвера политики дня
type ScheduleResolver interface {
	Resolve(date time.Time) domain.DayPolicy
	IsHoliday(date time.Time) bool
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
