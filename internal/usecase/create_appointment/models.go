package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// Request модель запроса на создание приёма
type Request struct {
	PatientName  string                 // Имя и фамилия пациента
	NationalID   string                 // Cédula de identidad
	Phone        string                 // Телефон
	Notes        *string                // Заметки (опционально)
	Date         time.Time              // Дата приёма (без времени)
	StartTime    types.TimeString       // Время начала слота (например, "09:15")
	EndTime      types.TimeString       // Время конца слота
	Professional *domain.ProfessionalID // Профессионал (только для дней с per-professional политикой)
}

// Response модель ответа с созданным приёмом
type Response struct {
	ID             int64                  // ID созданного приёма
	PatientName    string                 // Имя пациента
	NationalID     string                 // Cédula
	Phone          string                 // Телефон
	Notes          *string                // Заметки
	Date           time.Time              // Дата приёма
	StartTime      types.TimeString       // Время начала
	EndTime        types.TimeString       // Время конца
	Professional   *domain.ProfessionalID // Профессионал
	SequenceNumber int                    // Номер талона (печатается пациенту)
	DayLabel       *string                // Тема дня из расписания

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
