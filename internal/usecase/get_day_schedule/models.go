package get_day_schedule

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// Request модель запроса на получение расписания дня
type Request struct {
	Date time.Time // Дата (без времени)
}

// Response модель ответа: политика дня, остатки cupos и приёмы
type Response struct {
	Date      time.Time // Дата, на которую запрашивалось расписание
	Blocked   bool      // Запись на этот день закрыта
	IsHoliday bool      // День является feriado
	Label     *string   // Тема дня из расписания (nil если нет)

	Capacity CapacityView // Политика и остатки

	NextSequenceNumber int // Номер талона для следующей записи

	Appointments []Appointment // Приёмы дня по возрастанию времени начала
}

// CapacityView политика лимитов дня с остатками
type CapacityView struct {
	Kind  domain.CapacityKind // whole_day / per_professional / unbounded
	Limit int                 // Лимит (0 для unbounded)

	// RemainingWholeDay остаток общего лимита дня (whole_day)
	RemainingWholeDay int

	// RemainingPerProfessional остатки по профессионалам в порядке списка дня (per_professional)
	RemainingPerProfessional []ProfessionalRemaining
}

// ProfessionalRemaining остаток cupos одного профессионала
type ProfessionalRemaining struct {
	Professional domain.ProfessionalID
	Remaining    int
}

// Appointment модель приёма в расписании дня
type Appointment struct {
	ID             int64
	PatientName    string
	NationalID     string
	Phone          string
	Notes          *string
	StartTime      types.TimeString
	EndTime        types.TimeString
	Professional   *domain.ProfessionalID
	SequenceNumber int
}
