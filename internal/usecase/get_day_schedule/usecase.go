package get_day_schedule

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-AgendaService/internal/capacity"
	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// UseCase use case для получения расписания дня: политика, остатки cupos и приёмы
type UseCase struct {
	appointmentRepo AppointmentRepository
	resolver        ScheduleResolver
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	resolver ScheduleResolver,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		resolver:        resolver,
		logger:          logger,
	}
}

// Execute выполняет use case получения расписания дня
// Остатки считаются по живому списку приёмов; ответ отражает состояние на
// момент запроса, окончательная проверка лимитов выполняется при записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDaySchedule: date=%s", req.Date.Format(domain.DateFormat))

	if req.Date.IsZero() {
		uc.logger.Warn("GetDaySchedule: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	policy := uc.resolver.Resolve(req.Date)

	// Приёмы показываются и на заблокированные дни (например, существующие
	// записи на день, который позже стал feriado)
	appointments, err := uc.appointmentRepo.GetByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetDaySchedule: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	assessment := capacity.Assess(policy, appointments)

	resp := &Response{
		Date:               req.Date,
		Blocked:            policy.Blocked,
		IsHoliday:          uc.resolver.IsHoliday(req.Date),
		Label:              policy.Label,
		Capacity:           buildCapacityView(policy, assessment),
		NextSequenceNumber: assessment.NextSequenceNumber,
		Appointments:       fromDomainAppointments(appointments),
	}

	uc.logger.Info("GetDaySchedule: date=%s, blocked=%t, appointments=%d",
		req.Date.Format(domain.DateFormat), policy.Blocked, len(appointments))

	return resp, nil
}

// buildCapacityView собирает остатки в порядке списка профессионалов дня
func buildCapacityView(policy domain.DayPolicy, assessment capacity.Assessment) CapacityView {
	view := CapacityView{
		Kind:              policy.Capacity.Kind,
		Limit:             policy.Capacity.Limit,
		RemainingWholeDay: assessment.RemainingWholeDay,
	}

	if policy.Capacity.IsPerProfessional() {
		view.RemainingPerProfessional = make([]ProfessionalRemaining, 0, len(policy.Capacity.Professionals))
		for _, p := range policy.Capacity.Professionals {
			view.RemainingPerProfessional = append(view.RemainingPerProfessional, ProfessionalRemaining{
				Professional: p,
				Remaining:    assessment.RemainingPerProfessional[p],
			})
		}
	}

	return view
}

func fromDomainAppointments(appointments []*domain.Appointment) []Appointment {
	result := make([]Appointment, 0, len(appointments))
	for _, appt := range appointments {
		result = append(result, Appointment{
			ID:             appt.ID,
			PatientName:    appt.PatientName,
			NationalID:     appt.NationalID,
			Phone:          appt.Phone,
			Notes:          appt.Notes,
			StartTime:      appt.StartTime,
			EndTime:        appt.EndTime,
			Professional:   appt.Professional,
			SequenceNumber: appt.SequenceNumber,
		})
	}
	return result
}
