package create_appointment

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-AgendaService/internal/capacity"
	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// UseCase use case для создания приёма
type UseCase struct {
	appointmentRepo AppointmentRepository
	resolver        ScheduleResolver
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	resolver ScheduleResolver,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		resolver:        resolver,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case создания приёма
//
// Лимиты проверяются заново в момент записи, а не в момент выбора слота:
// список приёмов дня перечитывается внутри сериализуемой транзакции
// (с блокировкой FOR UPDATE), политика дня пересчитывается и остатки
// считаются по актуальным данным. Это закрывает гонку двух одновременных
// записей на последний свободный cupo.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: patient=%s, date=%s, time=%s-%s",
		req.PatientName, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Политика дня: заблокированные дни отклоняются до обращения к БД
	policy := uc.resolver.Resolve(req.Date)
	if policy.Blocked {
		uc.logger.Warn("CreateAppointment: day %s is blocked", req.Date.Format(domain.DateFormat))
		return nil, ErrDayBlocked
	}

	// 3. Рабочее окно 08:30-12:00
	if err := validateOfficeHours(req); err != nil {
		uc.logger.Warn("CreateAppointment: office hours validation failed: %v", err)
		return nil, err
	}

	// 4. Выбор профессионала сверяется с политикой дня
	if err := validateProfessional(policy, req.Professional); err != nil {
		uc.logger.Warn("CreateAppointment: professional validation failed: %v", err)
		return nil, err
	}

	// Переменная для хранения результата
	var result *domain.Appointment

	// 5. Проверка лимитов и вставка в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Перечитываем приёмы дня с блокировкой (FOR UPDATE)
		appointments, err := uc.appointmentRepo.GetByDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 5.2. Пересчитываем политику и остатки по актуальному списку
		policy = uc.resolver.Resolve(req.Date)
		assessment := capacity.Assess(policy, appointments)

		// 5.3. Проверяем лимит, применимый к запросу
		switch {
		case policy.Capacity.IsWholeDay():
			if assessment.RemainingWholeDay <= 0 {
				uc.logger.Warn("CreateAppointment: day capacity exceeded, %d/%d taken",
					len(appointments), policy.Capacity.Limit)
				return ErrDayCapacityExceeded
			}
			uc.logger.Info("CreateAppointment: %d/%d day spots taken",
				len(appointments), policy.Capacity.Limit)

		case policy.Capacity.IsPerProfessional():
			if !assessment.HasCapacityFor(*req.Professional) {
				uc.logger.Warn("CreateAppointment: professional %s has no spots left", *req.Professional)
				return ErrProfessionalCapacityExceeded
			}
			uc.logger.Info("CreateAppointment: professional %s has %d spots left",
				*req.Professional, assessment.RemainingPerProfessional[*req.Professional])
		}

		// 5.4. Создаем приём с назначенным номером талона
		appt := &domain.Appointment{
			PatientName:    req.PatientName,
			NationalID:     req.NationalID,
			Phone:          req.Phone,
			Notes:          req.Notes,
			Date:           req.Date,
			StartTime:      req.StartTime,
			EndTime:        req.EndTime,
			Professional:   req.Professional,
			SequenceNumber: assessment.NextSequenceNumber,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d, sequence=%d",
		result.ID, result.SequenceNumber)

	return &Response{
		ID:             result.ID,
		PatientName:    result.PatientName,
		NationalID:     result.NationalID,
		Phone:          result.Phone,
		Notes:          result.Notes,
		Date:           result.Date,
		StartTime:      result.StartTime,
		EndTime:        result.EndTime,
		Professional:   result.Professional,
		SequenceNumber: result.SequenceNumber,
		DayLabel:       policy.Label,
		CreatedAt:      result.CreatedAt,
		UpdatedAt:      result.UpdatedAt,
	}, nil
}
