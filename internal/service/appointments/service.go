package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-AgendaService/internal/service/appointments/models"
)

// Service сервис для чтения и удаления приёмов
// Создание приёма идёт через usecase create_appointment (с проверкой лимитов)
type Service struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса приёмов
func NewService(appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// GetByID получает приём по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d", id)

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched appointment id=%d", id)
	return models.FromDomainAppointment(appt), nil
}

// GetByRange получает приёмы за период [from, to] включительно
// Лента агенды, которую календарь опрашивает вместо live-подписки:
// порядок по дате и времени начала по возрастанию
func (s *Service) GetByRange(ctx context.Context, from, to time.Time) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetByRange: fetching appointments from=%s to=%s",
		from.Format(domain.DateFormat), to.Format(domain.DateFormat))

	if from.IsZero() || to.IsZero() {
		s.logger.Warn("GetByRange: from and to are required")
		return nil, fmt.Errorf("%w: from and to are required", ErrInvalidInput)
	}
	if to.Before(from) {
		s.logger.Warn("GetByRange: to is before from")
		return nil, fmt.Errorf("%w: to must not be before from", ErrInvalidInput)
	}

	appointments, err := s.appointmentRepo.GetByRange(ctx, from, to)
	if err != nil {
		s.logger.Error("GetByRange: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetByRange - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByRange: successfully fetched %d appointments", len(appointments))
	return models.FromDomainAppointmentList(appointments), nil
}

// Delete удаляет приём по ID
// Подтверждение удаления - ответственность вызывающего UI; освободившийся
// cupo учитывается при следующем подсчёте остатков без пересчёта талонов
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting appointment id=%d", id)

	if err := s.appointmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Delete: appointment id=%d not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Delete: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted appointment id=%d", id)
	return nil
}
