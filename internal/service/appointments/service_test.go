package appointments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-AgendaService/pkg/ptr"
)

// fakeRepo репозиторий в памяти для тестов сервиса
type fakeRepo struct {
	byID      *domain.Appointment
	byIDErr   error
	byRange   []*domain.Appointment
	rangeErr  error
	deleteErr error
	deletedID int64
}

func (f *fakeRepo) GetByID(_ context.Context, _ int64) (*domain.Appointment, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	return f.byID, nil
}

func (f *fakeRepo) GetByRange(_ context.Context, _, _ time.Time) ([]*domain.Appointment, error) {
	if f.rangeErr != nil {
		return nil, f.rangeErr
	}
	return f.byRange, nil
}

func (f *fakeRepo) Delete(_ context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedID = id
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func sampleAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:             42,
		PatientName:    "María Pérez",
		NationalID:     "4.123.456-7",
		Phone:          "099123456",
		Date:           time.Date(2025, time.August, 8, 0, 0, 0, 0, time.UTC),
		StartTime:      "09:00",
		EndTime:        "09:15",
		Professional:   ptr.Ptr(domain.ProfessionalNati),
		SequenceNumber: 3,
		CreatedAt:      time.Date(2025, time.August, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestGetByID(t *testing.T) {
	svc := NewService(&fakeRepo{byID: sampleAppointment()}, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "María Pérez", resp.PatientName)
	assert.Equal(t, "2025-08-08", resp.Date)
	assert.Equal(t, "09:00", resp.StartTime)
	require.NotNil(t, resp.Professional)
	assert.Equal(t, "Nati", *resp.Professional)
	assert.Equal(t, 3, resp.SequenceNumber)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(&fakeRepo{byIDErr: appointmentRepo.ErrAppointmentNotFound}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 999)
	require.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestGetByID_RepositoryError(t *testing.T) {
	svc := NewService(&fakeRepo{byIDErr: errors.New("connection refused")}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 42)
	require.ErrorIs(t, err, ErrInternal)
}

func TestGetByRange(t *testing.T) {
	svc := NewService(&fakeRepo{byRange: []*domain.Appointment{
		sampleAppointment(),
		sampleAppointment(),
	}}, nopLogger{})

	from := time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.August, 31, 0, 0, 0, 0, time.UTC)

	resp, err := svc.GetByRange(context.Background(), from, to)
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Total)
	assert.Len(t, resp.Appointments, 2)
}

func TestGetByRange_EmptyPeriod(t *testing.T) {
	svc := NewService(&fakeRepo{byRange: []*domain.Appointment{}}, nopLogger{})

	d := time.Date(2025, time.August, 8, 0, 0, 0, 0, time.UTC)

	// Один и тот же день в from и to - валидный период
	resp, err := svc.GetByRange(context.Background(), d, d)
	require.NoError(t, err)

	assert.Equal(t, 0, resp.Total)
	assert.NotNil(t, resp.Appointments)
}

func TestGetByRange_InvalidInput(t *testing.T) {
	svc := NewService(&fakeRepo{}, nopLogger{})

	from := time.Date(2025, time.August, 8, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC)

	t.Run("zero from", func(t *testing.T) {
		_, err := svc.GetByRange(context.Background(), time.Time{}, to)
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("zero to", func(t *testing.T) {
		_, err := svc.GetByRange(context.Background(), from, time.Time{})
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("to before from", func(t *testing.T) {
		_, err := svc.GetByRange(context.Background(), from, to)
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestDelete(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, nopLogger{})

	err := svc.Delete(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, int64(42), repo.deletedID)
}

func TestDelete_NotFound(t *testing.T) {
	svc := NewService(&fakeRepo{deleteErr: appointmentRepo.ErrAppointmentNotFound}, nopLogger{})

	err := svc.Delete(context.Background(), 999)
	require.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestDelete_RepositoryError(t *testing.T) {
	svc := NewService(&fakeRepo{deleteErr: errors.New("connection refused")}, nopLogger{})

	err := svc.Delete(context.Background(), 42)
	require.ErrorIs(t, err, ErrInternal)
}
