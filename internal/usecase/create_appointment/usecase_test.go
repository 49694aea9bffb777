package create_appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/ptr"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// fakeRepo репозиторий в памяти для тестов usecase
type fakeRepo struct {
	appointments []*domain.Appointment
	getErr       error
	createErr    error
	created      *domain.Appointment
}

func (f *fakeRepo) GetByDate(_ context.Context, _ time.Time) ([]*domain.Appointment, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.appointments, nil
}

func (f *fakeRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	appt.ID = 42
	appt.CreatedAt = time.Date(2025, time.August, 1, 9, 0, 0, 0, time.UTC)
	appt.UpdatedAt = appt.CreatedAt
	f.created = appt
	return appt, nil
}

// stubResolver возвращает фиксированную политику для любой даты
type stubResolver struct {
	policy domain.DayPolicy
}

func (s *stubResolver) Resolve(_ time.Time) domain.DayPolicy {
	return s.policy
}

// fakeTxManager выполняет функцию без реальной транзакции
type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validRequest() *Request {
	return &Request{
		PatientName: "María Pérez",
		NationalID:  "4.123.456-7",
		Phone:       "099123456",
		Date:        time.Date(2025, time.August, 4, 0, 0, 0, 0, time.UTC),
		StartTime:   types.TimeString("09:00"),
		EndTime:     types.TimeString("09:15"),
	}
}

func newUseCase(repo *fakeRepo, policy domain.DayPolicy) *UseCase {
	return NewUseCase(repo, &stubResolver{policy: policy}, &fakeTxManager{}, nopLogger{})
}

func wholeDayPolicy(limit int) domain.DayPolicy {
	return domain.DayPolicy{
		Label:    ptr.Ptr(domain.LabelDiabeticFoot),
		Capacity: domain.WholeDay(limit),
	}
}

func sharedFridayPolicy() domain.DayPolicy {
	return domain.DayPolicy{
		Label:    ptr.Ptr(domain.LabelSharedFriday),
		Capacity: domain.PerProfessional(domain.SharedFridayPerLimit, domain.FridayProfessionals),
	}
}

func TestExecute_Success_WholeDay(t *testing.T) {
	repo := &fakeRepo{appointments: []*domain.Appointment{
		{SequenceNumber: 1},
		{SequenceNumber: 2},
	}}
	uc := newUseCase(repo, wholeDayPolicy(10))

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "María Pérez", resp.PatientName)
	assert.Equal(t, 3, resp.SequenceNumber)
	require.NotNil(t, resp.DayLabel)
	assert.Equal(t, domain.LabelDiabeticFoot, *resp.DayLabel)
	assert.Nil(t, resp.Professional)

	require.NotNil(t, repo.created)
	assert.Equal(t, 3, repo.created.SequenceNumber)
}

func TestExecute_Success_PerProfessional(t *testing.T) {
	repo := &fakeRepo{appointments: []*domain.Appointment{
		{SequenceNumber: 1, Professional: ptr.Ptr(domain.ProfessionalNati)},
	}}
	uc := newUseCase(repo, sharedFridayPolicy())

	req := validRequest()
	req.Professional = ptr.Ptr(domain.ProfessionalSeba)

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// Номер талона общий на день, а не на профессионала
	assert.Equal(t, 2, resp.SequenceNumber)
	require.NotNil(t, resp.Professional)
	assert.Equal(t, domain.ProfessionalSeba, *resp.Professional)
}

func TestExecute_BlockedDay(t *testing.T) {
	repo := &fakeRepo{}
	uc := newUseCase(repo, domain.DayPolicy{
		Blocked:  true,
		Label:    ptr.Ptr(domain.LabelTeamMeeting),
		Capacity: domain.Unbounded(),
	})

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrDayBlocked)

	// До БД дело не дошло
	assert.Nil(t, repo.created)
}

func TestExecute_OutsideOfficeHours(t *testing.T) {
	tests := []struct {
		name  string
		start types.TimeString
		end   types.TimeString
	}{
		{name: "starts before opening", start: "08:00", end: "08:30"},
		{name: "ends after closing", start: "11:45", end: "12:15"},
		{name: "entirely in the afternoon", start: "14:00", end: "14:15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Лимит свободен, но слот вне рабочего окна
			uc := newUseCase(&fakeRepo{}, wholeDayPolicy(10))

			req := validRequest()
			req.StartTime = tt.start
			req.EndTime = tt.end

			_, err := uc.Execute(context.Background(), req)
			require.ErrorIs(t, err, ErrOutsideOfficeHours)
		})
	}
}

func TestExecute_MissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{name: "empty patient name", mutate: func(r *Request) { r.PatientName = "" }},
		{name: "whitespace patient name", mutate: func(r *Request) { r.PatientName = "   " }},
		{name: "empty national id", mutate: func(r *Request) { r.NationalID = "" }},
		{name: "empty phone", mutate: func(r *Request) { r.Phone = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newUseCase(&fakeRepo{}, wholeDayPolicy(10))

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			require.ErrorIs(t, err, ErrMissingField)
		})
	}
}

func TestExecute_InvalidTimeRange(t *testing.T) {
	uc := newUseCase(&fakeRepo{}, wholeDayPolicy(10))

	req := validRequest()
	req.StartTime = "10:00"
	req.EndTime = "09:00"

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_ProfessionalRequired(t *testing.T) {
	uc := newUseCase(&fakeRepo{}, sharedFridayPolicy())

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrProfessionalRequired)
}

func TestExecute_UnknownProfessional(t *testing.T) {
	uc := newUseCase(&fakeRepo{}, sharedFridayPolicy())

	req := validRequest()
	req.Professional = ptr.Ptr(domain.ProfessionalID("Pepe"))

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrUnknownProfessional)
}

func TestExecute_ProfessionalNotAllowed(t *testing.T) {
	// Профессионал указывается только в дни с per-professional политикой
	uc := newUseCase(&fakeRepo{}, wholeDayPolicy(10))

	req := validRequest()
	req.Professional = ptr.Ptr(domain.ProfessionalNati)

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrProfessionalNotAllowed)
}

func TestExecute_DayCapacityExceeded(t *testing.T) {
	day := make([]*domain.Appointment, 10)
	for i := range day {
		day[i] = &domain.Appointment{SequenceNumber: i + 1}
	}
	repo := &fakeRepo{appointments: day}
	uc := newUseCase(repo, wholeDayPolicy(10))

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrDayCapacityExceeded)
	assert.Nil(t, repo.created)
}

func TestExecute_ProfessionalCapacityExceeded(t *testing.T) {
	day := make([]*domain.Appointment, domain.SharedFridayPerLimit)
	for i := range day {
		day[i] = &domain.Appointment{
			SequenceNumber: i + 1,
			Professional:   ptr.Ptr(domain.ProfessionalNati),
		}
	}
	repo := &fakeRepo{appointments: day}
	uc := newUseCase(repo, sharedFridayPolicy())

	req := validRequest()
	req.Professional = ptr.Ptr(domain.ProfessionalNati)

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrProfessionalCapacityExceeded)

	// У другого профессионала cupos ещё есть
	req.Professional = ptr.Ptr(domain.ProfessionalTami)
	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, domain.SharedFridayPerLimit+1, resp.SequenceNumber)
}

func TestExecute_RepositoryErrors(t *testing.T) {
	boom := errors.New("connection refused")

	t.Run("get by date fails", func(t *testing.T) {
		uc := newUseCase(&fakeRepo{getErr: boom}, wholeDayPolicy(10))

		_, err := uc.Execute(context.Background(), validRequest())
		require.ErrorIs(t, err, ErrInternal)
	})

	t.Run("create fails", func(t *testing.T) {
		uc := newUseCase(&fakeRepo{createErr: boom}, wholeDayPolicy(10))

		_, err := uc.Execute(context.Background(), validRequest())
		require.ErrorIs(t, err, ErrInternal)
	})
}
