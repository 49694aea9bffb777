package appointment

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AgendaService/pkg/ptr"
)

const selectColumns = "id, patient_name, national_id, phone, notes, appointment_date, " +
	"start_time, end_time, professional, sequence_number, created_at, updated_at"

var (
	testDate      = time.Date(2025, time.August, 8, 0, 0, 0, 0, time.UTC)
	testCreatedAt = time.Date(2025, time.August, 1, 10, 0, 0, 0, time.UTC)
)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	return NewRepository(db), mock, db
}

func appointmentRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "patient_name", "national_id", "phone", "notes", "appointment_date",
		"start_time", "end_time", "professional", "sequence_number", "created_at", "updated_at",
	})
}

func TestCreate(t *testing.T) {
	repo, mock, db := newMock(t)
	defer db.Close()

	query := regexp.QuoteMeta(
		"INSERT INTO appointments (patient_name,national_id,phone,notes,appointment_date," +
			"start_time,end_time,professional,sequence_number) " +
			"VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9) RETURNING id, created_at, updated_at")

	mock.ExpectQuery(query).
		WithArgs("María Pérez", "4.123.456-7", "099123456", nil, testDate, "09:00", "09:15", "Nati", 3).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(int64(42), testCreatedAt, testCreatedAt))

	appt := &domain.Appointment{
		PatientName:    "María Pérez",
		NationalID:     "4.123.456-7",
		Phone:          "099123456",
		Date:           testDate,
		StartTime:      "09:00",
		EndTime:        "09:15",
		Professional:   ptr.Ptr(domain.ProfessionalNati),
		SequenceNumber: 3,
	}

	created, err := repo.Create(context.Background(), appt)
	require.NoError(t, err)

	assert.Equal(t, int64(42), created.ID)
	assert.Equal(t, testCreatedAt, created.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_WithoutProfessional(t *testing.T) {
	repo, mock, db := newMock(t)
	defer db.Close()

	// Вне пятниц professional пишется как NULL
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO appointments")).
		WithArgs("María Pérez", "4.123.456-7", "099123456", nil, testDate, "09:00", "09:15", nil, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(int64(1), testCreatedAt, testCreatedAt))

	appt := &domain.Appointment{
		PatientName:    "María Pérez",
		NationalID:     "4.123.456-7",
		Phone:          "099123456",
		Date:           testDate,
		StartTime:      "09:00",
		EndTime:        "09:15",
		SequenceNumber: 1,
	}

	_, err := repo.Create(context.Background(), appt)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID(t *testing.T) {
	repo, mock, db := newMock(t)
	defer db.Close()

	query := regexp.QuoteMeta("SELECT " + selectColumns + " FROM appointments WHERE id = $1")

	mock.ExpectQuery(query).
		WithArgs(int64(42)).
		WillReturnRows(appointmentRows().AddRow(
			int64(42), "María Pérez", "4.123.456-7", "099123456", nil, testDate,
			"09:00:00", "09:15:00", "Nati", 3, testCreatedAt, testCreatedAt))

	appt, err := repo.GetByID(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, int64(42), appt.ID)
	assert.Equal(t, "María Pérez", appt.PatientName)
	// Время из колонки time возвращается с секундами и обрезается до HH:MM
	assert.Equal(t, "09:00", appt.StartTime.String())
	assert.Equal(t, "09:15", appt.EndTime.String())
	require.NotNil(t, appt.Professional)
	assert.Equal(t, domain.ProfessionalNati, *appt.Professional)
	assert.Equal(t, 3, appt.SequenceNumber)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, db := newMock(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs(int64(999)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 999)
	require.ErrorIs(t, err, ErrAppointmentNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByDate(t *testing.T) {
	repo, mock, db := newMock(t)
	defer db.Close()

	// Вне транзакции строки дня не блокируются
	query := regexp.QuoteMeta("SELECT "+selectColumns+
		" FROM appointments WHERE appointment_date = $1"+
		" ORDER BY start_time ASC, sequence_number ASC") + `\s*$`

	mock.ExpectQuery(query).
		WithArgs(testDate).
		WillReturnRows(appointmentRows().
			AddRow(int64(1), "María Pérez", "4.123.456-7", "099123456", nil, testDate,
				"08:30:00", "08:45:00", "Nati", 1, testCreatedAt, testCreatedAt).
			AddRow(int64(2), "Juan Suárez", "3.987.654-3", "098765432", "control", testDate,
				"09:00:00", "09:15:00", nil, 2, testCreatedAt, testCreatedAt))

	appointments, err := repo.GetByDate(context.Background(), testDate)
	require.NoError(t, err)

	require.Len(t, appointments, 2)
	assert.Equal(t, 1, appointments[0].SequenceNumber)
	assert.Equal(t, 2, appointments[1].SequenceNumber)
	require.NotNil(t, appointments[1].Notes)
	assert.Equal(t, "control", *appointments[1].Notes)
	assert.Nil(t, appointments[1].Professional)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByDate_LocksRowsInTransaction(t *testing.T) {
	repo, mock, db := newMock(t)
	defer db.Close()

	mock.ExpectBegin()

	query := regexp.QuoteMeta("SELECT "+selectColumns+
		" FROM appointments WHERE appointment_date = $1"+
		" ORDER BY start_time ASC, sequence_number ASC FOR UPDATE") + `\s*$`

	mock.ExpectQuery(query).
		WithArgs(testDate).
		WillReturnRows(appointmentRows())

	mock.ExpectCommit()

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err)

	ctx := dbmetrics.WithExecutor(context.Background(), tx)
	appointments, err := repo.GetByDate(ctx, testDate)
	require.NoError(t, err)
	assert.Empty(t, appointments)

	require.NoError(t, tx.Commit())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByRange(t *testing.T) {
	repo, mock, db := newMock(t)
	defer db.Close()

	from := time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.August, 31, 0, 0, 0, 0, time.UTC)

	query := regexp.QuoteMeta("SELECT " + selectColumns +
		" FROM appointments WHERE appointment_date >= $1 AND appointment_date <= $2" +
		" ORDER BY appointment_date ASC, start_time ASC, sequence_number ASC")

	mock.ExpectQuery(query).
		WithArgs(from, to).
		WillReturnRows(appointmentRows().
			AddRow(int64(1), "María Pérez", "4.123.456-7", "099123456", nil, testDate,
				"09:00:00", "09:15:00", nil, 1, testCreatedAt, testCreatedAt))

	appointments, err := repo.GetByRange(context.Background(), from, to)
	require.NoError(t, err)

	require.Len(t, appointments, 1)
	assert.Equal(t, int64(1), appointments[0].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete(t *testing.T) {
	repo, mock, db := newMock(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM appointments WHERE id = $1")).
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete(context.Background(), 42)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_NotFound(t *testing.T) {
	repo, mock, db := newMock(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM appointments WHERE id = $1")).
		WithArgs(int64(999)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 999)
	require.ErrorIs(t, err, ErrAppointmentNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
