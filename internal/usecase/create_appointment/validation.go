package create_appointment

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Обязательные поля: имя пациента, cédula, телефон
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.PatientName) == "" {
		return fmt.Errorf("%w: patientName is required", ErrMissingField)
	}
	if strings.TrimSpace(req.NationalID) == "" {
		return fmt.Errorf("%w: nationalId is required", ErrMissingField)
	}
	if strings.TrimSpace(req.Phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrMissingField)
	}

	if len(req.PatientName) > domain.MaxPatientNameLength {
		return fmt.Errorf("%w: patientName is too long", ErrInvalidInput)
	}
	if len(req.NationalID) > domain.MaxNationalIDLength {
		return fmt.Errorf("%w: nationalId is too long", ErrInvalidInput)
	}
	if len(req.Phone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: phone is too long", ErrInvalidInput)
	}
	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes are too long (max %d)", ErrInvalidInput, domain.MaxNotesLength)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if req.EndTime.IsZero() {
		return fmt.Errorf("%w: endTime is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}
	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
	}
	if !req.StartTime.IsBefore(req.EndTime) {
		return fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}

	return nil
}

// validateOfficeHours проверяет, что слот целиком внутри рабочего окна 08:30-12:00
// Проверяется даже при свободных cupos: вне окна записи нет
func validateOfficeHours(req *Request) error {
	if req.StartTime.IsBefore(domain.OfficeOpenTime) || req.EndTime.IsAfter(domain.OfficeCloseTime) {
		return fmt.Errorf("%w: slot %s-%s is outside %s-%s",
			ErrOutsideOfficeHours, req.StartTime, req.EndTime, domain.OfficeOpenTime, domain.OfficeCloseTime)
	}
	return nil
}

// validateProfessional сверяет выбор профессионала с политикой дня
// Профессионал обязателен и должен быть из списка, если день делится между
// профессионалами; в остальные дни поле должно быть пустым
func validateProfessional(policy domain.DayPolicy, professional *domain.ProfessionalID) error {
	if policy.RequiresProfessional() {
		if professional == nil {
			return ErrProfessionalRequired
		}
		for _, p := range policy.Capacity.Professionals {
			if p == *professional {
				return nil
			}
		}
		return fmt.Errorf("%w: %s", ErrUnknownProfessional, *professional)
	}

	if professional != nil {
		return fmt.Errorf("%w: %s", ErrProfessionalNotAllowed, *professional)
	}
	return nil
}
