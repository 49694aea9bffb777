package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	createAppointment "github.com/m04kA/SMC-AgendaService/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	PatientName  string  `json:"patientName"`
	NationalID   string  `json:"nationalId"`
	Phone        string  `json:"phone"`
	Notes        *string `json:"notes,omitempty"`
	Date         string  `json:"date"`      // "2025-10-17"
	StartTime    string  `json:"startTime"` // "09:15"
	EndTime      string  `json:"endTime"`   // "09:30"
	Professional *string `json:"professional,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID             int64   `json:"id"`
	PatientName    string  `json:"patientName"`
	NationalID     string  `json:"nationalId"`
	Phone          string  `json:"phone"`
	Notes          *string `json:"notes,omitempty"`
	Date           string  `json:"date"`
	StartTime      string  `json:"startTime"`
	EndTime        string  `json:"endTime"`
	Professional   *string `json:"professional,omitempty"`
	SequenceNumber int     `json:"sequenceNumber"`
	DayLabel       *string `json:"dayLabel,omitempty"`
	CreatedAt      string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	var professional *domain.ProfessionalID
	if r.Professional != nil && *r.Professional != "" {
		p := domain.ProfessionalID(*r.Professional)
		professional = &p
	}

	return &createAppointment.Request{
		PatientName:  r.PatientName,
		NationalID:   r.NationalID,
		Phone:        r.Phone,
		Notes:        r.Notes,
		Date:         date,
		StartTime:    startTime,
		EndTime:      endTime,
		Professional: professional,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	var professional *string
	if resp.Professional != nil {
		p := string(*resp.Professional)
		professional = &p
	}

	return &AppointmentResponse{
		ID:             resp.ID,
		PatientName:    resp.PatientName,
		NationalID:     resp.NationalID,
		Phone:          resp.Phone,
		Notes:          resp.Notes,
		Date:           resp.Date.Format(domain.DateFormat),
		StartTime:      resp.StartTime.String(),
		EndTime:        resp.EndTime.String(),
		Professional:   professional,
		SequenceNumber: resp.SequenceNumber,
		DayLabel:       resp.DayLabel,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
	}
}
