package models

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// AppointmentResponse модель приёма для выдачи наружу
type AppointmentResponse struct {
	ID             int64   `json:"id"`
	PatientName    string  `json:"patientName"`
	NationalID     string  `json:"nationalId"`
	Phone          string  `json:"phone"`
	Notes          *string `json:"notes,omitempty"`
	Date           string  `json:"date"`      // YYYY-MM-DD
	StartTime      string  `json:"startTime"` // HH:MM
	EndTime        string  `json:"endTime"`   // HH:MM
	Professional   *string `json:"professional,omitempty"`
	SequenceNumber int     `json:"sequenceNumber"`
	CreatedAt      string  `json:"createdAt"`
}

// AppointmentListResponse список приёмов
type AppointmentListResponse struct {
	Appointments []*AppointmentResponse `json:"appointments"`
	Total        int                    `json:"total"`
}

// FromDomainAppointment конвертирует domain.Appointment в response-модель
func FromDomainAppointment(appt *domain.Appointment) *AppointmentResponse {
	var professional *string
	if appt.Professional != nil {
		p := string(*appt.Professional)
		professional = &p
	}

	return &AppointmentResponse{
		ID:             appt.ID,
		PatientName:    appt.PatientName,
		NationalID:     appt.NationalID,
		Phone:          appt.Phone,
		Notes:          appt.Notes,
		Date:           appt.Date.Format(domain.DateFormat),
		StartTime:      appt.StartTime.String(),
		EndTime:        appt.EndTime.String(),
		Professional:   professional,
		SequenceNumber: appt.SequenceNumber,
		CreatedAt:      appt.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainAppointmentList конвертирует список приёмов
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	result := make([]*AppointmentResponse, 0, len(appointments))
	for _, appt := range appointments {
		result = append(result, FromDomainAppointment(appt))
	}
	return &AppointmentListResponse{
		Appointments: result,
		Total:        len(result),
	}
}
