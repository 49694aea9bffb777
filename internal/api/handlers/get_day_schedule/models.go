package get_day_schedule

import (
	"github.com/m04kA/SMC-AgendaService/internal/domain"
	getDaySchedule "github.com/m04kA/SMC-AgendaService/internal/usecase/get_day_schedule"
)

// DayScheduleResponse HTTP response model расписания дня
type DayScheduleResponse struct {
	Date               string                `json:"date"`
	Blocked            bool                  `json:"blocked"`
	IsHoliday          bool                  `json:"isHoliday"`
	Label              *string               `json:"label,omitempty"`
	Capacity           CapacityResponse      `json:"capacity"`
	NextSequenceNumber int                   `json:"nextSequenceNumber"`
	Appointments       []AppointmentResponse `json:"appointments"`
}

// CapacityResponse политика лимитов дня с остатками
type CapacityResponse struct {
	Kind                     string                       `json:"kind"` // whole_day / per_professional / unbounded
	Limit                    int                          `json:"limit,omitempty"`
	RemainingWholeDay        int                          `json:"remainingWholeDay,omitempty"`
	RemainingPerProfessional []ProfessionalRemainingModel `json:"remainingPerProfessional,omitempty"`
}

// ProfessionalRemainingModel остаток cupos одного профессионала
type ProfessionalRemainingModel struct {
	Professional string `json:"professional"`
	Remaining    int    `json:"remaining"`
}

// AppointmentResponse приём в расписании дня
type AppointmentResponse struct {
	ID             int64   `json:"id"`
	PatientName    string  `json:"patientName"`
	NationalID     string  `json:"nationalId"`
	Phone          string  `json:"phone"`
	Notes          *string `json:"notes,omitempty"`
	StartTime      string  `json:"startTime"`
	EndTime        string  `json:"endTime"`
	Professional   *string `json:"professional,omitempty"`
	SequenceNumber int     `json:"sequenceNumber"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDaySchedule.Response) *DayScheduleResponse {
	capacity := CapacityResponse{
		Kind:              string(resp.Capacity.Kind),
		Limit:             resp.Capacity.Limit,
		RemainingWholeDay: resp.Capacity.RemainingWholeDay,
	}
	for _, pr := range resp.Capacity.RemainingPerProfessional {
		capacity.RemainingPerProfessional = append(capacity.RemainingPerProfessional, ProfessionalRemainingModel{
			Professional: string(pr.Professional),
			Remaining:    pr.Remaining,
		})
	}

	appointments := make([]AppointmentResponse, 0, len(resp.Appointments))
	for _, appt := range resp.Appointments {
		var professional *string
		if appt.Professional != nil {
			p := string(*appt.Professional)
			professional = &p
		}
		appointments = append(appointments, AppointmentResponse{
			ID:             appt.ID,
			PatientName:    appt.PatientName,
			NationalID:     appt.NationalID,
			Phone:          appt.Phone,
			Notes:          appt.Notes,
			StartTime:      appt.StartTime.String(),
			EndTime:        appt.EndTime.String(),
			Professional:   professional,
			SequenceNumber: appt.SequenceNumber,
		})
	}

	return &DayScheduleResponse{
		Date:               resp.Date.Format(domain.DateFormat),
		Blocked:            resp.Blocked,
		IsHoliday:          resp.IsHoliday,
		Label:              resp.Label,
		Capacity:           capacity,
		NextSequenceNumber: resp.NextSequenceNumber,
		Appointments:       appointments,
	}
}
