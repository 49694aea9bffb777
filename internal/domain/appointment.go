package domain

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// ProfessionalID identifies one of the clinic professionals
// Valid only on days whose capacity policy is per-professional
type ProfessionalID string

const (
	ProfessionalNati ProfessionalID = "Nati"
	ProfessionalSeba ProfessionalID = "Seba"
	ProfessionalTami ProfessionalID = "Tami"
	ProfessionalCris ProfessionalID = "Cris"
)

// FridayProfessionals профессионалы, между которыми делятся пятничные приёмы
// Порядок фиксирован и используется при выводе остатков по каждому из них
var FridayProfessionals = []ProfessionalID{
	ProfessionalNati,
	ProfessionalSeba,
	ProfessionalTami,
	ProfessionalCris,
}

// IsKnownProfessional returns true if p is one of the clinic professionals
func IsKnownProfessional(p ProfessionalID) bool {
	for _, known := range FridayProfessionals {
		if known == p {
			return true
		}
	}
	return false
}

// Appointment represents a patient turn in the agenda
// Immutable once created: the only mutation path is deletion
type Appointment struct {
	ID          int64
	PatientName string
	NationalID  string // cédula de identidad
	Phone       string
	Notes       *string

	Date      time.Time // calendar day in the office's local zone
	StartTime types.TimeString
	EndTime   types.TimeString

	// Professional is set if and only if the day's policy is per-professional
	Professional *ProfessionalID

	// SequenceNumber is the per-date ticket number shown to the patient,
	// assigned in booking order
	SequenceNumber int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsFor returns true if the appointment belongs to professional p
func (a *Appointment) IsFor(p ProfessionalID) bool {
	return a.Professional != nil && *a.Professional == p
}

// SameDay returns true if the appointment is on the given calendar day
func (a *Appointment) SameDay(date time.Time) bool {
	y1, m1, d1 := a.Date.Date()
	y2, m2, d2 := date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
