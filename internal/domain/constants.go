package domain

import "github.com/m04kA/SMC-AgendaService/pkg/types"

// Office working window: appointments may only be booked inside it
const (
	OfficeOpenTime  types.TimeString = "08:30"
	OfficeCloseTime types.TimeString = "12:00"
)

// Day labels (clinic themes) as shown in the agenda
const (
	LabelHoliday       = "Feriado"
	LabelDiabeticFoot  = "Pie diabético"
	LabelExtraSchedule = "Agenda extra"
	LabelAdolescents   = "Adolescentes"
	LabelType2Diabetes = "Diabetes tipo 2"
	LabelBariatric     = "Bariátrica (10 cupos)"
	LabelSharedFriday  = "Nati / Seba / Tami / Cris (5 c/u)"
	LabelTeamMeeting   = "Reunión de equipo (no hay consulta)"
)

// Capacity limits per the weekly schedule
const (
	MondayLimit          = 10 // Pie diabético
	ThursdayLimit        = 15 // Diabetes tipo 2
	FirstFridayLimit     = 10 // Bariátrica
	SharedFridayPerLimit = 5  // на каждого профессионала
)

// Business validation constants
const (
	MaxPatientNameLength = 200
	MaxNationalIDLength  = 20
	MaxPhoneLength       = 30
	MaxNotesLength       = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
