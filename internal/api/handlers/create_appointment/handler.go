package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	createAppointment "github.com/m04kA/SMC-AgendaService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody     = "cuerpo de la solicitud inválido"
	msgInvalidDateOrTime      = "formato de fecha u hora inválido, se espera YYYY-MM-DD y HH:MM"
	msgDayBlocked             = "este día está bloqueado (feriado o reunión)"
	msgOutsideOfficeHours     = "solo se puede agendar entre 08:30 y 12:00"
	msgMissingFields          = "nombre, cédula y teléfono son obligatorios"
	msgDayCapacityExceeded    = "se alcanzó el máximo de turnos para este día"
	msgProfessionalNoCapacity = "el profesional ya no tiene cupos ese día"
	msgProfessionalRequired   = "hay que elegir un profesional para este día"
	msgUnknownProfessional    = "profesional desconocido"
	msgProfessionalNotAllowed = "este día no se agenda por profesional"
	msgInvalidInput           = "datos de la solicitud inválidos"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, createAppointment.ErrDayBlocked):
			h.logger.Warn("POST /appointments - Day blocked: date=%s", req.Date)
			handlers.RespondError(w, http.StatusConflict, msgDayBlocked)

		case errors.Is(err, createAppointment.ErrOutsideOfficeHours):
			h.logger.Warn("POST /appointments - Outside office hours: date=%s, time=%s-%s",
				req.Date, req.StartTime, req.EndTime)
			handlers.RespondBadRequest(w, msgOutsideOfficeHours)

		case errors.Is(err, createAppointment.ErrMissingField):
			h.logger.Warn("POST /appointments - Missing required field: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, createAppointment.ErrDayCapacityExceeded):
			h.logger.Warn("POST /appointments - Day capacity exceeded: date=%s", req.Date)
			handlers.RespondConflict(w, msgDayCapacityExceeded)

		case errors.Is(err, createAppointment.ErrProfessionalCapacityExceeded):
			h.logger.Warn("POST /appointments - Professional capacity exceeded: date=%s", req.Date)
			handlers.RespondConflict(w, msgProfessionalNoCapacity)

		case errors.Is(err, createAppointment.ErrProfessionalRequired):
			h.logger.Warn("POST /appointments - Professional required: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgProfessionalRequired)

		case errors.Is(err, createAppointment.ErrUnknownProfessional):
			h.logger.Warn("POST /appointments - Unknown professional: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgUnknownProfessional)

		case errors.Is(err, createAppointment.ErrProfessionalNotAllowed):
			h.logger.Warn("POST /appointments - Professional not allowed: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgProfessionalNotAllowed)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: date=%s, error=%v", req.Date, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: date=%s, error=%v",
				req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d, sequence=%d",
		result.ID, result.SequenceNumber)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
