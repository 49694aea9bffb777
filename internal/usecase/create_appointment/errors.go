package create_appointment

import "errors"

var (
	// ErrDayBlocked возвращается при попытке записи на заблокированный день
	// (feriado, выходной или 4-я пятница — reunión de equipo)
	ErrDayBlocked = errors.New("create_appointment: day is blocked")

	// ErrOutsideOfficeHours возвращается, когда слот выходит за рабочее окно 08:30-12:00
	ErrOutsideOfficeHours = errors.New("create_appointment: slot is outside office hours")

	// ErrMissingField возвращается, когда не заполнено обязательное поле
	// (имя пациента, cédula или телефон)
	ErrMissingField = errors.New("create_appointment: required field is missing")

	// ErrDayCapacityExceeded возвращается, когда общий лимит дня исчерпан
	ErrDayCapacityExceeded = errors.New("create_appointment: day capacity exceeded")

	// ErrProfessionalCapacityExceeded возвращается, когда у выбранного профессионала не осталось cupos
	ErrProfessionalCapacityExceeded = errors.New("create_appointment: professional capacity exceeded")

	// ErrProfessionalRequired возвращается, когда день делится между профессионалами,
	// а профессионал в запросе не указан
	ErrProfessionalRequired = errors.New("create_appointment: professional is required on this day")

	// ErrUnknownProfessional возвращается, когда указан профессионал вне списка
	ErrUnknownProfessional = errors.New("create_appointment: unknown professional")

	// ErrProfessionalNotAllowed возвращается, когда профессионал указан,
	// а политика дня не per-professional
	ErrProfessionalNotAllowed = errors.New("create_appointment: professional is not applicable on this day")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	// Оборачивает ошибки хранилища; usecase не ретраит их автоматически,
	// так как запись не идемпотентна (повтор породил бы дубль с новым талоном)
	ErrInternal = errors.New("create_appointment: internal error")
)
