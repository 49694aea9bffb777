package capacity

import (
	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// Assessment результат подсчёта остатков по дню
// Остаток либо Unlimited, либо конкретные числа; Infinity как сентинель не используется
type Assessment struct {
	// Unlimited true, если политика дня без лимита
	Unlimited bool

	// RemainingWholeDay остаток общего лимита дня (только для whole-day политики)
	RemainingWholeDay int

	// RemainingPerProfessional остаток по каждому профессионалу
	// (только для per-professional политики; пустая map для остальных)
	RemainingPerProfessional map[domain.ProfessionalID]int

	// NextSequenceNumber номер талона для следующей записи на этот день
	// Глобальный счётчик дня независимо от типа политики
	NextSequenceNumber int
}

// Assess считает остатки и следующий номер талона по актуальному списку
// приёмов дня. Чистая агрегация: пересчитывается перед каждым решением о
// записи, чтобы не работать с устаревшими данными.
func Assess(policy domain.DayPolicy, appointments []*domain.Appointment) Assessment {
	assessment := Assessment{
		RemainingPerProfessional: map[domain.ProfessionalID]int{},
		NextSequenceNumber:       len(appointments) + 1,
	}

	switch policy.Capacity.Kind {
	case domain.CapacityWholeDay:
		assessment.RemainingWholeDay = remaining(policy.Capacity.Limit, len(appointments))

	case domain.CapacityPerProfessional:
		counts := countByProfessional(appointments)
		for _, p := range policy.Capacity.Professionals {
			assessment.RemainingPerProfessional[p] = remaining(policy.Capacity.Limit, counts[p])
		}

	case domain.CapacityUnbounded:
		assessment.Unlimited = true
	}

	return assessment
}

// HasDayCapacity returns true if at least one whole-day spot remains
// Для политик без общего лимита дня всегда true
func (a Assessment) HasDayCapacity() bool {
	return a.Unlimited || len(a.RemainingPerProfessional) > 0 || a.RemainingWholeDay > 0
}

// HasCapacityFor returns true if professional p still has a free spot
// Неизвестный профессионал не имеет квоты вовсе
func (a Assessment) HasCapacityFor(p domain.ProfessionalID) bool {
	rem, ok := a.RemainingPerProfessional[p]
	return ok && rem > 0
}

// countByProfessional группирует приёмы дня по профессионалу
// Приёмы без профессионала (и с неизвестным значением) не относятся ни к одной квоте
func countByProfessional(appointments []*domain.Appointment) map[domain.ProfessionalID]int {
	counts := make(map[domain.ProfessionalID]int)
	for _, appt := range appointments {
		if appt.Professional == nil {
			continue
		}
		counts[*appt.Professional]++
	}
	return counts
}

func remaining(limit, used int) int {
	if used >= limit {
		return 0
	}
	return limit - used
}
