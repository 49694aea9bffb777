package schedule

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/ptr"
)

// Resolver выводит политику дня (блокировка, тема, лимиты) из календарной даты
// Без побочных эффектов: результат детерминирован, можно кэшировать по дате
type Resolver struct {
	holidays HolidaySet
	rules    []rule
}

// rule одно правило расписания: предикат + политика
// Правила проверяются сверху вниз, применяется первое совпавшее
type rule struct {
	matches func(date time.Time, week int) bool
	policy  domain.DayPolicy
}

// NewResolver создает резолвер с переданным набором feriados
func NewResolver(holidays HolidaySet) *Resolver {
	r := &Resolver{holidays: holidays}

	r.rules = []rule{
		// Feriados блокируют день независимо от дня недели
		{
			matches: func(date time.Time, _ int) bool { return holidays.Contains(date) },
			policy:  domain.DayPolicy{Blocked: true, Label: ptr.Ptr(domain.LabelHoliday), Capacity: domain.Unbounded()},
		},
		// Выходные
		{
			matches: func(date time.Time, _ int) bool {
				wd := date.Weekday()
				return wd == time.Saturday || wd == time.Sunday
			},
			policy: domain.DayPolicy{Blocked: true, Capacity: domain.Unbounded()},
		},
		// Понедельник: pie diabético, общий лимит на день
		{
			matches: weekdayIs(time.Monday),
			policy: domain.DayPolicy{
				Label:    ptr.Ptr(domain.LabelDiabeticFoot),
				Capacity: domain.WholeDay(domain.MondayLimit),
			},
		},
		// Вторник: agenda extra, без лимита
		{
			matches: weekdayIs(time.Tuesday),
			policy: domain.DayPolicy{
				Label:    ptr.Ptr(domain.LabelExtraSchedule),
				Capacity: domain.Unbounded(),
			},
		},
		// Среда: adolescentes, без лимита
		{
			matches: weekdayIs(time.Wednesday),
			policy: domain.DayPolicy{
				Label:    ptr.Ptr(domain.LabelAdolescents),
				Capacity: domain.Unbounded(),
			},
		},
		// Четверг: diabetes tipo 2, общий лимит на день
		{
			matches: weekdayIs(time.Thursday),
			policy: domain.DayPolicy{
				Label:    ptr.Ptr(domain.LabelType2Diabetes),
				Capacity: domain.WholeDay(domain.ThursdayLimit),
			},
		},
		// 1-я пятница: bariátrica, общий лимит на день
		{
			matches: fridayOfWeek(1),
			policy: domain.DayPolicy{
				Label:    ptr.Ptr(domain.LabelBariatric),
				Capacity: domain.WholeDay(domain.FirstFridayLimit),
			},
		},
		// 4-я пятница: reunión de equipo, приёмов нет
		{
			matches: fridayOfWeek(4),
			policy: domain.DayPolicy{
				Blocked:  true,
				Label:    ptr.Ptr(domain.LabelTeamMeeting),
				Capacity: domain.Unbounded(),
			},
		},
		// Остальные пятницы (2-я, 3-я и 5-я, если есть): делятся между профессионалами
		{
			matches: weekdayIs(time.Friday),
			policy: domain.DayPolicy{
				Label:    ptr.Ptr(domain.LabelSharedFriday),
				Capacity: domain.PerProfessional(domain.SharedFridayPerLimit, domain.FridayProfessionals),
			},
		},
	}

	return r
}

// Resolve возвращает политику дня для даты
// Правила применяются в порядке объявления, первое совпавшее побеждает
func (r *Resolver) Resolve(date time.Time) domain.DayPolicy {
	week := WeekOfMonth(date)
	for _, rl := range r.rules {
		if rl.matches(date, week) {
			return rl.policy
		}
	}
	// Ни одно правило не совпало: обычный день без темы и лимита
	return domain.DayPolicy{Capacity: domain.Unbounded()}
}

// IsBlocked returns true if no bookings may be created on the date
func (r *Resolver) IsBlocked(date time.Time) bool {
	return r.Resolve(date).Blocked
}

// IsHoliday returns true if the date is in the holiday set
func (r *Resolver) IsHoliday(date time.Time) bool {
	return r.holidays.Contains(date)
}

// WeekOfMonth возвращает номер недели месяца: ceil(день/7), 1..5
func WeekOfMonth(date time.Time) int {
	return (date.Day() + 6) / 7
}

func weekdayIs(wd time.Weekday) func(time.Time, int) bool {
	return func(date time.Time, _ int) bool {
		return date.Weekday() == wd
	}
}

func fridayOfWeek(week int) func(time.Time, int) bool {
	return func(date time.Time, w int) bool {
		return date.Weekday() == time.Friday && w == week
	}
}
