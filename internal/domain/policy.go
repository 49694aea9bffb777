package domain

// CapacityKind discriminates the capacity policy variants
type CapacityKind string

const (
	// CapacityWholeDay общий лимит на все приёмы дня
	CapacityWholeDay CapacityKind = "whole_day"
	// CapacityPerProfessional независимый лимит на каждого профессионала
	CapacityPerProfessional CapacityKind = "per_professional"
	// CapacityUnbounded без ограничения
	CapacityUnbounded CapacityKind = "unbounded"
)

// CapacityPolicy tagged variant описывающий лимит приёмов на день
// Явный вариант Unbounded вместо числового сентинеля (Infinity),
// чтобы не было арифметических сюрпризов при сравнении остатков
type CapacityPolicy struct {
	Kind          CapacityKind
	Limit         int              // имеет смысл только для WholeDay и PerProfessional
	Professionals []ProfessionalID // имеет смысл только для PerProfessional
}

// WholeDay создает политику с общим лимитом на день
func WholeDay(limit int) CapacityPolicy {
	return CapacityPolicy{Kind: CapacityWholeDay, Limit: limit}
}

// PerProfessional создает политику с лимитом на каждого профессионала
func PerProfessional(limit int, professionals []ProfessionalID) CapacityPolicy {
	return CapacityPolicy{Kind: CapacityPerProfessional, Limit: limit, Professionals: professionals}
}

// Unbounded создает политику без ограничений
func Unbounded() CapacityPolicy {
	return CapacityPolicy{Kind: CapacityUnbounded}
}

// IsWholeDay returns true if the policy is a shared whole-day quota
func (p CapacityPolicy) IsWholeDay() bool {
	return p.Kind == CapacityWholeDay
}

// IsPerProfessional returns true if the policy is a per-professional quota
func (p CapacityPolicy) IsPerProfessional() bool {
	return p.Kind == CapacityPerProfessional
}

// IsUnbounded returns true if the policy has no limit
func (p CapacityPolicy) IsUnbounded() bool {
	return p.Kind == CapacityUnbounded
}

// DayPolicy derived attributes of a calendar date: whether booking is
// allowed, the clinic theme running that day and the capacity policy.
// Recomputed on demand, never persisted.
type DayPolicy struct {
	Blocked  bool
	Label    *string // клиническая тема дня, nil если нет
	Capacity CapacityPolicy
}

// RequiresProfessional returns true if bookings on this day must name a professional
func (p DayPolicy) RequiresProfessional() bool {
	return !p.Blocked && p.Capacity.IsPerProfessional()
}
