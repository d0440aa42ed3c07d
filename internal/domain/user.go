package domain

import "time"

// Specialization ties a specialist account to a complaint category.
// "other" is intentionally absent: no specialist handles it.
type Specialization string

const (
	SpecializationMedicine   Specialization = "medicine"
	SpecializationEcology    Specialization = "ecology"
	SpecializationPolice     Specialization = "police"
	SpecializationTransport  Specialization = "transport"
	SpecializationHousing    Specialization = "housing"
	SpecializationSocial     Specialization = "social"
	SpecializationGovernment Specialization = "government"
	SpecializationCorruption Specialization = "corruption"
	SpecializationEducation  Specialization = "education"
)

// IsValid reports membership in the closed specialization set.
func (s Specialization) IsValid() bool {
	switch s {
	case SpecializationMedicine, SpecializationEcology, SpecializationPolice,
		SpecializationTransport, SpecializationHousing, SpecializationSocial,
		SpecializationGovernment, SpecializationCorruption, SpecializationEducation:
		return true
	}
	return false
}

// User is the domain model for specialist accounts.
type User struct {
	ID             int64
	Login          string
	PasswordHash   string
	Specialization Specialization
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
