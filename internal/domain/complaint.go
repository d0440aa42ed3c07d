package domain

import "time"

// ComplaintStatus enumerates lifecycle states for complaints.
type ComplaintStatus string

const (
	ComplaintStatusNew        ComplaintStatus = "new"
	ComplaintStatusInProgress ComplaintStatus = "in_progress"
	ComplaintStatusWaiting    ComplaintStatus = "waiting"
	ComplaintStatusRejected   ComplaintStatus = "rejected"
	ComplaintStatusCompleted  ComplaintStatus = "completed"
)

// IsValid reports membership in the closed status set.
func (s ComplaintStatus) IsValid() bool {
	switch s {
	case ComplaintStatusNew, ComplaintStatusInProgress, ComplaintStatusWaiting,
		ComplaintStatusRejected, ComplaintStatusCompleted:
		return true
	}
	return false
}

// ComplaintCategory enumerates subject-matter domains assigned by the classifier.
type ComplaintCategory string

const (
	CategoryHousing    ComplaintCategory = "housing"
	CategoryTransport  ComplaintCategory = "transport"
	CategoryMedicine   ComplaintCategory = "medicine"
	CategoryEducation  ComplaintCategory = "education"
	CategoryEcology    ComplaintCategory = "ecology"
	CategoryPolice     ComplaintCategory = "police"
	CategorySocial     ComplaintCategory = "social"
	CategoryCorruption ComplaintCategory = "corruption"
	CategoryGovernment ComplaintCategory = "government"
	CategoryOther      ComplaintCategory = "other"

	// CategoryUncategorized is the persisted fallback when classification
	// is unavailable or produces text outside the closed set. It is never
	// a classifier target.
	CategoryUncategorized ComplaintCategory = "uncategorized"
)

// ClassifierCategories lists labels the classifier is allowed to return.
var ClassifierCategories = []ComplaintCategory{
	CategoryHousing, CategoryTransport, CategoryMedicine, CategoryEducation,
	CategoryEcology, CategoryPolice, CategorySocial, CategoryCorruption,
	CategoryGovernment, CategoryOther,
}

// IsValid reports whether the category may be persisted.
func (c ComplaintCategory) IsValid() bool {
	if c == CategoryUncategorized {
		return true
	}
	for _, known := range ClassifierCategories {
		if c == known {
			return true
		}
	}
	return false
}

// DefaultSeriousnessScore is stored when the rater cannot produce a score.
const DefaultSeriousnessScore = 5.0

// Complaint is the aggregate for citizen complaints.
type Complaint struct {
	ID               int64
	Complaint        string
	Address          *string
	Category         ComplaintCategory
	Status           ComplaintStatus
	SeriousnessScore float64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
