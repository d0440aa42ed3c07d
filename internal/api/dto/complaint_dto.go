package dto

import (
	"encoding/json"
	"time"

	"github.com/spec-kit/complaint-service/internal/domain"
)

// NullableString distinguishes an absent JSON field from an explicit null:
// Set is true whenever the field was present, and Value is nil for null.
type NullableString struct {
	Set   bool
	Value *string
}

func (n *NullableString) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}
	return json.Unmarshal(data, &n.Value)
}

// SubmitComplaintRequest payload for the intake pipeline.
type SubmitComplaintRequest struct {
	Complaint string  `json:"complaint"`
	Address   *string `json:"address"`
}

// CreateComplaintRequest payload for the raw create endpoint.
type CreateComplaintRequest struct {
	Complaint        string                   `json:"complaint"`
	Address          *string                  `json:"address"`
	Category         domain.ComplaintCategory `json:"category"`
	Status           domain.ComplaintStatus   `json:"status"`
	SeriousnessScore *float64                 `json:"seriousnessScore"`
}

// UpdateComplaintRequest payload for partial updates; absent fields stay
// untouched. An explicit "address": null clears the address.
type UpdateComplaintRequest struct {
	Complaint        *string                   `json:"complaint"`
	Address          NullableString            `json:"address"`
	Category         *domain.ComplaintCategory `json:"category"`
	Status           *domain.ComplaintStatus   `json:"status"`
	SeriousnessScore *float64                  `json:"seriousnessScore"`
}

// ComplaintResponse response shape.
type ComplaintResponse struct {
	ID               int64                    `json:"id"`
	Complaint        string                   `json:"complaint"`
	Address          *string                  `json:"address"`
	Category         domain.ComplaintCategory `json:"category"`
	Status           domain.ComplaintStatus   `json:"status"`
	SeriousnessScore float64                  `json:"seriousnessScore"`
	CreatedAt        time.Time                `json:"createdAt"`
	UpdatedAt        time.Time                `json:"updatedAt"`
}

// NewComplaintResponse maps a domain record.
func NewComplaintResponse(c *domain.Complaint) ComplaintResponse {
	return ComplaintResponse{
		ID:               c.ID,
		Complaint:        c.Complaint,
		Address:          c.Address,
		Category:         c.Category,
		Status:           c.Status,
		SeriousnessScore: c.SeriousnessScore,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}
