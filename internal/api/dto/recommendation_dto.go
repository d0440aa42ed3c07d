package dto

// RecommendationRequest payload.
type RecommendationRequest struct {
	Complaint string `json:"complaint"`
}
