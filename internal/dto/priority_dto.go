package dto

type SubjectPriorityResponse struct {
	Subject       string `json:"subject"`
	PriorityOrder int    `json:"priority_order"`
	IsCompleted   bool   `json:"is_completed"`
	RoundNumber   int    `json:"round_number"`
	Version       int    `json:"version"`
}

type ReorderPrioritiesRequest struct {
	Order []string `json:"order"`
}
