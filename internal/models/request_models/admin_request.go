package request_models

type BlockRequest struct {
	IsBlocked bool `json:"is_blocked"`
}

type CompanyVerificationRequest struct {
	Status string `json:"status" binding:"required,oneof=accepted rejected"`
}

type PlanRequest struct {
	Name         string   `json:"name" binding:"required"`
	PriceMinor   int64    `json:"price_minor" binding:"required,gt=0"`
	Currency     string   `json:"currency" binding:"omitempty,len=3"`
	DurationDays int      `json:"duration_days" binding:"required,gt=0"`
	Features     []string `json:"features"`
}
