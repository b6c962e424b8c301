package db_models

import "github.com/google/uuid"

type ApplicationStatus string

const (
	ApplicationPending     ApplicationStatus = "pending"
	ApplicationViewed      ApplicationStatus = "viewed"
	ApplicationShortlisted ApplicationStatus = "shortlisted"
	ApplicationRejected    ApplicationStatus = "rejected"
	ApplicationHired       ApplicationStatus = "hired"
)

type InterviewStatus string

const (
	InterviewScheduled InterviewStatus = "scheduled"
	InterviewOver      InterviewStatus = "over"
	InterviewCanceled  InterviewStatus = "canceled"
	InterviewPostponed InterviewStatus = "postponed"
)

type JobApplication struct {
	BaseModel
	JobID     uuid.UUID `gorm:"index"`
	UserID    uuid.UUID `gorm:"index"`
	CompanyID uuid.UUID `gorm:"index"`

	// Denormalized for listing without joins, as the original schema does.
	CompanyName string
	JobTitle    string
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	Location    string

	ResumeKey   string
	CoverLetter string

	Status        ApplicationStatus `gorm:"type:text;default:pending;index"`
	StatusMessage string

	InterviewStatus   InterviewStatus
	InterviewAt       *int64
	InterviewMessage  string

	Job     JobPost `gorm:"foreignKey:JobID"`
	User    User    `gorm:"foreignKey:UserID"`
	Company Company `gorm:"foreignKey:CompanyID"`
}
