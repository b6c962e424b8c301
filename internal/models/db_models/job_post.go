package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type JobStatus string

const (
	JobStatusOpen   JobStatus = "open"
	JobStatusClosed JobStatus = "closed"
	JobStatusPaused JobStatus = "paused"
)

type JobPost struct {
	BaseModel
	CompanyID   uuid.UUID `gorm:"index"`
	CompanyName string

	Title          string
	Description    string
	Location       string
	EmploymentType string // full-time, part-time, contract, internship
	SalaryMin      int64
	SalaryMax      int64

	Skills           datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	Responsibilities datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	Perks            datatypes.JSON `gorm:"type:jsonb;default:'[]'"`

	Status JobStatus `gorm:"type:text;default:open;index"`

	Company      Company          `gorm:"foreignKey:CompanyID"`
	Applications []JobApplication `gorm:"foreignKey:JobID"`
}
