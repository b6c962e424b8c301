package db_models

import "gorm.io/datatypes"

// User is a job seeker identity. Rows are soft-deleted only; moderation
// happens through IsBlocked.
type User struct {
	BaseModel
	FirstName    string
	LastName     string
	Email        string `gorm:"uniqueIndex"`
	Phone        string
	PasswordHash string
	Role         string `gorm:"default:user"`
	IsBlocked    bool   `gorm:"default:false"`

	Bio               string
	Location          string
	PreferredLocation string
	SalaryExpectation int64
	RemoteWork        bool
	WillingToRelocate bool

	// Object storage keys, not URLs.
	ResumeKey       string
	ProfileImageKey string

	Skills         datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	Experience     datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	Education      datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	Certifications datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
}
