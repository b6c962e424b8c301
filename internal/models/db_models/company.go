package db_models

import "gorm.io/datatypes"

type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationAccepted VerificationStatus = "accepted"
	VerificationRejected VerificationStatus = "rejected"
)

type Company struct {
	BaseModel
	Name         string
	Email        string `gorm:"uniqueIndex"`
	Phone        string
	PasswordHash string
	Role         string `gorm:"default:company"`
	IsBlocked    bool   `gorm:"default:false"`

	// Job posting is gated on admin acceptance of the uploaded certificate.
	IsVerified     VerificationStatus `gorm:"type:text;default:pending"`
	CertificateKey string

	Description string
	Industry    string
	CompanySize int
	Location    string
	Website     string

	ProfileImageKey string
	SocialLinks     datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	JobPosts []JobPost `gorm:"foreignKey:CompanyID"`
}
