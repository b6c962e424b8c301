package db_models

// Admin accounts are seeded out of band; there is no admin registration flow.
type Admin struct {
	BaseModel
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
	Role         string `gorm:"default:admin"`
}
