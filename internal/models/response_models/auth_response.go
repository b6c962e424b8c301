package response_models

import "github.com/google/uuid"

// CleanUserData is the sanitized login payload; hashes and moderation
// internals never leave the service layer.
type CleanUserData struct {
	UserID    uuid.UUID `json:"user_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
}

type CleanCompanyData struct {
	CompanyID  uuid.UUID `json:"company_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	IsVerified string    `json:"is_verified"`
}

type CleanAdminData struct {
	AdminID uuid.UUID `json:"admin_id"`
	Email   string    `json:"email"`
}

type LoginResult[T any] struct {
	Data         T
	AccessToken  string
	RefreshToken string
}
