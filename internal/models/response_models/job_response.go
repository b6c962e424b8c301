package response_models

import "worknest/internal/models/db_models"

// JobBoardResponse pairs the open posts with the companies behind them so
// the client renders the board from a single call.
type JobBoardResponse struct {
	JobPosts  []db_models.JobPost `json:"job_posts"`
	Companies []db_models.Company `json:"companies"`
}

type UserProfileResponse struct {
	Profile         *db_models.User `json:"profile"`
	ProfileImageURL string          `json:"profile_image_url,omitempty"`
	ResumeURL       string          `json:"resume_url,omitempty"`
}

type CompanyProfileResponse struct {
	Profile         *db_models.Company `json:"profile"`
	ProfileImageURL string             `json:"profile_image_url,omitempty"`
}

type ApplicationDetailResponse struct {
	Application *db_models.JobApplication `json:"application"`
	ResumeURL   string                    `json:"resume_url,omitempty"`
}
