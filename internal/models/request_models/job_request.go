package request_models

import "github.com/google/uuid"

type JobPostRequest struct {
	ID               *uuid.UUID `json:"id"` // set on update, empty on create
	Title            string     `json:"title" binding:"required"`
	Description      string     `json:"description" binding:"required"`
	Location         string     `json:"location" binding:"required"`
	EmploymentType   string     `json:"employment_type" binding:"omitempty,oneof=full-time part-time contract internship"`
	SalaryMin        int64      `json:"salary_min"`
	SalaryMax        int64      `json:"salary_max"`
	Skills           []string   `json:"skills"`
	Responsibilities []string   `json:"responsibilities"`
	Perks            []string   `json:"perks"`
	Status           string     `json:"status" binding:"omitempty,oneof=open closed paused"`
}

type ApplicationStatusRequest struct {
	Status        string `json:"status" binding:"required,oneof=pending viewed shortlisted rejected hired"`
	StatusMessage string `json:"status_message"`
}

type InterviewRequest struct {
	InterviewStatus string `json:"interview_status" binding:"required,oneof=scheduled over canceled postponed"`
	DateTime        int64  `json:"date_time"`
	Message         string `json:"message"`
}
