package utils

import "errors"

var (
	ErrEmailNotFound      = errors.New("email not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrAccountBlocked     = errors.New("account is blocked by admin")

	ErrOtpExpired         = errors.New("OTP expired or doesn't exist")
	ErrIncorrectOtp       = errors.New("incorrect OTP")
	ErrStagedDataGone     = errors.New("registration data not found")
	ErrOtpSendFailed      = errors.New("failed to send OTP")
	ErrCompanyNotVerified = errors.New("company is not verified by admin")

	ErrUserNotFound         = errors.New("user not found")
	ErrCompanyNotFound      = errors.New("company not found")
	ErrJobPostNotFound      = errors.New("job post not found")
	ErrApplicationNotFound  = errors.New("job application not found")
	ErrPlanNotFound         = errors.New("subscription plan not found")
	ErrSubscriptionNotFound = errors.New("no active subscription found")
	ErrChatNotFound         = errors.New("chat not found")

	ErrInvalidSignature = errors.New("invalid payment signature")
	ErrWriteFailed      = errors.New("failed to save record")
	ErrUploadFailed     = errors.New("failed to upload file")
	ErrDatabaseError    = errors.New("database error")
)
