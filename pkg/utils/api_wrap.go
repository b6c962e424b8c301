package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError translates service sentinel errors into HTTP responses.
// Anything unrecognized is a 500 with the detail kept out of the body.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrEmailNotFound),
		errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrCompanyNotFound),
		errors.Is(err, ErrJobPostNotFound),
		errors.Is(err, ErrApplicationNotFound),
		errors.Is(err, ErrPlanNotFound),
		errors.Is(err, ErrSubscriptionNotFound),
		errors.Is(err, ErrChatNotFound),
		errors.Is(err, ErrStagedDataGone):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, ErrInvalidPassword):
		RespondError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrAccountBlocked),
		errors.Is(err, ErrCompanyNotVerified):
		RespondError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, ErrOtpExpired),
		errors.Is(err, ErrIncorrectOtp),
		errors.Is(err, ErrOtpSendFailed),
		errors.Is(err, ErrInvalidSignature),
		errors.Is(err, ErrWriteFailed),
		errors.Is(err, ErrUploadFailed):
		RespondError(c, http.StatusBadRequest, err.Error())
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
