package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"worknest/internal/models/request_models"
	"worknest/internal/services"
	"worknest/pkg/middleware"
	"worknest/pkg/utils"
)

type UserController struct {
	userService services.UserServiceInterface
}

func NewUserController(userService services.UserServiceInterface) *UserController {
	return &UserController{
		userService: userService,
	}
}

// Register godoc
// @Summary Register a new job seeker
// @Description Stage registration data and send a verification OTP to the email
// @Tags Users
// @Accept json
// @Produce json
// @Param request body request_models.RegisterUserRequest true "Registration payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /user/register [post]
func (u *UserController) Register(c *gin.Context) {
	var req request_models.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := u.userService.Register(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "OTP sent to email")
}

// VerifyOtp godoc
// @Summary Verify registration OTP
// @Description Confirm the emailed OTP and create the account from staged data
// @Tags Users
// @Accept json
// @Produce json
// @Param request body request_models.OtpVerificationRequest true "OTP payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /user/verify-otp [post]
func (u *UserController) VerifyOtp(c *gin.Context) {
	var req request_models.OtpVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := u.userService.VerifyOtp(c.Request.Context(), req.Email, req.Otp); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Account created successfully")
}

// ResendOtp godoc
// @Summary Resend the verification OTP
// @Tags Users
// @Accept json
// @Produce json
// @Param request body request_models.ResendOtpRequest true "Email payload"
// @Success 200 {object} utils.APIResponse
// @Router /user/resend-otp [post]
func (u *UserController) ResendOtp(c *gin.Context) {
	var req request_models.ResendOtpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := u.userService.ResendOtp(c.Request.Context(), req.Email); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "OTP sent to email")
}

// Login godoc
// @Summary Login as a job seeker
// @Description Authenticate and set the token cookies
// @Tags Users
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /user/login [post]
func (u *UserController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := u.userService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	middleware.SetAuthCookies(c, result.AccessToken, result.RefreshToken)
	utils.RespondSuccess(c, result.Data, "Login successful")
}

// Logout godoc
// @Summary Logout
// @Description Clear the token cookies
// @Tags Users
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /user/logout [post]
func (u *UserController) Logout(c *gin.Context) {
	middleware.ClearAuthCookies(c)
	utils.RespondSuccess(c, nil, "Logged out")
}

// ForgotPasswordEmail godoc
// @Summary Request a password-reset OTP
// @Tags Users
// @Accept json
// @Produce json
// @Param request body request_models.ForgotPasswordEmailRequest true "Email payload"
// @Success 200 {object} utils.APIResponse
// @Router /user/forgot-password [post]
func (u *UserController) ForgotPasswordEmail(c *gin.Context) {
	var req request_models.ForgotPasswordEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := u.userService.ForgotPasswordEmail(c.Request.Context(), req.Email); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "OTP sent to email")
}

// ForgotPasswordOtp godoc
// @Summary Verify a password-reset OTP
// @Tags Users
// @Accept json
// @Produce json
// @Param request body request_models.OtpVerificationRequest true "OTP payload"
// @Success 200 {object} utils.APIResponse
// @Router /user/forgot-password/verify-otp [post]
func (u *UserController) ForgotPasswordOtp(c *gin.Context) {
	var req request_models.OtpVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := u.userService.ForgotPasswordOtp(c.Request.Context(), req.Email, req.Otp); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Otp verified successfully")
}

// ForgotPasswordReset godoc
// @Summary Reset the password after OTP verification
// @Tags Users
// @Accept json
// @Produce json
// @Param request body request_models.ForgotPasswordResetRequest true "Reset payload"
// @Success 200 {object} utils.APIResponse
// @Router /user/forgot-password/reset [post]
func (u *UserController) ForgotPasswordReset(c *gin.Context) {
	var req request_models.ForgotPasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := u.userService.ForgotPasswordReset(c.Request.Context(), req.Email, req.NewPassword); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Password has been reset successfully")
}

// GetProfile godoc
// @Summary Get the authenticated seeker's profile
// @Tags Users
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /user/profile [get]
func (u *UserController) GetProfile(c *gin.Context) {
	userID, err := currentID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid session")
		return
	}

	profile, err := u.userService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profile, "Profile fetched successfully")
}

// EditProfile godoc
// @Summary Update the seeker's profile fields
// @Tags Users
// @Accept json
// @Produce json
// @Param request body request_models.EditUserRequest true "Profile payload"
// @Success 200 {object} utils.APIResponse
// @Router /user/profile [put]
func (u *UserController) EditProfile(c *gin.Context) {
	userID, err := currentID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid session")
		return
	}

	var req request_models.EditUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := u.userService.EditProfile(c.Request.Context(), userID, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Profile updated successfully")
}

// UpdateProfileImage godoc
// @Summary Upload a new profile image
// @Tags Users
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Profile image"
// @Success 200 {object} utils.APIResponse
// @Router /user/profile/image [post]
func (u *UserController) UpdateProfileImage(c *gin.Context) {
	userID, err := currentID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid session")
		return
	}

	data, contentType, err := readUpload(c, "image")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Image file missing")
		return
	}

	if err := u.userService.UpdateProfileImage(c.Request.Context(), userID, data, contentType); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Profile image updated successfully")
}

// UpdateResume godoc
// @Summary Upload a new resume
// @Tags Users
// @Accept multipart/form-data
// @Produce json
// @Param resume formData file true "Resume file"
// @Success 200 {object} utils.APIResponse
// @Router /user/profile/resume [post]
func (u *UserController) UpdateResume(c *gin.Context) {
	userID, err := currentID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid session")
		return
	}

	data, contentType, err := readUpload(c, "resume")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Resume file missing")
		return
	}

	if err := u.userService.UpdateResume(c.Request.Context(), userID, data, contentType); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Resume updated successfully")
}

// JobBoard godoc
// @Summary List open jobs with their companies
// @Tags Users
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /user/jobs [get]
func (u *UserController) JobBoard(c *gin.Context) {
	board, err := u.userService.JobBoard(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, board, "Job board fetched successfully")
}

// Apply godoc
// @Summary Apply to a job post
// @Description Multipart form: job_id, cover_letter and the resume file
// @Tags Users
// @Accept multipart/form-data
// @Produce json
// @Param job_id formData string true "Job post id"
// @Param cover_letter formData string false "Cover letter"
// @Param resume formData file true "Resume file"
// @Success 200 {object} utils.APIResponse
// @Router /user/jobs/apply [post]
func (u *UserController) Apply(c *gin.Context) {
	userID, err := currentID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid session")
		return
	}

	jobID, err := uuid.Parse(c.PostForm("job_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid job id")
		return
	}

	resume, resumeType, err := readUpload(c, "resume")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Resume file missing")
		return
	}

	application, err := u.userService.Apply(c.Request.Context(), userID, jobID, c.PostForm("cover_letter"), resume, resumeType)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, application, "Application submitted successfully")
}

// MyApplications godoc
// @Summary List the seeker's applications
// @Tags Users
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /user/applications [get]
func (u *UserController) MyApplications(c *gin.Context) {
	userID, err := currentID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid session")
		return
	}

	applications, err := u.userService.MyApplications(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, applications, "Applications fetched successfully")
}
