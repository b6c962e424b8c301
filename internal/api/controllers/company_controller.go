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

type CompanyController struct {
	companyService services.CompanyServiceInterface
}

func NewCompanyController(companyService services.CompanyServiceInterface) *CompanyController {
	return &CompanyController{
		companyService: companyService,
	}
}

// Register godoc
// @Summary Register a new company
// @Description Multipart form: company fields plus the verification certificate file
// @Tags Companies
// @Accept multipart/form-data
// @Produce json
// @Param certificate formData file true "Verification certificate"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /company/register [post]
func (co *CompanyController) Register(c *gin.Context) {
	var req request_models.RegisterCompanyRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	certificate, certType, err := readUpload(c, "certificate")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Certificate file missing")
		return
	}

	if err := co.companyService.Register(c.Request.Context(), req, certificate, certType); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "OTP sent to email")
}

// VerifyOtp godoc
// @Summary Verify registration OTP
// @Tags Companies
// @Accept json
// @Produce json
// @Param request body request_models.OtpVerificationRequest true "OTP payload"
// @Success 200 {object} utils.APIResponse
// @Router /company/verify-otp [post]
func (co *CompanyController) VerifyOtp(c *gin.Context) {
	var req request_models.OtpVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := co.companyService.VerifyOtp(c.Request.Context(), req.Email, req.Otp); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Account created successfully")
}

// ResendOtp godoc
// @Summary Resend the verification OTP
// @Tags Companies
// @Accept json
// @Produce json
// @Param request body request_models.ResendOtpRequest true "Email payload"
// @Success 200 {object} utils.APIResponse
// @Router /company/resend-otp [post]
func (co *CompanyController) ResendOtp(c *gin.Context) {
	var req request_models.ResendOtpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := co.companyService.ResendOtp(c.Request.Context(), req.Email); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "OTP sent to email")
}

// Login godoc
// @Summary Login as a company
// @Tags Companies
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /company/login [post]
func (co *CompanyController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := co.companyService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	middleware.SetAuthCookies(c, result.AccessToken, result.RefreshToken)
	utils.RespondSuccess(c, result.Data, "Login successful")
}

// Logout godoc
// @Summary Logout
// @Tags Companies
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /company/logout [post]
func (co *CompanyController) Logout(c *gin.Context) {
	middleware.ClearAuthCookies(c)
	utils.RespondSuccess(c, nil, "Logged out")
}

// ForgotPasswordEmail godoc
// @Summary Request a password-reset OTP
// @Tags Companies
// @Accept json
// @Produce json
// @Param request body request_models.ForgotPasswordEmailRequest true "Email payload"
// @Success 200 {object} utils.APIResponse
// @Router /company/forgot-password [post]
func (co *CompanyController) ForgotPasswordEmail(c *gin.Context) {
	var req request_models.ForgotPasswordEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := co.companyService.ForgotPasswordEmail(c.Request.Context(), req.Email); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "OTP sent to email")
}

// ForgotPasswordOtp godoc
// @Summary Verify a password-reset OTP
// @Tags Companies
// @Accept json
// @Produce json
// @Param request body request_models.OtpVerificationRequest true "OTP payload"
// @Success 200 {object} utils.APIResponse
// @Router /company/forgot-password/verify-otp [post]
func (co *CompanyController) ForgotPasswordOtp(c *gin.Context) {
	var req request_models.OtpVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := co.companyService.ForgotPasswordOtp(c.Request.Context(), req.Email, req.Otp); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Otp verified successfully")
}

// ForgotPasswordReset godoc
// @Summary Reset the password after OTP verification
// @Tags Companies
// @Accept json
// @Produce json
// @Param request body request_models.ForgotPasswordResetRequest true "Reset payload"
// @Success 200 {object} utils.APIResponse
// @Router /company/forgot-password/reset [post]
func (co *CompanyController) ForgotPasswordReset(c *gin.Context) {
	var req request_models.ForgotPasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := co.companyService.ForgotPasswordReset(c.Request.Context(), req.Email, req.NewPassword); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Password has been reset successfully")
}

// GetProfile godoc
// @Summary Get the authenticated company's profile
// @Tags Companies
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /company/profile [get]
func (co *CompanyController) GetProfile(c *gin.Context) {
	companyID, err := currentID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid session")
		return
	}

	profile, err := co.companyService.GetProfile(c.Request.Context(), companyID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profile, "Profile fetched successfully")
}

// EditProfile godoc
// @Summary Update the company's profile fields
// @Tags Companies
// @Accept json
// @Produce json
// @Param request body request_models.EditCompanyRequest true "Profile payload"
// @Success 200 {object} utils.APIResponse
// @Router /company/profile [put]
func (co *CompanyController) EditProfile(c *gin.Context) {
	companyID, err := currentID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid session")
		return
	}

	var req request_models.EditCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := co.companyService.EditProfile(c.Request.Context(), companyID, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Profile updated successfully")
}

// UpdateProfileImage godoc
// @Summary Upload a new company logo
// @Tags Companies
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Logo image"
// @Success 200 {object} utils.APIResponse
// @Router /company/profile/image [post]
func (co *CompanyController) UpdateProfileImage(c *gin.Context) {
	companyID, err := currentID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid session")
		return
	}

	data, contentType, err := readUpload(c, "image")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Image file missing")
		return
	}

	if err := co.companyService.UpdateProfileImage(c.Request.Context(), companyID, data, contentType); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Profile image updated successfully")
}

// UpsertJobPost godoc
// @Summary Create or update a job post
// @Description A payload carrying an id updates that post; without one a new post is created
// @Tags Companies
// @Accept json
// @Produce json
// @Param request body request_models.JobPostRequest true "Job post payload"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /company/jobs [post]
func (co *CompanyController) UpsertJobPost(c *gin.Context) {
	companyID, err := currentID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid session")
		return
	}

	var req request_models.JobPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := co.companyService.UpsertJobPost(c.Request.Context(), companyID, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Job post saved successfully")
}

// JobPosts godoc
// @Summary List the company's job posts
// @Tags Companies
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /company/jobs [get]
func (co *CompanyController) JobPosts(c *gin.Context) {
	companyID, err := currentID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid session")
		return
	}

	posts, err := co.companyService.JobPosts(c.Request.Context(), companyID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, posts, "Job posts fetched successfully")
}

// GetJobPost godoc
// @Summary Get one job post
// @Tags Companies
// @Produce json
// @Param id path string true "Job post id"
// @Success 200 {object} utils.APIResponse
// @Router /company/jobs/{id} [get]
func (co *CompanyController) GetJobPost(c *gin.Context) {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid job id")
		return
	}

	post, err := co.companyService.GetJobPost(c.Request.Context(), jobID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, post, "Job post fetched successfully")
}

// DeleteJobPost godoc
// @Summary Delete a job post
// @Tags Companies
// @Produce json
// @Param id path string true "Job post id"
// @Success 200 {object} utils.APIResponse
// @Router /company/jobs/{id} [delete]
func (co *CompanyController) DeleteJobPost(c *gin.Context) {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid job id")
		return
	}

	if err := co.companyService.DeleteJobPost(c.Request.Context(), jobID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Job post deleted successfully")
}

// Applications godoc
// @Summary List applications across all of the company's posts
// @Tags Companies
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /company/applications [get]
func (co *CompanyController) Applications(c *gin.Context) {
	companyID, err := currentID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid session")
		return
	}

	applications, err := co.companyService.ApplicationsByCompany(c.Request.Context(), companyID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, applications, "Applications fetched successfully")
}

// ApplicationsByJob godoc
// @Summary List applications for one job post
// @Tags Companies
// @Produce json
// @Param id path string true "Job post id"
// @Success 200 {object} utils.APIResponse
// @Router /company/jobs/{id}/applications [get]
func (co *CompanyController) ApplicationsByJob(c *gin.Context) {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid job id")
		return
	}

	applications, err := co.companyService.ApplicationsByJob(c.Request.Context(), jobID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, applications, "Applications fetched successfully")
}

// ApplicationDetail godoc
// @Summary Get one application with a short-lived resume link
// @Tags Companies
// @Produce json
// @Param id path string true "Application id"
// @Success 200 {object} utils.APIResponse
// @Router /company/applications/{id} [get]
func (co *CompanyController) ApplicationDetail(c *gin.Context) {
	applicationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid application id")
		return
	}

	detail, err := co.companyService.ApplicationDetail(c.Request.Context(), applicationID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, detail, "Application fetched successfully")
}

// UpdateApplicationStatus godoc
// @Summary Change an application's status
// @Description Notifies the applicant in real time; mails them too when their plan includes it
// @Tags Companies
// @Accept json
// @Produce json
// @Param id path string true "Application id"
// @Param request body request_models.ApplicationStatusRequest true "Status payload"
// @Success 200 {object} utils.APIResponse
// @Router /company/applications/{id}/status [put]
func (co *CompanyController) UpdateApplicationStatus(c *gin.Context) {
	applicationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid application id")
		return
	}

	var req request_models.ApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := co.companyService.UpdateApplicationStatus(c.Request.Context(), applicationID, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Application status updated successfully")
}

// SetInterviewDetails godoc
// @Summary Schedule or update an interview for an application
// @Tags Companies
// @Accept json
// @Produce json
// @Param id path string true "Application id"
// @Param request body request_models.InterviewRequest true "Interview payload"
// @Success 200 {object} utils.APIResponse
// @Router /company/applications/{id}/interview [put]
func (co *CompanyController) SetInterviewDetails(c *gin.Context) {
	applicationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid application id")
		return
	}

	var req request_models.InterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := co.companyService.SetInterviewDetails(c.Request.Context(), applicationID, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Interview details saved successfully")
}

// SearchUsers godoc
// @Summary Search job seekers by name
// @Tags Companies
// @Produce json
// @Param q query string true "Name fragment"
// @Success 200 {object} utils.APIResponse
// @Router /company/users/search [get]
func (co *CompanyController) SearchUsers(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		utils.RespondError(c, http.StatusBadRequest, "Search query missing")
		return
	}

	users, err := co.companyService.SearchUsers(c.Request.Context(), query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, users, "Users fetched successfully")
}
