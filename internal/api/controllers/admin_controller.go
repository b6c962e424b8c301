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

type AdminController struct {
	adminService services.AdminServiceInterface
}

func NewAdminController(adminService services.AdminServiceInterface) *AdminController {
	return &AdminController{
		adminService: adminService,
	}
}

// Login godoc
// @Summary Login as an admin
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /admin/login [post]
func (a *AdminController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := a.adminService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	middleware.SetAuthCookies(c, result.AccessToken, result.RefreshToken)
	utils.RespondSuccess(c, result.Data, "Login successful")
}

// Logout godoc
// @Summary Logout
// @Tags Admin
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /admin/logout [post]
func (a *AdminController) Logout(c *gin.Context) {
	middleware.ClearAuthCookies(c)
	utils.RespondSuccess(c, nil, "Logged out")
}

// ListUsers godoc
// @Summary List all job seekers
// @Tags Admin
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /admin/users [get]
func (a *AdminController) ListUsers(c *gin.Context) {
	users, err := a.adminService.ListUsers(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, users, "Users fetched successfully")
}

// ListCompanies godoc
// @Summary List all companies
// @Tags Admin
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /admin/companies [get]
func (a *AdminController) ListCompanies(c *gin.Context) {
	companies, err := a.adminService.ListCompanies(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, companies, "Companies fetched successfully")
}

// BlockUser godoc
// @Summary Block or unblock a job seeker
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "User id"
// @Param request body request_models.BlockRequest true "Block payload"
// @Success 200 {object} utils.APIResponse
// @Router /admin/users/{id}/block [put]
func (a *AdminController) BlockUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	var req request_models.BlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.adminService.SetUserBlocked(c.Request.Context(), userID, req.IsBlocked); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "User block state updated")
}

// BlockCompany godoc
// @Summary Block or unblock a company
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Company id"
// @Param request body request_models.BlockRequest true "Block payload"
// @Success 200 {object} utils.APIResponse
// @Router /admin/companies/{id}/block [put]
func (a *AdminController) BlockCompany(c *gin.Context) {
	companyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid company id")
		return
	}

	var req request_models.BlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.adminService.SetCompanyBlocked(c.Request.Context(), companyID, req.IsBlocked); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Company block state updated")
}

// VerifyCompany godoc
// @Summary Accept or reject a company's verification certificate
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Company id"
// @Param request body request_models.CompanyVerificationRequest true "Verification payload"
// @Success 200 {object} utils.APIResponse
// @Router /admin/companies/{id}/verify [put]
func (a *AdminController) VerifyCompany(c *gin.Context) {
	companyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid company id")
		return
	}

	var req request_models.CompanyVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.adminService.SetCompanyVerification(c.Request.Context(), companyID, req.Status); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Company verification updated")
}

// CreatePlan godoc
// @Summary Create a subscription plan
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body request_models.PlanRequest true "Plan payload"
// @Success 200 {object} utils.APIResponse
// @Router /admin/plans [post]
func (a *AdminController) CreatePlan(c *gin.Context) {
	var req request_models.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	plan, err := a.adminService.CreatePlan(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Plan created successfully")
}

// ListPlans godoc
// @Summary List all plans, active and retired
// @Tags Admin
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /admin/plans [get]
func (a *AdminController) ListPlans(c *gin.Context) {
	plans, err := a.adminService.ListPlans(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plans, "Plans fetched successfully")
}

// SetPlanActive godoc
// @Summary Activate or retire a plan
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Plan id"
// @Success 200 {object} utils.APIResponse
// @Router /admin/plans/{id}/active [put]
func (a *AdminController) SetPlanActive(c *gin.Context) {
	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid plan id")
		return
	}

	var req struct {
		IsActive bool `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.adminService.SetPlanActive(c.Request.Context(), planID, req.IsActive); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Plan updated successfully")
}

// ListSubscriptions godoc
// @Summary List every subscription on the platform
// @Tags Admin
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /admin/subscriptions [get]
func (a *AdminController) ListSubscriptions(c *gin.Context) {
	subs, err := a.adminService.ListSubscriptions(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, subs, "Subscriptions fetched successfully")
}
