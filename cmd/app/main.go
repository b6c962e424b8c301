package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"worknest/cmd/fx/adminfx"
	"worknest/cmd/fx/chatfx"
	"worknest/cmd/fx/companyfx"
	"worknest/cmd/fx/controllersfx"
	"worknest/cmd/fx/dbfx"
	"worknest/cmd/fx/mailfx"
	"worknest/cmd/fx/notifyfx"
	"worknest/cmd/fx/redisfx"
	"worknest/cmd/fx/storagefx"
	"worknest/cmd/fx/subscriptionfx"
	"worknest/cmd/fx/userfx"
	"worknest/internal/api/controllers"
	"worknest/internal/models/db_models"
	"worknest/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, relying on environment")
	}

	app := fx.New(
		dbfx.Module,
		redisfx.Module,
		storagefx.Module,
		mailfx.Module,
		notifyfx.Module,
		userfx.Module,
		companyfx.Module,
		adminfx.Module,
		subscriptionfx.Module,
		chatfx.Module,
		controllersfx.Module,

		fx.Invoke(StartServer),
		fx.Provide(ProvideRouter),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	userController *controllers.UserController,
	companyController *controllers.CompanyController,
	adminController *controllers.AdminController,
	subscriptionController *controllers.SubscriptionController,
	notificationController *controllers.NotificationController,
	chatController *controllers.ChatController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, userController, companyController, adminController, subscriptionController, notificationController, chatController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	userController *controllers.UserController,
	companyController *controllers.CompanyController,
	adminController *controllers.AdminController,
	subscriptionController *controllers.SubscriptionController,
	notificationController *controllers.NotificationController,
	chatController *controllers.ChatController) {

	user := r.Group("/user")
	user.POST("/register", userController.Register)
	user.POST("/verify-otp", userController.VerifyOtp)
	user.POST("/resend-otp", userController.ResendOtp)
	user.POST("/login", userController.Login)
	user.POST("/logout", userController.Logout)
	user.POST("/forgot-password", userController.ForgotPasswordEmail)
	user.POST("/forgot-password/verify-otp", userController.ForgotPasswordOtp)
	user.POST("/forgot-password/reset", userController.ForgotPasswordReset)

	userAuth := user.Group("", middleware.Authenticate(db_models.RoleUser))
	userAuth.GET("/profile", userController.GetProfile)
	userAuth.PUT("/profile", userController.EditProfile)
	userAuth.POST("/profile/image", userController.UpdateProfileImage)
	userAuth.POST("/profile/resume", userController.UpdateResume)
	userAuth.GET("/jobs", userController.JobBoard)
	userAuth.POST("/jobs/apply", userController.Apply)
	userAuth.GET("/applications", userController.MyApplications)
	userAuth.GET("/plans", subscriptionController.ListPlans)
	userAuth.POST("/subscription/order", subscriptionController.CreateOrder)
	userAuth.POST("/subscription/verify", subscriptionController.VerifyPayment)
	userAuth.GET("/subscription", subscriptionController.Current)
	userAuth.GET("/subscription/history", subscriptionController.History)
	userAuth.GET("/notifications/stream", notificationController.Stream)
	userAuth.POST("/chats", chatController.OpenUserChat)
	userAuth.GET("/chats", chatController.UserChats)
	userAuth.GET("/chats/:id/messages", chatController.Messages)
	userAuth.POST("/chats/:id/messages", chatController.SendMessage)

	company := r.Group("/company")
	company.POST("/register", companyController.Register)
	company.POST("/verify-otp", companyController.VerifyOtp)
	company.POST("/resend-otp", companyController.ResendOtp)
	company.POST("/login", companyController.Login)
	company.POST("/logout", companyController.Logout)
	company.POST("/forgot-password", companyController.ForgotPasswordEmail)
	company.POST("/forgot-password/verify-otp", companyController.ForgotPasswordOtp)
	company.POST("/forgot-password/reset", companyController.ForgotPasswordReset)

	companyAuth := company.Group("", middleware.Authenticate(db_models.RoleCompany))
	companyAuth.GET("/profile", companyController.GetProfile)
	companyAuth.PUT("/profile", companyController.EditProfile)
	companyAuth.POST("/profile/image", companyController.UpdateProfileImage)
	companyAuth.POST("/jobs", companyController.UpsertJobPost)
	companyAuth.GET("/jobs", companyController.JobPosts)
	companyAuth.GET("/jobs/:id", companyController.GetJobPost)
	companyAuth.DELETE("/jobs/:id", companyController.DeleteJobPost)
	companyAuth.GET("/jobs/:id/applications", companyController.ApplicationsByJob)
	companyAuth.GET("/applications", companyController.Applications)
	companyAuth.GET("/applications/:id", companyController.ApplicationDetail)
	companyAuth.PUT("/applications/:id/status", companyController.UpdateApplicationStatus)
	companyAuth.PUT("/applications/:id/interview", companyController.SetInterviewDetails)
	companyAuth.GET("/users/search", companyController.SearchUsers)
	companyAuth.GET("/notifications/stream", notificationController.Stream)
	companyAuth.POST("/chats", chatController.OpenCompanyChat)
	companyAuth.GET("/chats", chatController.CompanyChats)
	companyAuth.GET("/chats/:id/messages", chatController.Messages)
	companyAuth.POST("/chats/:id/messages", chatController.SendMessage)

	admin := r.Group("/admin")
	admin.POST("/login", adminController.Login)
	admin.POST("/logout", adminController.Logout)

	adminAuth := admin.Group("", middleware.Authenticate(db_models.RoleAdmin))
	adminAuth.GET("/users", adminController.ListUsers)
	adminAuth.GET("/companies", adminController.ListCompanies)
	adminAuth.PUT("/users/:id/block", adminController.BlockUser)
	adminAuth.PUT("/companies/:id/block", adminController.BlockCompany)
	adminAuth.PUT("/companies/:id/verify", adminController.VerifyCompany)
	adminAuth.POST("/plans", adminController.CreatePlan)
	adminAuth.GET("/plans", adminController.ListPlans)
	adminAuth.PUT("/plans/:id/active", adminController.SetPlanActive)
	adminAuth.GET("/subscriptions", adminController.ListSubscriptions)
}
