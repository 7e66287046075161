package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/hostelmate/hostelmate-backend/internal/app/controllers"
	"github.com/hostelmate/hostelmate-backend/internal/app/models"
	"github.com/hostelmate/hostelmate-backend/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	leaveController *controllers.LeaveController,
	gateController *controllers.GateController,
	studentController *controllers.StudentController,
	roomController *controllers.RoomController,
	menuController *controllers.MenuController,
	complaintController *controllers.ComplaintController,
	forumController *controllers.ForumController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// Everything else requires a session
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	authenticated.GET("/auth/profile", authController.GetProfile)

	adminOnly := authMiddleware.RoleRequired(models.RoleAdmin)
	studentOnly := authMiddleware.RoleRequired(models.RoleStudent)

	// Leave applications: students own the submit/withdraw side, admins decide
	leaves := authenticated.Group("/leaves")
	{
		leaves.POST("", studentOnly, leaveController.Submit)
		leaves.GET("/my", studentOnly, leaveController.ListMine)
		leaves.GET("", adminOnly, leaveController.List)
		leaves.GET("/:id", leaveController.GetByID)
		leaves.DELETE("/:id", studentOnly, leaveController.Cancel)
		leaves.GET("/:id/passes", studentOnly, leaveController.GetPasses)
		leaves.POST("/:id/approve", adminOnly, leaveController.Approve)
		leaves.POST("/:id/reject", adminOnly, leaveController.Reject)
	}

	// Gate redemption is for gate staff, not students
	gate := authenticated.Group("/gate")
	gate.Use(adminOnly)
	{
		gate.POST("/verify", gateController.Verify)
		gate.POST("/mark-used", gateController.MarkUsed)
	}

	// Admission administration
	students := authenticated.Group("/students")
	students.Use(adminOnly)
	{
		students.GET("", studentController.List)
		students.GET("/:id", studentController.GetByID)
		students.POST("/:id/admission", studentController.DecideAdmission)
	}

	// Room inventory: reads for everyone, writes for admins
	rooms := authenticated.Group("/rooms")
	{
		rooms.GET("", roomController.List)
		rooms.GET("/:id", roomController.GetByID)
		rooms.POST("", adminOnly, roomController.Create)
		rooms.PUT("/:id", adminOnly, roomController.Update)
	}

	// Mess menu: reads for everyone, writes for admins
	menu := authenticated.Group("/menu")
	{
		menu.GET("", menuController.GetWeek)
		menu.GET("/:day", menuController.GetDay)
		menu.PUT("", adminOnly, menuController.Upsert)
		menu.DELETE("/:day/:meal", adminOnly, menuController.Delete)
	}

	// Complaints
	complaints := authenticated.Group("/complaints")
	{
		complaints.POST("", studentOnly, complaintController.Create)
		complaints.GET("/my", studentOnly, complaintController.ListMine)
		complaints.GET("", adminOnly, complaintController.List)
		complaints.PATCH("/:id/status", adminOnly, complaintController.UpdateStatus)
	}

	// Community forum, open to all authenticated users
	forum := authenticated.Group("/forum")
	{
		forum.GET("/posts", forumController.ListPosts)
		forum.POST("/posts", forumController.CreatePost)
		forum.GET("/posts/:id", forumController.GetPost)
		forum.DELETE("/posts/:id", forumController.DeletePost)
		forum.POST("/posts/:id/comments", forumController.CreateComment)
	}
}
