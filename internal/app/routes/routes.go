package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/okan/hostelhub/internal/app/controllers"
	"github.com/okan/hostelhub/internal/app/models"
	"github.com/okan/hostelhub/internal/app/models/dto"
	"github.com/okan/hostelhub/internal/middleware"
)

// SetupRouter configures all application routes. Route groups only encode
// the coarse role split; the fine-grained decisions (per-operation checks
// and student record scoping) live in the services via the policy package,
// so a route reachable here can still come back 403 or a scoped 404.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	roomController *controllers.RoomController,
	studentController *controllers.StudentController,
	feeController *controllers.FeeController,
	attendanceController *controllers.AttendanceController,
	visitorController *controllers.VisitorController,
	complaintController *controllers.ComplaintController,
	messMenuController *controllers.MessMenuController,
	contactController *controllers.ContactController,
	dashboardController *controllers.DashboardController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
	}

	// Contact form submission is public; anyone can reach the hostel office
	v1.POST("/contact", contactController.SubmitMessage)

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		// Session management for logged-in users
		authSession := authenticated.Group("/auth")
		{
			authSession.POST("/logout", authController.Logout)
			authSession.GET("/me", authController.Me)
			authSession.PUT("/profile", authController.UpdateProfile)
		}

		// Room routes
		rooms := authenticated.Group("/rooms")
		{
			rooms.GET("", roomController.ListRooms)
			rooms.GET("/:id", roomController.GetRoom)

			roomsAdminProtected := rooms.Group("")
			roomsAdminProtected.Use(authMiddleware.RoleRequired(models.RoleAdmin))
			{
				roomsAdminProtected.POST("", roomController.CreateRoom)
				roomsAdminProtected.PUT("/:id", roomController.UpdateRoom)
				roomsAdminProtected.PATCH("/:id/status", roomController.UpdateRoomStatus)
				roomsAdminProtected.DELETE("/:id", roomController.DeleteRoom)
			}
		}

		// Student routes; reads are visible to every role, students only
		// ever see their own profile through service scoping
		students := authenticated.Group("/students")
		{
			students.GET("", studentController.ListStudents)
			students.GET("/:id", studentController.GetStudent)

			studentsAdminProtected := students.Group("")
			studentsAdminProtected.Use(authMiddleware.RoleRequired(models.RoleAdmin))
			{
				studentsAdminProtected.POST("", studentController.CreateStudent)
				studentsAdminProtected.PUT("/:id", studentController.UpdateStudent)
				studentsAdminProtected.POST("/:id/assign-room", studentController.AssignRoom)
				studentsAdminProtected.POST("/:id/unassign-room", studentController.UnassignRoom)
				studentsAdminProtected.DELETE("/:id", studentController.DeactivateStudent)
			}
		}

		// Fee routes
		fees := authenticated.Group("/fees")
		{
			fees.GET("", feeController.ListFees)
			fees.GET("/:id", feeController.GetFee)

			feesAdminProtected := fees.Group("")
			feesAdminProtected.Use(authMiddleware.RoleRequired(models.RoleAdmin))
			{
				feesAdminProtected.POST("", feeController.CreateFee)
				feesAdminProtected.PUT("/:id", feeController.UpdateFee)
				feesAdminProtected.POST("/:id/mark-paid", feeController.MarkFeePaid)
				feesAdminProtected.DELETE("/:id", feeController.DeleteFee)
			}
		}

		// Attendance routes; only wardens mark and correct attendance
		attendance := authenticated.Group("/attendance")
		{
			attendance.GET("", attendanceController.ListAttendance)
			attendance.GET("/summary", attendanceController.GetSummary)

			attendanceWardenProtected := attendance.Group("")
			attendanceWardenProtected.Use(authMiddleware.RoleRequired(models.RoleWarden))
			{
				attendanceWardenProtected.POST("", attendanceController.MarkAttendance)
				attendanceWardenProtected.PUT("/:id", attendanceController.UpdateAttendance)
			}
		}

		// Visitor routes; the visitor log is warden-operated
		visitors := authenticated.Group("/visitors")
		{
			visitors.GET("", visitorController.ListVisitors)

			visitorsWardenProtected := visitors.Group("")
			visitorsWardenProtected.Use(authMiddleware.RoleRequired(models.RoleWarden))
			{
				visitorsWardenProtected.POST("", visitorController.CheckIn)
				visitorsWardenProtected.POST("/:id/check-out", visitorController.CheckOut)
				visitorsWardenProtected.DELETE("/:id", visitorController.DeleteVisitor)
			}
		}

		// Complaint routes; filing is policy-checked in the service so the
		// create route stays open to all authenticated users
		complaints := authenticated.Group("/complaints")
		{
			complaints.GET("", complaintController.ListComplaints)
			complaints.GET("/:id", complaintController.GetComplaint)
			complaints.POST("", complaintController.FileComplaint)

			complaintsStaffProtected := complaints.Group("")
			complaintsStaffProtected.Use(authMiddleware.RoleRequired(models.RoleAdmin, models.RoleWarden))
			{
				complaintsStaffProtected.POST("/:id/start", complaintController.StartComplaint)
				complaintsStaffProtected.POST("/:id/resolve", complaintController.ResolveComplaint)
			}
		}

		// Mess menu routes
		messMenu := authenticated.Group("/mess-menu")
		{
			messMenu.GET("", messMenuController.ListMenus)
			messMenu.GET("/today", messMenuController.GetTodayMenu)
			messMenu.GET("/:id", messMenuController.GetMenu)

			messMenuAdminProtected := messMenu.Group("")
			messMenuAdminProtected.Use(authMiddleware.RoleRequired(models.RoleAdmin))
			{
				messMenuAdminProtected.POST("", messMenuController.CreateMenu)
				messMenuAdminProtected.PUT("/:id", messMenuController.UpdateMenu)
				messMenuAdminProtected.DELETE("/:id", messMenuController.DeleteMenu)
			}
		}

		// Contact message triage is admin-only
		contactAdminProtected := authenticated.Group("/contact")
		contactAdminProtected.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			contactAdminProtected.GET("", contactController.ListMessages)
			contactAdminProtected.POST("/:id/resolve", contactController.ResolveMessage)
		}

		// Dashboard; the service picks the metric set for the caller's role
		authenticated.GET("/dashboard/stats", dashboardController.GetStats)
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
