package routes

import (
	"uniplan_go/controllers"
	"uniplan_go/middleware"
	"uniplan_go/services/websocket"

	"github.com/gofiber/fiber/v2"
	fiberws "github.com/gofiber/websocket/v2"
)

// SetupRoutes configures all application routes
func SetupRoutes(app *fiber.App, wsHub *websocket.Hub) {
	// Initialize controllers
	authController := &controllers.AuthController{}
	userController := &controllers.UserController{}
	courseController := &controllers.CourseController{}
	enrollmentController := &controllers.EnrollmentController{}
	facultyController := &controllers.FacultyController{}
	teacherController := &controllers.TeacherController{}
	roomController := &controllers.RoomController{}
	logController := &controllers.LogController{}
	sessionController := controllers.NewSessionController(wsHub)
	timetableController := &controllers.TimetableController{}
	wsController := controllers.NewWebSocketController(wsHub)

	// API group
	api := app.Group("/api")

	// Public routes (no authentication required)
	public := api.Group("/public")

	// Courses - PUBLIC endpoint as required
	public.Get("/courses", courseController.GetCourses)
	public.Get("/courses/:id", courseController.GetCourse)
	public.Get("/courses/faculty/:faculty_id", courseController.GetCoursesByFaculty)

	// Authentication routes (no middleware)
	auth := api.Group("/auth")
	auth.Post("/login", authController.Login)
	// Allow profile retrieval via /api/auth/profile using the same JWT middleware
	auth.Get("/profile", middleware.JWTMiddleware(), authController.GetProfile)

	// Protected routes (require authentication)
	protected := api.Group("/", middleware.JWTMiddleware())

	// Profile routes (authenticated users)
	protected.Get("/profile", authController.GetProfile)
	protected.Put("/profile/password", authController.ChangePassword)
	// Logout - blacklist token for 24 hours
	protected.Post("/auth/logout", authController.Logout)

	// Password reset routes (admin only)
	passwordReset := protected.Group("/password-reset", middleware.RequireAdmin())
	passwordReset.Post("/reset-by-admin", authController.ResetPasswordByAdmin)

	// User management routes
	users := protected.Group("/users")
	users.Get("/", middleware.RequireTeacherOrAbove(), userController.GetUsers)
	users.Get("/:id", middleware.RequireTeacherOrAbove(), userController.GetUser)
	users.Post("/", middleware.RequireAdmin(), authController.Register) // Use register from auth controller
	users.Put("/:id", middleware.RequireAdmin(), userController.UpdateUser)
	users.Delete("/:id", middleware.RequireAdmin(), userController.DeleteUser)
	users.Post("/:id/avatar", userController.UploadAvatar) // Users can upload their own avatar

	// Course management routes (protected)
	courses := protected.Group("/courses")
	courses.Post("/", middleware.RequireAdmin(), courseController.CreateCourse)
	courses.Put("/:id", middleware.RequireAdmin(), courseController.UpdateCourse)
	courses.Delete("/:id", middleware.RequireAdmin(), courseController.DeleteCourse)
	// Sessions of one course
	courses.Get("/:id/sessions", sessionController.GetCourseSessions)
	// Enrollments
	courses.Get("/:id/enrollments", middleware.RequireTeacherOrAbove(), enrollmentController.GetCourseEnrollments)
	courses.Post("/:id/enrollments", middleware.RequireAdmin(), enrollmentController.EnrollUser)
	courses.Post("/:id/enrollments/bulk", middleware.RequireAdmin(), enrollmentController.EnrollUsersBulk)

	// Session scheduling routes. Check is advisory; Create re-runs the same
	// conflict detection authoritatively and answers 409 on collision.
	sessions := protected.Group("/sessions")
	sessions.Post("/check", middleware.RequireTeacherOrAbove(), sessionController.CheckSession)
	sessions.Post("/", middleware.RequireTeacherOrAbove(), sessionController.CreateSession)
	sessions.Delete("/:id", middleware.RequireTeacherOrAbove(), sessionController.DeleteSession)

	// Personal timetable views
	schedule := protected.Group("/schedule")
	schedule.Get("/my", timetableController.GetMySchedule)
	schedule.Get("/my/grid", timetableController.GetMyGrid)
	schedule.Get("/my/export", timetableController.ExportMySchedule)

	// Faculty management routes
	faculties := protected.Group("/faculties")
	faculties.Get("/", middleware.RequireTeacherOrAbove(), facultyController.GetFaculties)
	faculties.Get("/:id", middleware.RequireTeacherOrAbove(), facultyController.GetFaculty)
	faculties.Post("/", middleware.RequireAdmin(), facultyController.CreateFaculty)
	faculties.Put("/:id", middleware.RequireAdmin(), facultyController.UpdateFaculty)
	faculties.Delete("/:id", middleware.RequireAdmin(), facultyController.DeleteFaculty)

	// Teacher management routes
	teachers := protected.Group("/teachers")
	teachers.Get("/", middleware.RequireTeacherOrAbove(), teacherController.GetTeachers)
	teachers.Get("/board", middleware.RequireTeacherOrAbove(), teacherController.GetTeacherBoard)
	teachers.Get("/faculty/:faculty_id", middleware.RequireTeacherOrAbove(), teacherController.GetTeachersByFaculty)
	teachers.Get("/:id", middleware.RequireTeacherOrAbove(), teacherController.GetTeacher)
	teachers.Post("/", middleware.RequireAdmin(), teacherController.CreateTeacher)
	teachers.Put("/:id", middleware.RequireAdmin(), teacherController.UpdateTeacher)
	teachers.Delete("/:id", middleware.RequireAdmin(), teacherController.DeleteTeacher)

	// Room management routes
	rooms := protected.Group("/rooms")
	rooms.Get("/", middleware.RequireTeacherOrAbove(), roomController.GetRooms)
	rooms.Get("/available", middleware.RequireTeacherOrAbove(), roomController.GetAvailableRooms)
	rooms.Get("/faculty/:faculty_id", middleware.RequireTeacherOrAbove(), roomController.GetRoomsByFaculty)
	rooms.Get("/:id", middleware.RequireTeacherOrAbove(), roomController.GetRoom)
	rooms.Post("/", middleware.RequireAdmin(), roomController.CreateRoom)
	rooms.Put("/:id", middleware.RequireAdmin(), roomController.UpdateRoom)
	rooms.Delete("/:id", middleware.RequireAdmin(), roomController.DeleteRoom)
	rooms.Patch("/:id/status", middleware.RequireTeacherOrAbove(), roomController.UpdateRoomStatus)

	// Enrollment drop
	protected.Delete("/enrollments/:id", middleware.RequireAdmin(), enrollmentController.DropEnrollment)

	// Log management routes (Admin only)
	logs := protected.Group("/logs", middleware.RequireAdmin())
	logs.Get("/", logController.GetLogs)
	logs.Get("/stats", logController.GetLogStats)
	logs.Get("/export", logController.ExportLogs)
	logs.Get("/archives", logController.GetArchives)
	logs.Get("/archives/:id/download", logController.DownloadArchive)
	logs.Get("/:id", logController.GetLog)
	logs.Delete("/old", logController.DeleteOldLogs)
	logs.Post("/flush-cache", logController.FlushCachedLogs)

	// WebSocket routes
	ws := protected.Group("/ws")
	ws.Get("/stats", middleware.RequireAdmin(), wsController.GetWebSocketStats)

	// WebSocket connection endpoint - use websocket upgrade middleware
	app.Use("/ws", func(c *fiber.Ctx) error {
		// IsWebSocketUpgrade returns true if the client
		// requested upgrade to the WebSocket protocol.
		if fiberws.IsWebSocketUpgrade(c) {
			c.Locals("allowed", true)
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws", wsController.WebSocketHandler())
}

// SetupStaticRoutes configures static file serving
func SetupStaticRoutes(app *fiber.App) {
	// Serve static files if needed
	app.Static("/", "./public")
}
