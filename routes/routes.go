package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/nalshehri/ExamControl/config"
	"github.com/nalshehri/ExamControl/handlers"
	"github.com/nalshehri/ExamControl/middlewares"
	"github.com/nalshehri/ExamControl/models"
)

// Register wires all HTTP routes.
func Register(e *echo.Echo, cfg *config.Config) {
	// ===== Handlers (shared singletons) =====
	auth := handlers.NewAuthHandler(cfg.JWTSecret)
	staff := handlers.NewStaffHandler()
	std := handlers.NewStudentHandler()
	tch := handlers.NewTeacherHandler()
	cmt := handlers.NewCommitteeHandler()
	env := handlers.NewEnvelopeHandler()
	att := handlers.NewAttendanceHandler()
	sch := handlers.NewScheduleHandler()
	asg := handlers.NewAssignmentHandler()
	alr := handlers.NewAlertHandler()
	dash := handlers.NewDashboardHandler()
	rpt := handlers.NewReportHandler()
	qr := handlers.NewQRHandler()

	// ===== Public =====
	e.GET("/healthz", handlers.Health)
	e.POST("/auth/login", auth.Login)

	authMW := middlewares.RequireAuth(cfg.JWTSecret)

	// ===== Any authenticated staff =====
	api := e.Group("", authMW)
	api.GET("/auth/me", auth.Me)

	api.GET("/students", std.List)
	api.GET("/teachers", tch.List)
	api.GET("/committees", cmt.List)
	api.GET("/committees/:id", cmt.Get)
	api.GET("/envelopes", env.List)
	api.GET("/envelopes/stats", env.Stats)
	api.GET("/schedules", sch.List)
	api.GET("/assignments", asg.List)
	api.GET("/assignments/available", asg.Available)
	api.GET("/alerts", alr.List)
	api.GET("/alerts/unread-count", alr.UnreadCount)
	api.POST("/alerts/:id/read", alr.MarkRead)
	api.GET("/dashboard/stats", dash.Stats)

	api.GET("/reports/committee-summary", rpt.CommitteeSummary)
	api.GET("/reports/absent-students", rpt.AbsentStudents)
	api.GET("/reports/envelope-tracking", rpt.EnvelopeTracking)
	api.GET("/reports/door-signs", rpt.DoorSigns)
	api.GET("/reports/observer-assignments", rpt.ObserverAssignments)

	api.GET("/qr/teachers", qr.Teachers)
	api.GET("/qr/committees", qr.Committees)

	// ===== Teacher flows (observers) =====
	teacher := e.Group("", authMW, middlewares.RequireRole(models.RoleTeacher, models.RolePrincipal))
	teacher.GET("/attendance", att.List)
	teacher.GET("/attendance/roster", att.Roster)
	teacher.GET("/attendance/summary", att.Summary)
	teacher.POST("/attendance/mark", att.Mark)
	teacher.POST("/envelopes/:id/receive", env.Receive)
	teacher.POST("/envelopes/:id/start", env.Start)

	// scan branches by payload type; transition guards re-check the role
	scan := e.Group("", authMW, middlewares.RequireRole(
		models.RoleTeacher, models.RoleControl, models.RolePrincipal))
	scan.POST("/qr/scan", qr.Scan)

	// ===== Control =====
	control := e.Group("", authMW, middlewares.RequireRole(models.RoleControl, models.RolePrincipal))
	control.POST("/envelopes/:id/deliver", env.Deliver)

	// ===== Principal administration =====
	admin := e.Group("/admin", authMW, middlewares.RequireRole(models.RolePrincipal))

	admin.GET("/staff", staff.List)
	admin.POST("/staff", staff.Create)
	admin.PUT("/staff/:id", staff.Update)
	admin.DELETE("/staff/:id", staff.Delete)
	admin.POST("/staff/:id/reset-pin", staff.ResetPin)

	admin.POST("/students", std.Create)
	admin.PUT("/students/:id", std.Update)
	admin.DELETE("/students/:id", std.Delete)
	admin.POST("/students/import", std.Import)

	admin.POST("/teachers", tch.Create)
	admin.PUT("/teachers/:id", tch.Update)
	admin.DELETE("/teachers/:id", tch.Delete)

	admin.POST("/committees", cmt.Create)
	admin.PUT("/committees/:id", cmt.Update)
	admin.DELETE("/committees/:id", cmt.Delete)

	admin.POST("/envelopes", env.Create)
	admin.POST("/envelopes/generate", env.Generate)
	admin.PUT("/envelopes/:id", env.Update)
	admin.DELETE("/envelopes/:id", env.Delete)

	admin.PUT("/schedules", sch.Save)
	admin.DELETE("/schedules", sch.Delete)

	admin.PUT("/assignments", asg.Save)

	admin.POST("/alerts", alr.Create)
	admin.DELETE("/alerts/:id", alr.Delete)
}
