package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/shiftline/workforce-backend-go/internal/config"
	"github.com/shiftline/workforce-backend-go/internal/handler/http/middleware"
	"github.com/shiftline/workforce-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	Account    AccountHandler
	Employee   EmployeeHandler
	Master     MasterHandler
	Schedule   ScheduleHandler
	Attendance AttendanceHandler
	Leave      LeaveHandler
	Report     ReportHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "workforce-backend"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.List)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Employee.Create)
					r.Get("/without-account", h.Employee.ListWithoutAccount)
				})
			})

			// Admin only
			r.Route("/accounts", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", h.Account.List)
				r.Post("/", h.Account.Create)
				r.Delete("/{id}", h.Account.Delete)
				r.Get("/check-username", h.Account.CheckUsername)
			})

			r.Route("/master", func(r chi.Router) {
				r.Get("/work-locations", h.Master.ListWorkLocations)
				r.Get("/departments", h.Master.ListDepartments)
				r.Get("/job-titles", h.Master.ListJobTitles)
				r.Get("/employment-types", h.Master.ListEmploymentTypes)
				r.Get("/skills", h.Master.ListSkills)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/work-locations", h.Master.CreateWorkLocation)
					r.Post("/departments", h.Master.CreateDepartment)
					r.Post("/job-titles", h.Master.CreateJobTitle)
					r.Post("/employment-types", h.Master.CreateEmploymentType)
					r.Post("/skills", h.Master.CreateSkill)
				})
			})

			r.Route("/schedules", func(r chi.Router) {
				r.Get("/my-roster", h.Schedule.MyRoster)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Schedule.ListSchedules)
					r.Post("/", h.Schedule.CreateSchedule)
					r.Post("/{id}/publish", h.Schedule.PublishSchedule)
					r.Get("/{id}/assignments", h.Schedule.ListAssignments)
				})
			})

			r.Route("/shift-types", func(r chi.Router) {
				r.Get("/", h.Schedule.ListShiftTypes)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Schedule.CreateShiftType)
				})
			})

			// Admin only
			r.Route("/assignments", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Post("/", h.Schedule.AssignShift)
				r.Delete("/{id}", h.Schedule.UnassignShift)
			})

			r.Route("/availability", func(r chi.Router) {
				r.Get("/", h.Schedule.MyAvailability)
				r.Put("/", h.Schedule.SetMyAvailability)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/clock-in", h.Attendance.ClockIn)
				r.Post("/clock-out", h.Attendance.ClockOut)
				r.Post("/breaks/start", h.Attendance.StartBreak)
				r.Post("/breaks/end", h.Attendance.EndBreak)
				r.Get("/today", h.Attendance.Today)
			})

			r.Route("/leave", func(r chi.Router) {
				r.Get("/types", h.Leave.ListTypes)
				r.Get("/requests/my", h.Leave.MyRequests)
				r.Post("/requests", h.Leave.SubmitRequest)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/types", h.Leave.CreateType)
					r.Get("/requests", h.Leave.ListRequests)
					r.Post("/requests/{id}/approve", h.Leave.ApproveRequest)
				})
			})

			// Admin only
			r.Route("/reports", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/daily", h.Report.Daily)
			})
		})
	})
	return r
}
