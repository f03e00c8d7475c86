package http

import (
	"log/slog"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

const requestTimeout = 60 * time.Second

type Handlers struct {
	Attendance AttendanceHandler
	Employee   EmployeeHandler
	Leave      LeaveHandler
	Report     ReportHandler
	Bulk       BulkHandler
	Auth       AuthHandler
	Me         MeHandler
}

func NewRouter(logger *slog.Logger, allowedOrigins []string, JWTService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(requestTimeout))
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", h.Auth.Login)

		r.Route("/attendance", func(r chi.Router) {
			r.Get("/", h.Attendance.List)
			r.Post("/", h.Attendance.Record)
			r.Put("/", h.Attendance.Upsert)
			r.Get("/today", h.Attendance.ListToday)
			r.Get("/status", h.Attendance.GetStatus)
		})

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", h.Employee.List)
			r.Post("/", h.Employee.Create)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.Employee.Get)
				r.Patch("/", h.Employee.Update)
				r.Delete("/", h.Employee.Delete)
			})
		})

		r.Route("/leaves", func(r chi.Router) {
			r.Get("/", h.Leave.List)
			r.Post("/", h.Leave.Create)
			r.Patch("/{date}", h.Leave.UpdateStatus)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/", h.Report.GetMonthlyReport)
			r.Get("/export", h.Report.Export)
		})

		r.Route("/bulk", func(r chi.Router) {
			r.Put("/employees", h.Bulk.ReplaceEmployees)
			r.Put("/attendance", h.Bulk.ReplaceAttendance)
			r.Put("/leaves", h.Bulk.ReplaceLeaves)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired)

			r.Get("/me/status", h.Me.GetStatus)
			r.Post("/me/attendance", h.Me.Record)
		})
	})
	return r
}
