package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/peoplekit/hrms-backend-go/internal/handler/http/middleware"
	"github.com/peoplekit/hrms-backend-go/internal/pkg/jwt"
)

func NewRouter(jwtService jwt.Service, env string, salaryHandler SalaryHandler, policyHandler PolicyHandler) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hrms-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
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
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/payroll", func(r chi.Router) {
				// Payroll is admin/HR territory end to end.
				r.Use(middleware.RequirePayrollAdmin)

				r.Post("/calculate", salaryHandler.Calculate)
				r.Post("/calculate-all", salaryHandler.CalculateAll)

				r.Route("/records", func(r chi.Router) {
					r.Get("/", salaryHandler.ListRecords)
					r.Get("/{id}", salaryHandler.GetRecord)
					r.Delete("/{id}", salaryHandler.DeleteRecord)
					r.Post("/approve", salaryHandler.Approve)
					r.Post("/mark-paid", salaryHandler.MarkPaid)
				})

				r.Route("/settings", func(r chi.Router) {
					r.Get("/", policyHandler.GetSettings)
					r.Put("/", policyHandler.UpdateSettings)
				})

				r.Route("/employee-policy/{employeeID}", func(r chi.Router) {
					r.Get("/", policyHandler.GetEmployeePolicy)
					r.Put("/", policyHandler.UpsertEmployeePolicy)
				})

				r.Post("/preview-config", policyHandler.PreviewConfig)
			})
		})
	})
	return r
}
