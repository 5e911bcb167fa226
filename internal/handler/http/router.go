package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/qhamayedwa/wfm-backend-go/internal/config"
	"github.com/qhamayedwa/wfm-backend-go/internal/handler/http/middleware"
	"github.com/qhamayedwa/wfm-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	orgHandler OrganizationHandler,
	employeeHandler EmployeeHandler,
	timeEntryHandler TimeEntryHandler,
	payrollHandler PayrollHandler,
	leaveHandler LeaveHandler,
	scheduleHandler ScheduleHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "wfm-backend"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
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
			r.Post("/register", authHandler.Register)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", authHandler.OAuthCallbackGoogle)
			})

			r.Route("/login", func(r chi.Router) {
				r.Post("/", authHandler.Login)
				r.Route("/oauth", func(r chi.Router) {
					r.Get("/google", authHandler.LoginWithGoogle)
				})
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/me", authHandler.Me)

			r.Route("/organization", func(r chi.Router) {
				r.Get("/hierarchy", orgHandler.GetHierarchy)
				r.Get("/regions", orgHandler.ListRegions)
				r.Get("/sites", orgHandler.ListSites)
				r.Get("/departments", orgHandler.ListDepartments)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/regions", orgHandler.CreateRegion)
					r.Put("/regions/{id}", orgHandler.RenameRegion)
					r.Delete("/regions/{id}", orgHandler.DeleteRegion)
					r.Post("/sites", orgHandler.CreateSite)
					r.Put("/sites/{id}", orgHandler.RenameSite)
					r.Delete("/sites/{id}", orgHandler.DeleteSite)
					r.Post("/departments", orgHandler.CreateDepartment)
					r.Put("/departments/{id}", orgHandler.RenameDepartment)
					r.Delete("/departments/{id}", orgHandler.DeleteDepartment)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/", employeeHandler.List)
					r.Get("/{id}", employeeHandler.Get)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", employeeHandler.Create)
					r.Put("/{id}", employeeHandler.Update)
					r.Delete("/{id}", employeeHandler.Delete)
				})
			})

			r.Route("/time-entries", func(r chi.Router) {
				r.Post("/clock-in", timeEntryHandler.ClockIn)
				r.Post("/clock-out", timeEntryHandler.ClockOut)
				r.Get("/my", timeEntryHandler.GetMyEntries)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/", timeEntryHandler.List)
					r.Get("/{id}", timeEntryHandler.Get)
					r.Put("/{id}/correct", timeEntryHandler.Correct)
					r.Post("/{id}/approve", timeEntryHandler.Approve)
					r.Post("/{id}/reject", timeEntryHandler.Reject)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/pay-codes", payrollHandler.ListPayCodes)
					r.Get("/pay-codes/{id}", payrollHandler.GetPayCode)
					r.Get("/pay-rules", payrollHandler.ListPayRules)
					r.Get("/pay-rules/{id}", payrollHandler.GetPayRule)
					r.Get("/calculations", payrollHandler.ListCalculations)
					r.Get("/calculations/{id}", payrollHandler.GetCalculation)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/pay-codes", payrollHandler.CreatePayCode)
					r.Put("/pay-codes/{id}", payrollHandler.UpdatePayCode)
					r.Delete("/pay-codes/{id}", payrollHandler.DeletePayCode)
					r.Post("/pay-codes/{id}/toggle", payrollHandler.TogglePayCode)
					r.Post("/pay-rules", payrollHandler.CreatePayRule)
					r.Put("/pay-rules/{id}", payrollHandler.UpdatePayRule)
					r.Put("/pay-rules/reorder", payrollHandler.ReorderPayRules)
					r.Delete("/pay-rules/{id}", payrollHandler.DeletePayRule)
					r.Post("/calculate", payrollHandler.Calculate)
				})
			})

			r.Route("/leave", func(r chi.Router) {
				r.Post("/", leaveHandler.Apply)
				r.Get("/", leaveHandler.List)
				r.Get("/balances", leaveHandler.Balances)
				r.Get("/{id}", leaveHandler.Get)
				r.Delete("/{id}", leaveHandler.Cancel)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/{id}/approve", leaveHandler.Approve)
					r.Post("/{id}/reject", leaveHandler.Reject)
				})
			})

			r.Route("/shifts", func(r chi.Router) {
				r.Get("/", scheduleHandler.List)
				r.Get("/{id}", scheduleHandler.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", scheduleHandler.Create)
					r.Put("/{id}", scheduleHandler.Update)
					r.Post("/{id}/publish", scheduleHandler.Publish)
					r.Post("/{id}/unpublish", scheduleHandler.Unpublish)
					r.Delete("/{id}", scheduleHandler.Delete)
				})
			})

			r.Route("/reports", func(r chi.Router) {
				r.Use(middleware.RequireManager)
				r.Get("/attendance", reportHandler.AttendanceSummary)
				r.Get("/attendance/export", reportHandler.ExportAttendance)
				r.Get("/payroll", reportHandler.PayrollSummary)
				r.Get("/payroll/export", reportHandler.ExportPayroll)
			})
		})
	})
	return r
}
