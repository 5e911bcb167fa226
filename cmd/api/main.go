package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/qhamayedwa/wfm-backend-go/internal/config"
	appHTTP "github.com/qhamayedwa/wfm-backend-go/internal/handler/http"
	"github.com/qhamayedwa/wfm-backend-go/internal/pkg/cron"
	"github.com/qhamayedwa/wfm-backend-go/internal/pkg/database"
	"github.com/qhamayedwa/wfm-backend-go/internal/pkg/jwt"
	"github.com/qhamayedwa/wfm-backend-go/internal/pkg/oauth"
	"github.com/qhamayedwa/wfm-backend-go/internal/repository/postgresql"
	authService "github.com/qhamayedwa/wfm-backend-go/internal/service/auth"
	employeeService "github.com/qhamayedwa/wfm-backend-go/internal/service/employee"
	leaveService "github.com/qhamayedwa/wfm-backend-go/internal/service/leave"
	organizationService "github.com/qhamayedwa/wfm-backend-go/internal/service/organization"
	payrollService "github.com/qhamayedwa/wfm-backend-go/internal/service/payroll"
	reportService "github.com/qhamayedwa/wfm-backend-go/internal/service/report"
	scheduleService "github.com/qhamayedwa/wfm-backend-go/internal/service/schedule"
	timeEntryService "github.com/qhamayedwa/wfm-backend-go/internal/service/timeentry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	orgRepo := postgresql.NewOrganizationRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	timeEntryRepo := postgresql.NewTimeEntryRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	scheduleRepo := postgresql.NewScheduleRepository(db)
	reportRepo := postgresql.NewReportRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleSvc := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	authSvc := authService.NewAuthService(db, userRepo, employeeRepo, orgRepo, jwtSvc, googleSvc)
	orgSvc := organizationService.NewOrganizationService(db, orgRepo)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, orgRepo)
	timeEntrySvc := timeEntryService.NewTimeEntryService(db, timeEntryRepo, cfg.TimeEntry)
	payrollSvc := payrollService.NewPayrollService(db, payrollRepo, employeeRepo, timeEntryRepo)
	leaveSvc := leaveService.NewLeaveService(db, leaveRepo, timeEntryRepo, payrollRepo)
	scheduleSvc := scheduleService.NewScheduleService(db, scheduleRepo, employeeRepo)
	reportSvc := reportService.NewReportService(db, reportRepo)

	authHandler := appHTTP.NewAuthHandler(jwtSvc, authSvc, googleSvc, cfg.App.FrontendURL)
	orgHandler := appHTTP.NewOrganizationHandler(orgSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	timeEntryHandler := appHTTP.NewTimeEntryHandler(timeEntrySvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	// Open entries left running past the limit are flagged as exceptions.
	scheduler := cron.NewScheduler()
	scheduler.AddJob("flag-stale-open-entries", cfg.TimeEntry.ExceptionSweepInterval, func(ctx context.Context) error {
		_, err := timeEntrySvc.FlagStaleOpenEntries(ctx)
		return err
	})
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		cfg,
		jwtSvc,
		authHandler,
		orgHandler,
		employeeHandler,
		timeEntryHandler,
		payrollHandler,
		leaveHandler,
		scheduleHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}
