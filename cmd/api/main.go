package main

import (
	"fmt"
	"net/http"

	"github.com/peoplekit/hrms-backend-go/internal/config"
	appHTTP "github.com/peoplekit/hrms-backend-go/internal/handler/http"
	"github.com/peoplekit/hrms-backend-go/internal/pkg/cron"
	"github.com/peoplekit/hrms-backend-go/internal/pkg/database"
	"github.com/peoplekit/hrms-backend-go/internal/pkg/jwt"
	"github.com/peoplekit/hrms-backend-go/internal/repository/postgresql"
	policyService "github.com/peoplekit/hrms-backend-go/internal/service/policy"
	salaryService "github.com/peoplekit/hrms-backend-go/internal/service/salary"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	policyRepo := postgresql.NewPolicyRepository(db)
	salaryRepo := postgresql.NewSalaryRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret)

	resolver := policyService.NewResolver(policyRepo, employeeRepo)
	policySvc := policyService.NewService(policyRepo, employeeRepo, resolver)
	salarySvc := salaryService.NewService(employeeRepo, attendanceRepo, leaveRepo, holidayRepo, salaryRepo, resolver)

	scheduler := cron.NewScheduler()
	if cfg.Payroll.AutoRunEnabled {
		payrollJobs := cron.NewPayrollJobs(salarySvc, salaryRepo)
		payrollJobs.RegisterJobs(scheduler, cfg.Payroll.TickInterval)
	}
	scheduler.Start()
	defer scheduler.Stop()

	salaryHandler := appHTTP.NewSalaryHandler(salarySvc)
	policyHandler := appHTTP.NewPolicyHandler(policySvc)

	router := appHTTP.NewRouter(jwtService, cfg.App.Env, salaryHandler, policyHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
