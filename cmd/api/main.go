package main

import (
	"fmt"
	"net/http"

	"github.com/shiftline/workforce-backend-go/internal/config"
	appHTTP "github.com/shiftline/workforce-backend-go/internal/handler/http"
	"github.com/shiftline/workforce-backend-go/internal/pkg/database"
	"github.com/shiftline/workforce-backend-go/internal/pkg/jwt"
	"github.com/shiftline/workforce-backend-go/internal/repository/postgresql"
	accountService "github.com/shiftline/workforce-backend-go/internal/service/account"
	attendanceService "github.com/shiftline/workforce-backend-go/internal/service/attendance"
	authService "github.com/shiftline/workforce-backend-go/internal/service/auth"
	employeeService "github.com/shiftline/workforce-backend-go/internal/service/employee"
	leaveService "github.com/shiftline/workforce-backend-go/internal/service/leave"
	masterService "github.com/shiftline/workforce-backend-go/internal/service/master"
	reportService "github.com/shiftline/workforce-backend-go/internal/service/report"
	scheduleService "github.com/shiftline/workforce-backend-go/internal/service/schedule"
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

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	masterRepo := postgresql.NewMasterRepository(db)
	scheduleRepo := postgresql.NewScheduleRepository(db)
	shiftTypeRepo := postgresql.NewShiftTypeRepository(db)
	assignmentRepo := postgresql.NewAssignmentRepository(db)
	availabilityRepo := postgresql.NewAvailabilityRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	breakRepo := postgresql.NewBreakRepository(db)
	leaveTypeRepo := postgresql.NewLeaveTypeRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	reportRepo := postgresql.NewReportRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	accountSvc := accountService.NewAccountService(userRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	masterSvc := masterService.NewMasterService(masterRepo)
	scheduleSvc := scheduleService.NewScheduleService(
		cfg.Scheduling,
		scheduleRepo,
		shiftTypeRepo,
		assignmentRepo,
		availabilityRepo,
		employeeRepo,
	)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, breakRepo, assignmentRepo)
	leaveSvc := leaveService.NewLeaveService(leaveTypeRepo, leaveRequestRepo)
	reportSvc := reportService.NewReportService(reportRepo)

	handlers := appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(jwtService, authSvc),
		Account:    appHTTP.NewAccountHandler(accountSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Master:     appHTTP.NewMasterHandler(masterSvc),
		Schedule:   appHTTP.NewScheduleHandler(scheduleSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
	}

	router := appHTTP.NewRouter(cfg, jwtService, handlers)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
