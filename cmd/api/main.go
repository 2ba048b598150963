package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/shiftyhq/shifty-backend-go/internal/config"
	appHTTP "github.com/shiftyhq/shifty-backend-go/internal/handler/http"
	"github.com/shiftyhq/shifty-backend-go/internal/pkg/database"
	"github.com/shiftyhq/shifty-backend-go/internal/pkg/jwt"
	"github.com/shiftyhq/shifty-backend-go/internal/repository/postgresql"
	absenceService "github.com/shiftyhq/shifty-backend-go/internal/service/absence"
	analyticsService "github.com/shiftyhq/shifty-backend-go/internal/service/analytics"
	attendanceService "github.com/shiftyhq/shifty-backend-go/internal/service/attendance"
	authService "github.com/shiftyhq/shifty-backend-go/internal/service/auth"
	employeeService "github.com/shiftyhq/shifty-backend-go/internal/service/employee"
	shiftService "github.com/shiftyhq/shifty-backend-go/internal/service/shift"
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

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "shifty-backend"),
	)

	userRepo := postgresql.NewUserRepository(db)
	businessRepo := postgresql.NewBusinessRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	contractRepo := postgresql.NewContractRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	absenceRepo := postgresql.NewAbsenceRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(db, userRepo, businessRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, contractRepo)
	shiftSvc := shiftService.NewShiftService(shiftRepo, employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	absenceSvc := absenceService.NewAbsenceService(absenceRepo, employeeRepo)
	analyticsSvc := analyticsService.NewAnalyticsService(employeeRepo, contractRepo, shiftRepo, attendanceRepo, absenceRepo, logger)

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	shiftHandler := appHTTP.NewShiftHandler(shiftSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	absenceHandler := appHTTP.NewAbsenceHandler(absenceSvc)
	analyticsHandler := appHTTP.NewAnalyticsHandler(analyticsSvc)

	router := appHTTP.NewRouter(
		jwtService,
		authHandler,
		employeeHandler,
		shiftHandler,
		attendanceHandler,
		absenceHandler,
		analyticsHandler,
		cfg.App.CORSOrigins,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("starting server", slog.String("addr", addr), slog.String("env", cfg.App.Env))
	if err := http.ListenAndServe(addr, router); err != nil {
		logger.Error("server stopped", slog.String("error", err.Error()))
	}
}
