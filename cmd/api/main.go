package main

import (
	"fmt"
	"net/http"

	"github.com/nominacol/nomina-backend-go/internal/config"
	appHTTP "github.com/nominacol/nomina-backend-go/internal/handler/http"
	"github.com/nominacol/nomina-backend-go/internal/pkg/cron"
	"github.com/nominacol/nomina-backend-go/internal/pkg/database"
	"github.com/nominacol/nomina-backend-go/internal/pkg/jwt"
	"github.com/nominacol/nomina-backend-go/internal/repository/postgresql"
	advanceService "github.com/nominacol/nomina-backend-go/internal/service/advance"
	authService "github.com/nominacol/nomina-backend-go/internal/service/auth"
	employeeService "github.com/nominacol/nomina-backend-go/internal/service/employee"
	noveltyService "github.com/nominacol/nomina-backend-go/internal/service/novelty"
	payrollService "github.com/nominacol/nomina-backend-go/internal/service/payroll"
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
	noveltyRepo := postgresql.NewNoveltyRepository(db)
	advanceRepo := postgresql.NewAdvanceRepository(db)
	ratesRepo := postgresql.NewRatesRepository(db)
	runRepo := postgresql.NewRunRepository(db)
	clerkRepo := postgresql.NewClerkRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(clerkRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo)
	noveltySvc := noveltyService.NewNoveltyService(db, noveltyRepo, employeeRepo)
	advanceSvc := advanceService.NewAdvanceService(db, advanceRepo, employeeRepo)
	payrollSvc := payrollService.NewPayrollService(db, employeeRepo, noveltyRepo, advanceRepo, ratesRepo, runRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc, jwtService)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	noveltyHandler := appHTTP.NewNoveltyHandler(noveltySvc)
	advanceHandler := appHTTP.NewAdvanceHandler(advanceSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	scheduler := cron.NewScheduler()
	scheduler.AddJob("tenure-refresh", cfg.App.TenureRefreshInterval, employeeSvc.RefreshTenure)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		jwtService,
		cfg.App.CORSOrigins,
		authHandler,
		employeeHandler,
		noveltyHandler,
		advanceHandler,
		payrollHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
