package main

import (
	"fmt"
	"net/http"

	"github.com/saliheu/KAMU-AKYS/internal/config"
	appHTTP "github.com/saliheu/KAMU-AKYS/internal/handler/http"
	"github.com/saliheu/KAMU-AKYS/internal/pkg/database"
	"github.com/saliheu/KAMU-AKYS/internal/pkg/jwt"
	"github.com/saliheu/KAMU-AKYS/internal/repository/postgresql"
	authService "github.com/saliheu/KAMU-AKYS/internal/service/auth"
	employeeService "github.com/saliheu/KAMU-AKYS/internal/service/employee"
	holidayService "github.com/saliheu/KAMU-AKYS/internal/service/holiday"
	leaveService "github.com/saliheu/KAMU-AKYS/internal/service/leave"
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
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	txManager := postgresql.NewTxManager(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewService(employeeRepo, jwtService)
	leaveSvc := leaveService.NewRequestService(txManager, leaveRequestRepo, employeeRepo)
	employeeSvc := employeeService.NewService(employeeRepo)
	holidaySvc := holidayService.NewService(holidayRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	holidayHandler := appHTTP.NewHolidayHandler(holidaySvc)

	router := appHTTP.NewRouter(cfg, jwtService, authHandler, leaveHandler, employeeHandler, holidayHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
