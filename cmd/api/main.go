package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/clinicops/rota-backend-go/internal/config"
	"github.com/clinicops/rota-backend-go/internal/fixtures"
	appHTTP "github.com/clinicops/rota-backend-go/internal/handler/http"
	"github.com/clinicops/rota-backend-go/internal/pkg/database"
	"github.com/clinicops/rota-backend-go/internal/repository/postgresql"
	leaveService "github.com/clinicops/rota-backend-go/internal/service/leave"
	rosterService "github.com/clinicops/rota-backend-go/internal/service/roster"
	"github.com/clinicops/rota-backend-go/internal/service/rota"
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

	staffRepo := postgresql.NewStaffRepository(db)
	branchRepo := postgresql.NewBranchRepository(db)
	gridRepo := postgresql.NewGridRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	shiftRequestRepo := postgresql.NewShiftRequestRepository(db)

	ctx := context.Background()
	if err := branchRepo.EnsureDefaults(ctx, fixtures.GetDefaultBranches()); err != nil {
		log.Fatal("Failed to seed branches: ", err)
	}
	branches, err := branchRepo.GetAll(ctx)
	if err != nil {
		log.Fatal("Failed to load branches: ", err)
	}

	engine := rota.NewEngine(branches, fixtures.GetStaticRules())

	staffSvc := rosterService.NewService(staffRepo)
	leaveSvc := leaveService.NewService(leaveRepo, shiftRequestRepo, staffRepo)
	scheduleSvc := rota.NewService(engine, gridRepo, staffRepo, leaveRepo, shiftRequestRepo)

	staffHandler := appHTTP.NewStaffHandler(staffSvc)
	branchHandler := appHTTP.NewBranchHandler(branchRepo)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	rotaHandler := appHTTP.NewRotaHandler(scheduleSvc)

	router := appHTTP.NewRouter(staffHandler, branchHandler, leaveHandler, rotaHandler)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Server running on port", cfg.App.Port)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server failed: ", err)
	}
}
