package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"bitacora/config"
	"bitacora/database"
	"bitacora/router"

	// Auth
	authCtrlImp "bitacora/pkg/auth/controllerImp"

	// Bitácoras
	bitCtrlImp "bitacora/pkg/bitacora/controllerImp"
	bitRepoImp "bitacora/pkg/bitacora/repositoryImp"

	// Activities
	actCtrlImp "bitacora/pkg/activity/controllerImp"
	actRepoImp "bitacora/pkg/activity/repositoryImp"

	// Plans
	planCtrlImp "bitacora/pkg/plan/controllerImp"
	planRepoImp "bitacora/pkg/plan/repositoryImp"
	planSvc "bitacora/pkg/plan/serviceImp"

	// Execution logs
	execCtrlImp "bitacora/pkg/execution/controllerImp"
	execRepoImp "bitacora/pkg/execution/repositoryImp"
	execSvc "bitacora/pkg/execution/serviceImp"

	// Analytics
	statsCtrlImp "bitacora/pkg/analytics/controllerImp"
	statsSvc "bitacora/pkg/analytics/serviceImp"

	// Health
	healthCtrlImp "bitacora/pkg/health/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate + legacy calibration migration
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())

	// 4) Repos
	bRepo := bitRepoImp.New(db)
	aRepo := actRepoImp.New(db)
	pRepo := planRepoImp.New(db)
	eRepo := execRepoImp.New(db)

	// 5) Services
	pSvc := planSvc.NewPlanService(pRepo, aRepo, bRepo)
	xSvc := execSvc.NewExecutionService(eRepo, pRepo)
	sSvc := statsSvc.NewStatsService(pRepo, bRepo, statsSvc.Config{UseActualOutcomeHours: true})

	// 6) Controllers
	authCtrl := authCtrlImp.New(cfg.JWTSecret)
	bCtrl := bitCtrlImp.New(bRepo)
	aCtrl := actCtrlImp.New(aRepo)
	pCtrl := planCtrlImp.NewPlanCtrl(pSvc, pRepo)
	xCtrl := execCtrlImp.New(xSvc)
	sCtrl := statsCtrlImp.New(sSvc)
	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 7) Router
	r := router.New(
		e,
		cfg.JWTSecret,
		authCtrl,
		bCtrl,
		aCtrl,
		pCtrl,
		xCtrl.Log,
		sCtrl.Detailed,
		hCtrl,
	)

	// 8) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
