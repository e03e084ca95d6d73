package router

import (
	"github.com/labstack/echo/v4"

	"bitacora/pkg/middleware"
)

func New(
	e *echo.Echo,
	jwtSecret string,
	authCtrl interface {
		Login(echo.Context) error
		WhoAmI(echo.Context) error
		Logout(echo.Context) error
	},
	bitacoraCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
		Get(echo.Context) error
	},
	activityCtrl interface {
		Create(echo.Context) error
		ListByBitacora(echo.Context) error
	},
	planCtrl interface {
		Generate(echo.Context) error
		Manual(echo.Context) error
		ListMonth(echo.Context) error
		PatchStatus(echo.Context) error
		Import(echo.Context) error
	},
	executionLog func(echo.Context) error,
	statsDetailed func(echo.Context) error,
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.Use(middleware.Session(jwtSecret))
	api := e.Group("")

	api.POST("/login", authCtrl.Login)
	api.POST("/logout", authCtrl.Logout)
	api.GET("/whoami", authCtrl.WhoAmI)
	e.GET("/health", healthCtrl.Health)

	api.POST("/bitacoras", bitacoraCtrl.Create)
	api.GET("/bitacoras", bitacoraCtrl.List)
	api.GET("/bitacoras/:id", bitacoraCtrl.Get)
	api.GET("/bitacoras/:id/activities", activityCtrl.ListByBitacora)
	api.GET("/bitacoras/:id/plans", planCtrl.ListMonth)
	api.POST("/bitacoras/:id/import", planCtrl.Import)
	api.POST("/import", planCtrl.Import)

	api.POST("/activities", activityCtrl.Create)

	g := e.Group("/plans")
	g.POST("/generate", planCtrl.Generate)
	g.GET("", planCtrl.ListMonth)
	g.PATCH("/:id", planCtrl.PatchStatus)
	g.POST("/:id/execution", executionLog)

	api.POST("/tasks", planCtrl.Manual)

	api.GET("/stats/detailed", statsDetailed)
	return e
}
