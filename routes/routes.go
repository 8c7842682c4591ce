package routes

import (
	"caltrack/controllers"
	"caltrack/middlewares"
	"caltrack/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter wires services and controllers around the injected DB handle
// and registers every route. Tests call it with an in-memory store.
func SetupRouter(db *gorm.DB, secret []byte) *gin.Engine {
	authSvc := services.NewAuthService(db)
	foodSvc := services.NewFoodService(db)
	entrySvc := services.NewEntryService(db)
	summarySvc := services.NewSummaryService(db)
	userSvc := services.NewUserService(db)
	hub := services.NewRealtimeHub()

	auth := controllers.NewAuthController(authSvc, secret)
	food := controllers.NewFoodController(foodSvc)
	entry := controllers.NewEntryController(entrySvc, summarySvc, hub)
	dashboard := controllers.NewDashboardController(userSvc, entrySvc, summarySvc)
	user := controllers.NewUserController(userSvc)
	realtime := controllers.NewRealtimeController(hub, summarySvc)

	r := gin.Default()

	// Public routes
	r.GET("/", auth.Index)
	r.GET("/login", auth.LoginPage)
	r.POST("/login", auth.Login)
	r.POST("/register", auth.Register)
	r.GET("/logout", auth.Logout)

	// Browser-facing protected routes
	app := r.Group("/")
	app.Use(middlewares.SessionAuth(secret))
	{
		app.GET("/dashboard", dashboard.Show)
		app.GET("/user/profile", user.GetProfile)
		app.PUT("/user/profile", user.UpdateProfile)
	}

	// JSON API
	api := r.Group("/api")
	api.Use(middlewares.SessionAuth(secret))
	{
		api.GET("/food", food.List)
		api.POST("/food", food.Create)
		api.POST("/entry", entry.Add)
	}

	// Realtime dashboard feed
	ws := r.Group("/ws")
	ws.Use(middlewares.SessionAuth(secret))
	{
		ws.GET("/dashboard", realtime.DashboardWS)
	}

	return r
}
