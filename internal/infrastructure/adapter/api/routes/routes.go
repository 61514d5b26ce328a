package routes

import (
	coreport "github.com/fittrack-app/fittrack-server/internal/domain/port/core"
	"github.com/fittrack-app/fittrack-server/internal/infrastructure/adapter/api/handler"
	"github.com/fittrack-app/fittrack-server/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API. The paths mirror the
// contract the deployed mobile client already depends on, so the /api
// prefix is applied only where the client expects it.
func SetupRoutes(
	router *gin.Engine,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	caloriesHandler *handler.CaloriesHandler,
) {
	// Credential and workout routes under /api
	apiRoutes := router.Group("/api")
	{
		// POST /api/login_data
		apiRoutes.POST("/login_data", authHandler.Login)

		// POST /api/signup_data
		apiRoutes.POST("/signup_data", authHandler.Signup)

		// POST /api/insertCaloriesData
		apiRoutes.POST("/insertCaloriesData", caloriesHandler.InsertCaloriesData)
	}

	// Profile and history routes at the root
	// GET /user_info/:username
	router.GET("/user_info/:username", userHandler.GetUserInfo)

	// POST /update
	router.POST("/update", userHandler.UpdateMetrics)

	// POST /updatePassword
	router.POST("/updatePassword", authHandler.UpdatePassword)

	// GET /fetchCaloriesData/:username
	router.GET("/fetchCaloriesData/:username", caloriesHandler.FetchCaloriesData)
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
}
