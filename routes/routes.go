package routes

import (
	"github.com/ancientastronautunearthed/fiber-app/controllers"
	"github.com/ancientastronautunearthed/fiber-app/middlewares"
	"github.com/ancientastronautunearthed/fiber-app/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SetupRouter wires services and controllers onto the gin engine.
func SetupRouter(db *gorm.DB, gen services.ContentGenerator, art *services.ImageService, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(middlewares.RequestLogger(logger), gin.Recovery())

	monsterSvc := services.NewMonsterService(db, gen, art, logger)
	logSvc := services.NewLogService(db, gen)
	riddleSvc := services.NewRiddleService(db, gen, logger)
	dashboardSvc := services.NewDashboardService(db, monsterSvc, riddleSvc)
	communitySvc := services.NewCommunityService(db)

	monsterCtl := controllers.NewMonsterController(monsterSvc)
	logCtl := controllers.NewLogController(logSvc)
	riddleCtl := controllers.NewRiddleController(riddleSvc)
	dashboardCtl := controllers.NewDashboardController(dashboardSvc)
	communityCtl := controllers.NewCommunityController(communitySvc)

	// Public routes
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}
	r.GET("/api/riddle/today", riddleCtl.Today)
	r.GET("/api/community/posts", communityCtl.ListPosts)
	r.GET("/api/community/posts/:id", communityCtl.GetPost)
	r.GET("/api/community/posts/:id/replies", communityCtl.ListReplies)

	// Authenticated routes
	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/auth/user", controllers.GetAuthUser)
		api.PATCH("/user/profile", controllers.UpdateProfile)

		api.POST("/monster/create", monsterCtl.Create)
		api.GET("/monster/active", monsterCtl.Active)
		api.PATCH("/monster/:id/health", monsterCtl.SetHealth)
		api.POST("/monster/:id/tomb", monsterCtl.Tomb)

		api.POST("/food-log", logCtl.CreateFoodLog)
		api.GET("/food-log", logCtl.ListFoodLogs)
		api.POST("/symptom-log", logCtl.CreateSymptomLog)
		api.GET("/symptom-log", logCtl.ListSymptomLogs)
		api.POST("/sleep-log", logCtl.CreateSleepLog)
		api.GET("/sleep-log", logCtl.ListSleepLogs)
		api.POST("/sun-exposure-log", logCtl.CreateSunExposureLog)
		api.GET("/sun-exposure-log", logCtl.ListSunExposureLogs)
		api.POST("/supplement-log", logCtl.CreateSupplementLog)
		api.GET("/supplement-log", logCtl.ListSupplementLogs)
		api.POST("/medication-log", logCtl.CreateMedicationLog)
		api.GET("/medication-log", logCtl.ListMedicationLogs)

		api.POST("/community/posts", communityCtl.CreatePost)
		api.POST("/community/posts/:id/replies", communityCtl.CreateReply)
		api.POST("/community/posts/:id/like", communityCtl.LikePost)

		api.POST("/riddle/answer", riddleCtl.SubmitAnswer)

		api.GET("/dashboard", dashboardCtl.GetDashboard)
		api.GET("/activities", controllers.ListActivities)
	}

	return r
}
