package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/SaintCentral/controllers"
	"github.com/SaintCentral/initializers"
	"github.com/SaintCentral/middlewares"
)

func init() {
	initializers.LoadEnv()
	initializers.ConnectDB()
	controllers.InitFeed()
}

func main() {
	router := gin.Default()

	getKey := func(c *gin.Context) string {
		if gin.Mode() == gin.DebugMode {
			return c.FullPath()
		}
		return c.ClientIP()
	}

	router.POST("/login", middlewares.RateLimitMiddleware(2, 2, getKey), controllers.UserLogin)
	router.POST("/signup", middlewares.RateLimitMiddleware(2, 2, getKey), controllers.UserSignup)
	router.GET("/ping", middlewares.RateLimitMiddleware(2, 2, getKey), controllers.Ping)

	auth := router.Group("/")
	auth.Use(middlewares.CheckAuth)
	auth.Use(middlewares.RateLimitMiddleware(10, 10, getKey))
	{

		// feed session routes
		auth.GET("/feed", controllers.GetFeed)
		auth.POST("/feed/advance", controllers.AdvanceFeed)
		auth.POST("/feed/back", controllers.GoBackFeed)
		auth.POST("/feed/save", controllers.ToggleSaveFeed)
		auth.POST("/feed/react", controllers.ReactFeed)
		auth.POST("/feed/more", controllers.RequestMoreFeed)
		auth.POST("/feed/refresh", controllers.RefreshFeed)

		// user routes
		auth.GET("/users/me", controllers.GetUserProfile)
		auth.GET("/users/me/streak", controllers.GetStreak)
		auth.GET("/users/me/interactions", controllers.GetUserInteractions)
		auth.GET("/users/me/saved", controllers.GetSavedPrayers)
		auth.DELETE("/users/me/saved/:prayer_request_id", controllers.UnsavePrayer)
		auth.GET("/users/me/prayers", controllers.GetUserPrayers)

		// reflection routes
		auth.GET("/prayers/:prayer_request_id/reflections", controllers.GetReflections)
		auth.POST("/prayers/:prayer_request_id/reflections", controllers.CreateReflection)
		auth.PUT("/prayers/:prayer_request_id/reflections/:reflection_id", controllers.UpdateReflection)
		auth.DELETE("/prayers/:prayer_request_id/reflections/:reflection_id", controllers.DeleteReflection)
	}

	if err := router.Run(); err != nil {
		log.Fatal(err)
	}
}
