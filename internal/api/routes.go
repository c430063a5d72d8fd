package api

import (
	"askadam/fitness-assistant/internal/service"
	"askadam/fitness-assistant/internal/storage"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	chatService service.ChatService,
	workoutService service.WorkoutService,
	profileService service.ProfileService,
	fileStorage storage.FileStorage,
) {
	authHandler := NewAuthHandler(authService)
	chatHandler := NewChatHandler(chatService)
	workoutHandler := NewWorkoutHandler(workoutService)
	profileHandler := NewProfileHandler(profileService)
	mediaHandler := NewMediaHandler(fileStorage)

	authMiddleware := AuthMiddleware(jwtSecret)
	optionalAuth := OptionalAuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}

		// Chat and workouts serve guests too; identity only changes
		// which store the adapters target.
		openGroup := apiV1.Group("")
		openGroup.Use(optionalAuth)
		{
			openGroup.POST("/chat", chatHandler.SendMessage)

			workoutGroup := openGroup.Group("/workouts")
			{
				workoutGroup.GET("", workoutHandler.GetSplit)
				workoutGroup.POST("", workoutHandler.CreateDay)
				workoutGroup.PUT("/:dayId", workoutHandler.UpdateDay)
				workoutGroup.DELETE("/:dayId", workoutHandler.DeleteDay)
			}
		}

		protected := apiV1.Group("")
		protected.Use(authMiddleware)
		{
			protected.GET("/me", func(c *gin.Context) {
				userIDStr, err := getUserIDFromContext(c)
				if err != nil {
					abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
					return
				}
				c.JSON(http.StatusOK, gin.H{"userId": userIDStr})
			})

			profileGroup := protected.Group("/profile")
			{
				profileGroup.GET("", profileHandler.GetPreferences)
				profileGroup.PUT("", profileHandler.UpdatePreferences)
			}

			mediaGroup := protected.Group("/media")
			{
				mediaGroup.POST("/upload-url", mediaHandler.CreateUploadURL)
				mediaGroup.GET("/download-url", mediaHandler.GetDownloadURL)
			}
		}
	}
}
