package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpHandler "clipstream/interfaces/http"
	"clipstream/interfaces/middleware"
)

func InitiateRouter(
	videoHandler httpHandler.IVideoHandler,
	webhookHandler httpHandler.IWebhookHandler,
	engagementHandler httpHandler.IEngagementHandler,
	commentHandler httpHandler.ICommentHandler,
	profileHandler httpHandler.IProfileHandler,
	secretKey string,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "https://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := middleware.Auth(secretKey)

	v1 := router.Group("v1")
	{
		v1.POST("/uploads", auth, videoHandler.CreateUploadURL)

		v1.POST("/videos", auth, videoHandler.Create)
		v1.GET("/videos", videoHandler.List)
		v1.GET("/videos/:id/resolve", videoHandler.Resolve)
		v1.GET("/videos/me", auth, videoHandler.ListMine)
		v1.GET("/videos/user/:id", videoHandler.ListUser)
		v1.DELETE("/videos/:id", auth, videoHandler.Delete)

		// The provider posts lifecycle events here; no bearer token.
		v1.POST("/mux/webhook", webhookHandler.HandleMuxWebhook)

		v1.POST("/likes/:videoId", auth, engagementHandler.ToggleLike)
		v1.GET("/likes/me", auth, engagementHandler.ListMyLikes)
		v1.GET("/likes/user/:id", engagementHandler.ListUserLikes)

		v1.POST("/dislikes/:videoId", auth, engagementHandler.ToggleDislike)
		v1.GET("/dislikes/me", auth, engagementHandler.ListMyDislikes)

		v1.POST("/follows/:id", auth, engagementHandler.ToggleFollow)
		v1.GET("/follows/followers/:id", auth, engagementHandler.ListFollowers)
		v1.GET("/follows/following/:id", auth, engagementHandler.ListFollowing)
		v1.GET("/follows/relationship/:id", auth, engagementHandler.Relationship)

		v1.GET("/comments/:videoId", commentHandler.ListByVideo)
		v1.POST("/comments/:videoId", auth, commentHandler.Create)
		v1.DELETE("/comments/:videoId/:commentId", auth, commentHandler.Delete)

		v1.GET("/profiles/me", auth, profileHandler.GetMe)
		v1.POST("/profiles/onboarding", auth, profileHandler.CompleteOnboarding)
	}

	return router
}
