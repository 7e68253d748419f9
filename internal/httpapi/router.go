package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rmartin/promptsynth/internal/service"
	"github.com/rmartin/promptsynth/internal/session"
)

// NewRouter wires the JSON API the browser frontend talks to.
func NewRouter(generator *service.Generator, sessions *session.Manager, devMode bool, logger *zap.Logger) http.Handler {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	api := &API{
		generator: generator,
		sessions:  sessions,
		devMode:   devMode,
		logger:    logger,
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	v1.Use(api.ensureSession)
	{
		v1.POST("/login", api.login)
		v1.POST("/logout", api.logout)
		v1.GET("/session", api.currentSession)
		v1.GET("/meta", api.meta)
		v1.GET("/tones", api.listTones)
		v1.GET("/formats", api.listFormats)
		v1.GET("/templates", api.listTemplates)
		v1.GET("/templates/:name", api.getTemplate)

		authed := v1.Group("")
		authed.Use(api.requireUser)
		{
			authed.POST("/templates/select", api.selectTemplate)
			authed.POST("/templates/surprise", api.surpriseTemplate)
			authed.POST("/generate", api.generate)
			authed.POST("/remix", api.remix)
			authed.POST("/transcribe", api.transcribe)
			authed.POST("/prompt/download", api.downloadPrompt)
			authed.GET("/history", api.listHistory)
			authed.GET("/history/export", api.exportHistory)
		}
	}

	return r
}
