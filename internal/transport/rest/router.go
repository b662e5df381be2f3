package rest

import (
	"book_translator/config"
	"book_translator/internal/transport/rest/middleware"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(cfg *config.Config, ctrl *Controller) *gin.Engine {
	if cfg.Env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	_ = router.SetTrustedProxies(nil)

	router.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger(), middleware.Metrics())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	ctrl.RegisterRoutes(router)

	return router
}
