package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// New builds the keep-alive web server. Hosting platforms idle the
// process without inbound traffic; this gives the pinger something to
// hit.
func New(env string) *gin.Engine {
	if env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "🤖 Бот работает! Готов к умножению!")
	})
	router.GET("/healthz", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	return router
}
