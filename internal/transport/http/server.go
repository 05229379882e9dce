package http

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/vovakirdan/wirematch-server/internal/config"
	"github.com/vovakirdan/wirematch-server/internal/core"
)

// NewServer builds the HTTP server: health, stats, and the WebSocket
// upgrade route.
func NewServer(hub *core.Hub, cfg config.Config, logger *zerolog.Logger) *stdhttp.Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), LoggerMiddleware(logger))

	api := NewAPIHandlers(hub, logger)
	router.GET("/healthz", api.Health)
	router.GET("/api/stats", api.Stats)
	router.GET("/ws", gin.WrapH(NewWSHandler(hub, cfg.MaxFrameBytes, logger)))

	return &stdhttp.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}
