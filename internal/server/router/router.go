package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rlopes-dev/estoque-painel/internal/server/handlers"
)

// New wires the Gin engine with required routes and middlewares.
func New(panel *handlers.PanelHandler, export *handlers.ExportHandler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	r.GET("/painel/estado", panel.State)
	r.POST("/painel/atualizar", panel.Refresh)
	r.PUT("/painel/estoque/busca", panel.Search)
	r.POST("/painel/forms/:id", panel.SubmitForm)
	r.POST("/painel/usuarios", panel.CreateUser)
	r.DELETE("/painel/usuarios/:id", panel.DeleteUser)
	r.GET("/painel/notificacoes", panel.Notifications)

	r.GET("/export/estoque.csv", export.Stock)
	r.GET("/export/movimentacoes.csv", export.Movements)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
