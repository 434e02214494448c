package modules

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// HealthModule exposes a liveness endpoint that also pings the store.
type HealthModule struct {
	Client *mongo.Client
}

func NewHealthModule(client *mongo.Client) *HealthModule {
	return &HealthModule{Client: client}
}

func (m *HealthModule) Register(rg *gin.RouterGroup) {
	rg.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		status := "ok"
		code := http.StatusOK
		if err := m.Client.Ping(ctx, readpref.Primary()); err != nil {
			status = "degraded"
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{"status": status})
	})
}
