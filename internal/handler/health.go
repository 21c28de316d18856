package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Health pings Postgres and Redis with a short deadline and reports
// per-dependency status. No credentials or driver errors leak out.
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	pingDB := func(ctx context.Context) bool {
		sqlDB, err := db.DB()
		return err == nil && sqlDB.PingContext(ctx) == nil
	}
	pingRedis := func(ctx context.Context) bool {
		return rdb.Ping(ctx).Err() == nil
	}

	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		deps := gin.H{}
		ok := true
		for nombre, ping := range map[string]func(context.Context) bool{
			"postgres": pingDB,
			"redis":    pingRedis,
		} {
			if ping(ctx) {
				deps[nombre] = "ok"
			} else {
				deps[nombre] = "sin conexión"
				ok = false
			}
		}

		status := http.StatusOK
		if !ok {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{"ok": ok, "dependencias": deps})
	}
}
