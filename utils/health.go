package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Redis     []bool    `json:"redis"`
	Platform  bool      `json:"platform"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

// StartHealthMonitor performs periodic health checks and updates in-memory state.
// pingPlatform reports whether the upstream platform API answered.
func StartHealthMonitor(redisClients []*redis.Client, pingPlatform func(ctx context.Context) bool) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		ctx := context.Background()

		for range ticker.C {
			var redisHealth []bool

			for _, client := range redisClients {
				err := client.Ping(ctx).Err()
				redisHealth = append(redisHealth, err == nil)
			}

			platformHealthy := pingPlatform(ctx)

			mu.Lock()
			currentHealth = HealthStatus{
				Redis:     redisHealth,
				Platform:  platformHealthy,
				CheckedAt: time.Now(),
			}
			mu.Unlock()
		}
	}()
}
