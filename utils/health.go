package utils

import (
	"context"
	"sync"
	"time"
)

// HealthCheck pings one external dependency.
type HealthCheck struct {
	Name string
	Ping func(ctx context.Context) error
}

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Healthy   bool            `json:"healthy"`
	Services  map[string]bool `json:"services"`
	CheckedAt time.Time       `json:"checkedAt"`
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

// RunHealthChecks pings every dependency once and stores the snapshot.
func RunHealthChecks(ctx context.Context, checks []HealthCheck) HealthStatus {
	status := HealthStatus{
		Healthy:   true,
		Services:  make(map[string]bool, len(checks)),
		CheckedAt: time.Now(),
	}
	for _, check := range checks {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		ok := check.Ping(pingCtx) == nil
		cancel()

		status.Services[check.Name] = ok
		status.Healthy = status.Healthy && ok
	}

	mu.Lock()
	currentHealth = status
	mu.Unlock()
	return status
}

// StartHealthMonitor performs periodic health checks until ctx is done.
func StartHealthMonitor(ctx context.Context, checks []HealthCheck, interval time.Duration) {
	go func() {
		RunHealthChecks(ctx, checks)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				RunHealthChecks(ctx, checks)
			}
		}
	}()
}
