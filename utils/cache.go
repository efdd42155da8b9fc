// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"barberia/config"

	"github.com/go-redis/redis/v8"
)

// SessionClient holds the booking wizard sessions.
var SessionClient *redis.Client

// InitSessionCache connects to the Redis DB reserved for wizard sessions.
func InitSessionCache() {
	SessionClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := SessionClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Sessions): %v", err)
	}
}

// GetSessionClient returns the wizard session client.
func GetSessionClient() *redis.Client {
	if SessionClient == nil {
		InitSessionCache()
	}
	return SessionClient
}
