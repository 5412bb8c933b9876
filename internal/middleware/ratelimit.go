package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/tldm-bits/ordnance-service/internal/models"
)

// RateLimiter throttles expensive endpoints with a token bucket
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter creates a rate limiter allowing perMinute requests
// per minute with a burst of perMinute.
func NewRateLimiter(perMinute int) *RateLimiter {
	if perMinute < 1 {
		perMinute = 1
	}
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(float64(perMinute)/60.0), perMinute),
	}
}

// Limit rejects requests exceeding the configured rate with 429
func (r *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !r.limiter.Allow() {
			c.JSON(http.StatusTooManyRequests, models.ErrorResponse{
				Error:   "rate_limited",
				Message: "Too many requests, retry later",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
