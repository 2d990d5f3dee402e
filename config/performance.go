package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

func slowThreshold() time.Duration {
	if env := os.Getenv("SLOW_REQUEST_MS"); env != "" {
		if ms, err := strconv.Atoi(env); err == nil {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return 200 * time.Millisecond
}

func PerformanceLogger() gin.HandlerFunc {
	threshold := slowThreshold()

	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)

		log.Printf("[PERF] %s %s | Status: %d | Time: %v",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			latency)

		if latency > threshold {
			log.Printf("SLOW REQUEST: %s %s took %v",
				c.Request.Method, c.Request.URL.Path, latency)
		}
	}
}
