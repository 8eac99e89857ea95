package middleware

import (
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware adds CORS headers for the frontend.
//
// Origin policy:
// - Production: only the explicit production domains
// - Development: localhost origins (disabled in release mode)
func CORSMiddleware() gin.HandlerFunc {
	isProduction := os.Getenv("GIN_MODE") == "release"

	productionOrigins := map[string]bool{
		"https://www.ihire.example.com": true,
		"https://ihire.example.com":     true,
	}

	devOrigins := map[string]bool{
		"http://localhost:3000": true,
		"http://127.0.0.1:3000": true,
	}

	// Extra origins from env, comma separated
	extra := os.Getenv("CORS_ALLOWED_ORIGINS")

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		allowed := productionOrigins[origin]
		if !allowed && !isProduction {
			allowed = devOrigins[origin]
		}
		if !allowed && extra != "" {
			for _, o := range strings.Split(extra, ",") {
				if strings.TrimSpace(o) == origin {
					allowed = true
					break
				}
			}
		}

		if allowed {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization, X-Request-ID")
		}

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
