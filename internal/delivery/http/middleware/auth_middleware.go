package middleware

import (
	"fmt"
	"strings"

	"github.com/Hemasri-atike/Ihire-sub000/config"
	"github.com/Hemasri-atike/Ihire-sub000/internal/delivery/http/response"
	"github.com/Hemasri-atike/Ihire-sub000/internal/domain"
	"github.com/Hemasri-atike/Ihire-sub000/pkg/auth"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware verifies the bearer token and resolves the employer row
// behind it. Role and company membership always come from the database;
// token claims only establish identity.
func AuthMiddleware(jwksProvider *auth.Provider, cfg *config.Config, employerUC domain.EmployerUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		var tokenString string

		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		} else {
			cookie, err := c.Cookie("auth_token")
			if err == nil && cookie != "" {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header or auth_token cookie required", nil)
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); ok {
				if cfg.JWTSecret == "" {
					return nil, fmt.Errorf("HS256 token received but JWT_SECRET is not configured")
				}
				return []byte(cfg.JWTSecret), nil
			}

			if _, ok := token.Method.(*jwt.SigningMethodRSA); ok {
				kid, _ := token.Header["kid"].(string)
				if kid == "" {
					return nil, fmt.Errorf("kid header not found")
				}
				return jwksProvider.PublicKey(kid)
			}

			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		})

		if err != nil || !token.Valid {
			response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "Invalid claims", nil)
			c.Abort()
			return
		}

		sub, _ := claims["sub"].(string)
		if sub == "" {
			response.Error(c, http.StatusUnauthorized, "Invalid claims", nil)
			c.Abort()
			return
		}

		// The employer row is the source of truth for role, email and
		// company membership. Claims may be stale.
		employer, err := employerUC.GetCurrent(c.Request.Context(), sub)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Employer account not found", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), sub)
		c.Set(string(domain.KeyUserEmail), employer.Email)
		c.Set(string(domain.KeyUserRole), employer.Role)
		c.Set(string(domain.KeyEmployerID), employer.ID)
		c.Set(string(domain.KeyEmployer), employer)

		c.Next()
	}
}
