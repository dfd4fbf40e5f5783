package middleware

import (
	"net/http"
	"strings"

	professionalRepo "beautybook/database/repository/professional"
	"beautybook/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthMiddleware authenticates a professional from a Bearer token. The
// token must validate and its hash must match the account's current session
// hash, so a login from another device revokes older tokens.
func JWTAuthMiddleware(repo professionalRepo.ProfessionalRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		id, err := utils.ExtractIDFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		prof, err := repo.GetByID(id)
		if err != nil || prof == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Account not found"})
			return
		}
		if prof.Security.TokenHash != utils.HashToken(tokenString) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has been revoked"})
			return
		}

		c.Set("professionalID", prof.ID)
		c.Next()
	}
}
