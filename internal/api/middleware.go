package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

// Constants for context keys
const ContextUserIDKey = "userID"

// jwtClaims defines the structure we expect in the JWT payload.
// Mirroring the structure used in authService.generateJWT
type jwtClaims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

// AuthMiddleware creates a Gin middleware for JWT authentication. Requests
// without a valid bearer token are rejected.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := userIDFromHeader(c, jwtSecret)
		if err != nil {
			abortWithError(c, http.StatusUnauthorized, err.Error())
			return
		}
		c.Set(ContextUserIDKey, userID)
		c.Next()
	}
}

// OptionalAuthMiddleware resolves the user identity when a valid bearer
// token is present but lets anonymous requests through. Chat and workout
// endpoints serve signed-out users from local storage, so they cannot
// demand a token.
func OptionalAuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			userID, err := userIDFromHeader(c, jwtSecret)
			if err != nil {
				// A present but invalid token is still an error;
				// silently downgrading to guest would hide it.
				abortWithError(c, http.StatusUnauthorized, err.Error())
				return
			}
			c.Set(ContextUserIDKey, userID)
		}
		c.Next()
	}
}

func userIDFromHeader(c *gin.Context, jwtSecret string) (string, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", errors.New("Authorization header is missing")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errors.New("Authorization header format must be Bearer {token}")
	}

	claims := &jwtClaims{}
	token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(jwtSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", errors.New("Token has expired")
		}
		return "", fmt.Errorf("Invalid token: %v", err)
	}
	if !token.Valid || claims.UserID == "" {
		return "", errors.New("Invalid token or missing claims")
	}
	return claims.UserID, nil
}

// Helper to return JSON error response and abort request
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// getUserIDFromContext returns the authenticated user's ID; handlers behind
// AuthMiddleware can rely on it being set.
func getUserIDFromContext(c *gin.Context) (string, error) {
	idRaw, exists := c.Get(ContextUserIDKey)
	if !exists {
		return "", errors.New("user ID not found in context")
	}
	idStr, ok := idRaw.(string)
	if !ok {
		return "", errors.New("invalid user ID type in context")
	}
	return idStr, nil
}

// userIDOrEmpty returns the authenticated user's ID, or "" for guests.
func userIDOrEmpty(c *gin.Context) string {
	idRaw, exists := c.Get(ContextUserIDKey)
	if !exists {
		return ""
	}
	idStr, _ := idRaw.(string)
	return idStr
}
