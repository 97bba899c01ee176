package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"fintrack/internal/config"
	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

// TokenHeader is the request header carrying the auth token. The API predates
// Authorization/Bearer conventions on the client side, so the raw token
// travels in its own header.
const TokenHeader = "token"

// getJWTKey returns the JWT key from configuration
func getJWTKey() []byte {
	return []byte(config.Get().JWTSecret)
}

// JWTClaims represents the claims in the JWT
type JWTClaims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// GenerateToken generates a signed JWT for a user.
func GenerateToken(user *models.User) (string, error) {
	claims := &JWTClaims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(config.Get().JWTExpirationDur)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    "fintrack-api",
			Subject:   fmt.Sprintf("%d", user.ID),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(getJWTKey())
}

// VerifyToken parses a token string and validates its signing method,
// signature, and expiry. Decoding without verification is never acceptable
// here: a token that does not verify is treated as absent.
func VerifyToken(tokenString string) (*JWTClaims, error) {
	claims := &JWTClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return getJWTKey(), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// UserResolver resolves a verified user id claim to a stored user row.
type UserResolver interface {
	GetUserByID(id uint) (*models.User, error)
}

// Authentication verifies the token header, resolves the claimed user against
// the store, and attaches the user record to the request context. Requests
// with a missing or unverifiable token never reach the handler.
func Authentication(users UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader(TokenHeader)
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": gin.H{
				"code":    apperrors.ErrUnauthorized.Code,
				"message": "Please provide authentication token",
			}})
			c.Abort()
			return
		}

		claims, err := VerifyToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": gin.H{
				"code":    apperrors.ErrInvalidToken.Code,
				"message": apperrors.ErrInvalidToken.Message,
			}})
			c.Abort()
			return
		}

		user, err := users.GetUserByID(claims.UserID)
		if err != nil {
			status := http.StatusNotFound
			code := apperrors.ErrUserNotFound.Code
			message := apperrors.ErrUserNotFound.Message
			var appErr *apperrors.AppError
			if errors.As(err, &appErr) && appErr.Code != apperrors.ErrUserNotFound.Code {
				status = appErr.StatusCode
				code = appErr.Code
				message = appErr.Message
			}
			c.JSON(status, gin.H{"error": gin.H{"code": code, "message": message}})
			c.Abort()
			return
		}

		c.Set("userID", user.ID)
		c.Set("user", user)
		c.Next()
	}
}
