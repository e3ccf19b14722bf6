package utils

import (
	"errors"
	"log"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/joho/godotenv"
)

func init() {
	// It's okay if the .env file isn't found; environment variables may be set elsewhere
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading .env file:", err)
	}
}

func jwtSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// GenerateAdminToken creates a signed session token for the admin dashboard.
func GenerateAdminToken(email string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": email,
		"role":  "admin",
		"exp":   time.Now().Add(72 * time.Hour).Unix(),
	})

	return token.SignedString(jwtSecret())
}

// ExtractAdminFromHeader validates a "Bearer <token>" Authorization header
// and returns the admin email it was issued to.
func ExtractAdminFromHeader(authHeader string) (string, error) {
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", errors.New("invalid authorization header format")
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}

	if role, _ := claims["role"].(string); role != "admin" {
		return "", errors.New("token is not an admin token")
	}

	email, ok := claims["email"].(string)
	if !ok {
		return "", errors.New("invalid email in token")
	}

	return email, nil
}
