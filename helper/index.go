package helper

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"movie_booking/config"
	"movie_booking/model"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

func JwtSecret() []byte {
	return []byte(config.Config("JWT_SECRET"))
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func GenerateAccessToken(claim model.TokenClaim) (string, error) {
	expiresMin, err := strconv.Atoi(config.ConfigDefault("JWT_EXPIRES_MIN", "60"))
	if err != nil {
		expiresMin = 60
	}

	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["userId"] = claim.UserId
	claims["email"] = claim.Email
	claims["role"] = claim.Role
	claims["exp"] = time.Now().Add(time.Duration(expiresMin) * time.Minute).Unix()

	return token.SignedString(JwtSecret())
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return JwtSecret(), nil
	})
}

// GetInfoUserFromToken reads the verified token stashed by middleware.Protected.
func GetInfoUserFromToken(c *fiber.Ctx) (model.TokenClaim, error) {
	u := c.Locals("user")
	token, ok := u.(*jwt.Token)
	if !ok || token == nil {
		return model.TokenClaim{}, errors.New("no token in request context")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return model.TokenClaim{}, errors.New("invalid token claims")
	}

	userIDFloat, ok := claims["userId"].(float64)
	if !ok || userIDFloat == 0 {
		return model.TokenClaim{}, errors.New("no userId in token claims")
	}

	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)

	return model.TokenClaim{
		UserId: uint(userIDFloat),
		Email:  email,
		Role:   role,
	}, nil
}
