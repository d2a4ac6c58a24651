package auth

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"encuestas_backend/internals/configs"
)

// AuthMiddleware memverifikasi JWT (header/cookie), menolak user nonaktif,
// lalu menyimpan klaim ke Locals.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		claims, err := parseAndValidate(tokenString)
		if err != nil {
			log.Println("[ERROR] Gagal validasi token:", err)
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		userID, err := extractUserID(claims)
		if err != nil {
			log.Println("[ERROR] user_id:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or missing user ID")
		}

		if err := ensureUserActive(db, userID); err != nil {
			log.Println("[ERROR] ensureUserActive:", err)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - User not found")
			}
			return fiber.NewError(fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
		}

		c.Locals("user_id", userID.String())
		storeBasicClaimsToLocals(c, claims)
		return c.Next()
	}
}

// OptionalAuthMiddleware: token opsional. Tanpa token -> lanjut anonim;
// token ada tapi tidak valid -> tetap 401.
func OptionalAuthMiddleware(db *gorm.DB) fiber.Handler {
	required := AuthMiddleware(db)
	return func(c *fiber.Ctx) error {
		if _, err := extractBearerToken(c); err != nil {
			return c.Next()
		}
		return required(c)
	}
}

func parseAndValidate(tokenString string) (jwt.MapClaims, error) {
	secretKey := configs.JWTSecret
	if secretKey == "" {
		return nil, errors.New("missing JWT secret")
	}

	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secretKey), nil
	}); err != nil {
		return nil, errors.New("Unauthorized - Token parse error")
	}

	if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
		return nil, errors.New("Unauthorized - Token expired")
	}
	return claims, nil
}
