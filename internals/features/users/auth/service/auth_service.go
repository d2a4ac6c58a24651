package service

import (
	"errors"
	"log"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"encuestas_backend/internals/configs"
	"encuestas_backend/internals/constants"
	userDto "encuestas_backend/internals/features/users/user/dto"
	userModel "encuestas_backend/internals/features/users/user/model"
	helper "encuestas_backend/internals/helpers"
)

const accessTTLDefault = 24 * time.Hour

var validate = validator.New()

/* ==========================
   REGISTER
========================== */

func Register(db *gorm.DB, c *fiber.Ctx) error {
	var req userDto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	// Role teacher/admin hanya boleh diberikan oleh admin yang sudah login
	if req.Role != "" && req.Role != constants.RoleStudent {
		if helper.GetUserRole(c) != constants.RoleAdmin {
			return helper.JsonError(c, fiber.StatusForbidden, "Hanya admin yang boleh membuat akun "+req.Role)
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := req.ToModel()
	user.Password = string(hashed)

	if err := db.Create(user).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate") || strings.Contains(low, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
		}
		log.Println("[ERROR] Gagal membuat user:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	return helper.JsonCreated(c, "Registrasi berhasil", userDto.ToUserResponse(*user))
}

/* ==========================
   LOGIN (email + password)
========================== */

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var req userDto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var user userModel.UserModel
	err := db.First(&user, "email = ?", strings.ToLower(strings.TrimSpace(req.Email))).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan. Hubungi admin.")
	}

	return issueToken(c, user)
}

/* ==========================
   LOGIN GOOGLE
========================== */

func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	var req userDto.LoginGoogleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	// Verifikasi token Google
	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(req.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid Google ID Token")
	}

	claimSet, err := googleAuthIDTokenVerifier.Decode(req.IDToken)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to decode ID Token")
	}
	email, name, googleID := claimSet.Email, claimSet.Name, claimSet.Sub

	var user userModel.UserModel
	err = db.First(&user, "google_id = ?", googleID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// User belum ada -> buat baru sebagai student
		user = userModel.UserModel{
			UserName: name,
			Email:    email,
			Password: generateDummyPassword(),
			GoogleID: &googleID,
			Role:     constants.RoleStudent,
			IsActive: true,
		}
		if err := db.Create(&user).Error; err != nil {
			low := strings.ToLower(err.Error())
			if strings.Contains(low, "duplicate") || strings.Contains(low, "unique") {
				return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create Google user")
		}
	} else if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}

	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan. Hubungi admin.")
	}

	return issueToken(c, user)
}

/* ==========================
   ISSUE TOKEN
========================== */

func issueToken(c *fiber.Ctx, user userModel.UserModel) error {
	if configs.JWTSecret == "" {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Missing JWT Secret")
	}

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"id":    user.ID.String(),
		"email": user.Email,
		"role":  user.Role,
		"iat":   now.Unix(),
		"exp":   now.Add(accessTTLDefault).Unix(),
	}

	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat access token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  now.Add(accessTTLDefault),
	})

	return helper.JsonOK(c, "Login berhasil", fiber.Map{
		"user":         userDto.ToUserResponse(user),
		"access_token": accessToken,
	})
}

// Logout menghapus cookie access_token (idempotent).
func Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  time.Now().UTC().Add(-time.Hour),
		MaxAge:   -1,
	})
	return helper.JsonOK(c, "Logout successful", nil)
}

// Password dummy untuk akun Google (tidak pernah dipakai login biasa).
func generateDummyPassword() string {
	raw := time.Now().UTC().Format(time.RFC3339Nano) + "|google-auth"
	hashed, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		return raw
	}
	return string(hashed)
}
