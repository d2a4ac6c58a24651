package configs

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

var (
	JWTSecret      string
	GoogleClientID string

	// RequireAuth menentukan perilaku submit jawaban tanpa token:
	// true (default) -> 401, false -> fallback ke akun anonim.
	RequireAuth    bool
	AnonymousEmail string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
	} else {
		log.Println("✅ .env file berhasil dimuat!")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	GoogleClientID = GetEnv("GOOGLE_CLIENT_ID")

	RequireAuth = GetEnvBool("REQUIRE_AUTH", true)
	AnonymousEmail = GetEnvDefault("ANONYMOUS_EMAIL", "anonimo@encuestas.local")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET belum diset!")
	} else {
		log.Println("✅ JWT_SECRET berhasil dimuat.")
	}
	if !RequireAuth {
		log.Println("⚠️ REQUIRE_AUTH=false: submit jawaban tanpa token memakai akun anonim", AnonymousEmail)
	}
}

func GetEnv(key string) string {
	return os.Getenv(key)
}

func GetEnvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func GetEnvBool(key string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return def
	}
}
