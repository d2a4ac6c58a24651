package users

import (
	"encoding/json"
	"log"
	"os"

	userModel "encuestas_backend/internals/features/users/user/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserSeed struct {
	UserName string `json:"user_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func SeedUsersFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file users:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var seeds []UserSeed
	if err := json.Unmarshal(file, &seeds); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	inserted := 0
	for _, s := range seeds {
		var count int64
		if err := db.Model(&userModel.UserModel{}).
			Where("email = ?", s.Email).
			Count(&count).Error; err != nil {
			log.Fatalf("❌ Gagal cek user existing: %v", err)
		}
		if count > 0 {
			log.Printf("ℹ️ User '%s' sudah ada, dilewati.", s.Email)
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(s.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("❌ Gagal hash password seed: %v", err)
		}

		user := userModel.UserModel{
			UserName: s.UserName,
			Email:    s.Email,
			Password: string(hashed),
			Role:     s.Role,
			IsActive: true,
		}
		if err := db.Create(&user).Error; err != nil {
			log.Fatalf("❌ Gagal insert user seed: %v", err)
		}
		inserted++
	}

	if inserted > 0 {
		log.Printf("✅ Berhasil insert %d users", inserted)
	} else {
		log.Println("ℹ️ Tidak ada user baru untuk diinsert.")
	}
}
