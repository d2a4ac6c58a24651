package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel merepresentasikan tabel users di database
type UserModel struct {
	ID       uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	UserName string    `gorm:"column:user_name;size:50;not null" json:"user_name"`
	Email    string    `gorm:"column:email;size:255;unique;not null" json:"email"`
	Password string    `gorm:"column:password;not null" json:"-"`
	GoogleID *string   `gorm:"column:google_id;size:255;unique" json:"google_id,omitempty"`
	Role     string    `gorm:"column:role;type:varchar(20);not null;default:'student'" json:"role"`
	IsActive bool      `gorm:"column:is_active;not null;default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	if u.Role == "" {
		u.Role = "student"
	}
	return nil
}

// AfterCreate membuat baris profile kosong dalam transaksi yang sama
// (padanan auto-create profile saat user dibuat).
func (u *UserModel) AfterCreate(tx *gorm.DB) error {
	profile := UsersProfileModel{UserID: u.ID}
	return tx.Create(&profile).Error
}
