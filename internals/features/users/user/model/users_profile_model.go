package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type UsersProfileModel struct {
	// PK
	ID uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`

	// FK & Unique
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex:uq_users_profile_user_id" json:"user_id"`

	FullName    *string        `gorm:"column:full_name;size:100" json:"full_name,omitempty"`
	PhoneNumber *string        `gorm:"column:phone_number;size:20" json:"phone_number,omitempty"`
	Bio         *string        `gorm:"column:bio;size:300" json:"bio,omitempty"`
	PhotoURL    *string        `gorm:"column:photo_url;size:255" json:"photo_url,omitempty"`
	Interests   datatypes.JSON `gorm:"column:interests" json:"interests,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (UsersProfileModel) TableName() string { return "users_profile" }

func (p *UsersProfileModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
