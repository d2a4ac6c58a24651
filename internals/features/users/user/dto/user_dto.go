package dto

import (
	"strings"

	userModel "encuestas_backend/internals/features/users/user/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// RegisterRequest — registrasi publik / create by admin
type RegisterRequest struct {
	UserName string `json:"user_name" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"omitempty,oneof=student teacher admin"`
}

// Normalize — trim & normalisasi dasar
func (r *RegisterRequest) Normalize() {
	r.UserName = strings.TrimSpace(r.UserName)
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
	r.Role = strings.TrimSpace(r.Role)
}

// ToModel — konversi ke model (hash password di service!)
func (r *RegisterRequest) ToModel() *userModel.UserModel {
	return &userModel.UserModel{
		UserName: r.UserName,
		Email:    r.Email,
		Password: r.Password,
		Role:     r.Role,
		IsActive: true,
	}
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginGoogleRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

// UpdateProfileRequest — partial update (pointer agar bisa bedakan omit vs null)
type UpdateProfileRequest struct {
	FullName    *string  `json:"full_name,omitempty" validate:"omitempty,max=100"`
	PhoneNumber *string  `json:"phone_number,omitempty" validate:"omitempty,max=20"`
	Bio         *string  `json:"bio,omitempty" validate:"omitempty,max=300"`
	Interests   []string `json:"interests,omitempty"`
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type UserResponse struct {
	ID       string `json:"id"`
	UserName string `json:"user_name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	IsActive bool   `json:"is_active"`
}

func ToUserResponse(u userModel.UserModel) UserResponse {
	return UserResponse{
		ID:       u.ID.String(),
		UserName: u.UserName,
		Email:    u.Email,
		Role:     u.Role,
		IsActive: u.IsActive,
	}
}

func ToUserResponses(us []userModel.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(us))
	for _, u := range us {
		out = append(out, ToUserResponse(u))
	}
	return out
}
