package controller

import (
	"errors"
	"io"
	"log"

	userDto "encuestas_backend/internals/features/users/user/dto"
	userModel "encuestas_backend/internals/features/users/user/model"
	helper "encuestas_backend/internals/helpers"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var validate = validator.New()

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// GET /api/v1/users/me
func (ctrl *UserController) GetMe(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	var profile userModel.UsersProfileModel
	if err := ctrl.DB.First(&profile, "user_id = ?", userID).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil profile")
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"user":    userDto.ToUserResponse(user),
		"profile": profile,
	})
}

// PATCH /api/v1/users/me
func (ctrl *UserController) UpdateMe(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}

	var req userDto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var profile userModel.UsersProfileModel
	if err := ctrl.DB.First(&profile, "user_id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Profile not found")
	}

	updates := map[string]interface{}{}
	if req.FullName != nil {
		updates["full_name"] = *req.FullName
	}
	if req.PhoneNumber != nil {
		updates["phone_number"] = *req.PhoneNumber
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}
	if req.Interests != nil {
		raw, err := sonicMarshalInterests(req.Interests)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid interests")
		}
		updates["interests"] = raw
	}
	if len(updates) == 0 {
		return helper.JsonOK(c, "Tidak ada perubahan", profile)
	}

	if err := ctrl.DB.Model(&profile).Updates(updates).Error; err != nil {
		log.Println("[ERROR] Gagal update profile:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update profile")
	}

	return helper.JsonUpdated(c, "Profile berhasil diperbarui", profile)
}

// PATCH /api/v1/users/me/avatar — multipart "avatar": jpeg/png/webp,
// di-resize lalu disimpan sebagai webp.
func (ctrl *UserController) UpdateMyAvatar(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File avatar wajib diunggah")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Gagal membuka file avatar")
	}
	defer src.Close()

	raw, err := io.ReadAll(src)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Gagal membaca file avatar")
	}

	url, err := helper.SaveAvatarWebP(raw, fileHeader.Filename)
	if err != nil {
		log.Println("[ERROR] Gagal konversi avatar:", err)
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "File avatar tidak valid")
	}

	if err := ctrl.DB.Model(&userModel.UsersProfileModel{}).
		Where("user_id = ?", userID).
		Update("photo_url", url).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save avatar")
	}

	return helper.JsonUpdated(c, "Avatar berhasil diperbarui", fiber.Map{"photo_url": url})
}

// GET /api/v1/users — admin only, paginated
func (ctrl *UserController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&userModel.UserModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung users")
	}

	var users []userModel.UserModel
	if err := ctrl.DB.
		Order("created_at ASC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil users")
	}

	return helper.JsonList(c, "ok", userDto.ToUserResponses(users),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// DELETE /api/v1/users/:id — admin only; cascade eksplisit:
// answers -> profile -> user.
func (ctrl *UserController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID user tidak valid")
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM survey_answers WHERE survey_answer_user_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&userModel.UsersProfileModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&userModel.UserModel{}, "id = ?", id).Error
	})
	if err != nil {
		log.Println("[ERROR] Gagal hapus user:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete user")
	}

	return helper.JsonDeleted(c, "User berhasil dihapus", fiber.Map{"id": id})
}

func sonicMarshalInterests(interests []string) (datatypes.JSON, error) {
	b, err := sonic.Marshal(interests)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}
