package constants

import "fmt"

const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

// Template pesan error role
const (
	ErrOnlyTeachersCanAccess = "❌ Hanya teacher atau admin yang boleh mengakses fitur %s."
	ErrOnlyAdminsCanAccess   = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrLoginRequired         = "❌ Fitur %s hanya untuk pengguna yang sudah login."
)

// Fungsi helper untuk menghasilkan pesan error dinamis
func RoleErrorTeacher(feature string) string {
	return fmt.Sprintf(ErrOnlyTeachersCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorLogin(feature string) string {
	return fmt.Sprintf(ErrLoginRequired, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleStudent,
		RoleTeacher,
		RoleAdmin,
	}

	TeacherAndAbove = []string{
		RoleTeacher,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)
