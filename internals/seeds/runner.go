package seeds

import (
	surveys "encuestas_backend/internals/seeds/surveys"
	users "encuestas_backend/internals/seeds/users"

	"gorm.io/gorm"
)

// RunAllSeeds mengisi data awal. Urutan penting: users dulu
// (survei butuh creator).
func RunAllSeeds(db *gorm.DB) {
	users.SeedUsersFromJSON(db, "internals/seeds/users/data_users.json")
	surveys.SeedSurveysFromJSON(db, "internals/seeds/surveys/data_surveys.json")
}
