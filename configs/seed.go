package configs

import (
	"log"

	"gateway/entity"

	"golang.org/x/crypto/bcrypt"
)

// SeedStaff creates the initial admin and desk accounts from env.
func SeedStaff() error {
	db := DB()

	accounts := []struct {
		emailKey, passKey, role, name string
	}{
		{"ADMIN_EMAIL", "ADMIN_PASSWORD", "admin", "Admin"},
		{"DESK_EMAIL", "DESK_PASSWORD", "desk", "Front Desk"},
	}

	for _, a := range accounts {
		email := getEnv(a.emailKey, "")
		pass := getEnv(a.passKey, "")
		if email == "" || pass == "" {
			log.Printf("skip seeding %s account: missing %s/%s", a.role, a.emailKey, a.passKey)
			continue
		}

		var count int64
		db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
		if count > 0 {
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user := entity.User{
			Email:    email,
			Password: string(hash),
			Name:     a.name,
			Role:     a.role,
		}
		if err := db.Create(&user).Error; err != nil {
			return err
		}
		log.Printf("seeded %s account: %s", a.role, email)
	}
	return nil
}
