package database

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"crm-integrator/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Init открывает БД пользователей и журнала аудита. Пустой dsn — sqlite
// рядом с данными CRM, непустой — postgres с ретраями на старте.
func Init(dsn, dataDir string) {
	var err error

	if dsn == "" {
		if err := os.MkdirAll(dataDir, 0o755); err != nil {
			log.Fatalf("failed to create data dir: %v", err)
		}
		path := filepath.Join(dataDir, "crm.db")
		DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to open sqlite db %s: %v", path, err)
		}
		log.Printf("opened sqlite db at %s", path)
	} else {
		const maxAttempts = 10
		for i := 1; i <= maxAttempts; i++ {
			log.Printf("trying to connect to DB (attempt %d/%d)...", i, maxAttempts)

			DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
			if err == nil {
				log.Println("connected to DB successfully")
				break
			}

			log.Printf("failed to connect to DB: %v", err)
			time.Sleep(2 * time.Second)
		}
		if err != nil {
			log.Fatalf("failed to connect to db after %d attempts: %v", maxAttempts, err)
		}
	}

	// миграции
	err = DB.AutoMigrate(
		&models.User{},
		&models.AuditLog{},
	)
	if err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	createDefaultAdmin()
}

// админ только из кода/конфига
func createDefaultAdmin() {
	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin@crm.local"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "Admin123!"
	}

	var count int64
	if err := DB.Model(&models.User{}).
		Where("is_admin = ?", true).
		Count(&count).Error; err != nil {
		log.Printf("failed to check admin user: %v", err)
		return
	}
	if count > 0 {
		// админ уже есть — ничего не делаем
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("failed to hash default admin password: %v", err)
		return
	}

	admin := models.User{
		Username:     username,
		PasswordHash: string(hash),
		IsAdmin:      true,
	}

	if err := DB.Create(&admin).Error; err != nil {
		log.Printf("failed to create default admin: %v", err)
		return
	}

	log.Printf("created default admin user: %s (password: %s)", username, password)
}
