package models

import "time"

type AuditLog struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time

	UserID uint
	User   User

	Entity   string `gorm:"size:50;not null"` // "customer", "contact", "deal"
	EntityID string `gorm:"size:64"`          // uuid записи
	Action   string `gorm:"size:50;not null"` // "create", "update", "delete", "import" и т.п.
	Details  string `gorm:"type:text"`
}
