package database

import "crm-integrator/internal/models"

// helper для записи в журнал аудита
func CreateAuditLog(userID uint, entity, entityID, action, details string) {
	if DB == nil {
		return
	}
	record := models.AuditLog{
		UserID:   userID,
		Entity:   entity,
		EntityID: entityID,
		Action:   action,
		Details:  details,
	}
	_ = DB.Create(&record).Error
}
