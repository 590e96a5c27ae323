package handlers

import (
	"crm-integrator/internal/database"
	"crm-integrator/internal/genesys"
	"crm-integrator/internal/models"
	"crm-integrator/internal/store"
	"crm-integrator/internal/sync"

	"github.com/gin-gonic/gin"
)

var (
	Store   *store.Store
	Mapper  *sync.Mapper
	Genesys *genesys.Client
)

// Setup отдаёт хендлерам их зависимости; вызывается один раз при старте.
func Setup(s *store.Store, m *sync.Mapper, g *genesys.Client) {
	Store = s
	Mapper = m
	Genesys = g
}

// audit пишет действие API-пользователя в журнал
func audit(c *gin.Context, entity, entityID, action, details string) {
	if v, ok := c.Get("APIUser"); ok {
		if user, ok := v.(models.User); ok {
			database.CreateAuditLog(user.ID, entity, entityID, action, details)
		}
	}
}
