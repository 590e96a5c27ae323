package handlers

import (
	"errors"
	"net/http"
	"strings"

	"crm-integrator/internal/genesys"
	"crm-integrator/internal/store"

	"github.com/gin-gonic/gin"
)

// apiError переводит ошибки ядра в JSON-ответ: not found — 404,
// битая ссылка — 400, сбой вендора — 502, остальное — 500.
func apiError(c *gin.Context, err error) {
	var notFound *store.NotFoundError
	var referential *store.ReferentialError
	var vendor *genesys.VendorError

	switch {
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
	case errors.As(err, &referential):
		c.JSON(http.StatusBadRequest, gin.H{"error": referential.Error()})
	case errors.As(err, &vendor):
		c.JSON(http.StatusBadGateway, gin.H{"error": vendor.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// missingFields отвечает 400 со списком незаполненных обязательных
// полей; true — если такие были.
func missingFields(c *gin.Context, missing []string) bool {
	if len(missing) == 0 {
		return false
	}
	c.JSON(http.StatusBadRequest, gin.H{
		"error": "Missing required fields: " + strings.Join(missing, ", "),
	})
	return true
}

func strValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
