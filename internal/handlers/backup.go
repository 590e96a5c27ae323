package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Backup снимает копию всех файлов коллекций в data/backup/<timestamp>.
func Backup(c *gin.Context) {
	timestamp := time.Now().Format("20060102_150405")

	if _, err := Store.Backup(timestamp); err != nil {
		apiError(c, err)
		return
	}

	audit(c, "backup", timestamp, "create", "Created data backup")
	c.JSON(http.StatusOK, gin.H{
		"message": "Backup created successfully with timestamp " + timestamp,
	})
}
