package handlers

import (
	"net/http"
	"strconv"

	"crm-integrator/internal/store"

	"github.com/gin-gonic/gin"
)

func GenesysStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"configured": Genesys.IsConfigured()})
}

func pageQuery(c *gin.Context) (limit, page int) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "25"))
	if err != nil || limit <= 0 {
		limit = 25
	}
	page, err = strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page <= 0 {
		page = 1
	}
	return limit, page
}

func GenesysUsers(c *gin.Context) {
	limit, page := pageQuery(c)
	resp, err := Genesys.GetUsers(c.Request.Context(), limit, page)
	if err != nil {
		apiError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func GenesysQueues(c *gin.Context) {
	limit, page := pageQuery(c)
	resp, err := Genesys.GetQueues(c.Request.Context(), limit, page)
	if err != nil {
		apiError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ExportContacts выгружает все локальные контакты в Genesys. Ошибки по
// отдельным контактам не прерывают цикл и возвращаются в results.
func ExportContacts(c *gin.Context) {
	exported, results, err := Mapper.SyncAllContactsOut(c.Request.Context())
	if err != nil {
		apiError(c, err)
		return
	}

	audit(c, store.KindContact, "", "export", "Exported contacts to Genesys Cloud")
	c.JSON(http.StatusOK, gin.H{
		"exported": exported,
		"results":  results,
	})
}

type importRequest struct {
	CustomerID string `json:"customer_id"`
	Limit      int    `json:"limit"`
}

// ImportContacts забирает контакты из Genesys и создаёт их у указанного
// клиента.
func ImportContacts(c *gin.Context) {
	var req importRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
		return
	}
	if req.CustomerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: customer_id"})
		return
	}
	if req.Limit <= 0 {
		req.Limit = 25
	}

	created, err := Mapper.BulkImport(c.Request.Context(), req.CustomerID, req.Limit)
	if err != nil {
		apiError(c, err)
		return
	}

	audit(c, store.KindContact, "", "import", "Imported contacts from Genesys Cloud")
	c.JSON(http.StatusCreated, created)
}

type interactionDealRequest struct {
	CustomerID string `json:"customer_id"`
}

// InteractionDeal фиксирует взаимодействие Genesys как новую сделку.
func InteractionDeal(c *gin.Context) {
	var req interactionDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
		return
	}

	deal, err := Mapper.RecordInteractionAsDeal(c.Request.Context(), c.Param("id"), req.CustomerID)
	if err != nil {
		apiError(c, err)
		return
	}

	audit(c, store.KindDeal, deal.ID, "create", "Created deal from interaction "+deal.InteractionID)
	c.JSON(http.StatusCreated, deal)
}

// ScreenPop ищет клиента по точному номеру телефона входящего звонка.
func ScreenPop(c *gin.Context) {
	phone := c.Query("phone")
	if phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: phone"})
		return
	}

	customer, err := Store.FindCustomerByPhone(phone)
	if err != nil {
		apiError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}
