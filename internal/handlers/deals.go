package handlers

import (
	"net/http"

	"crm-integrator/internal/models"
	"crm-integrator/internal/store"

	"github.com/gin-gonic/gin"
)

type dealPayload struct {
	CustomerID        *string  `json:"customer_id"`
	Title             *string  `json:"title"`
	Amount            *float64 `json:"amount"`
	Status            *string  `json:"status"`
	ExpectedCloseDate *string  `json:"expected_close_date"`
	Description       *string  `json:"description"`
}

func ListDeals(c *gin.Context) {
	var (
		deals []models.Deal
		err   error
	)
	if term := c.Query("search"); term != "" {
		deals, err = Store.SearchDeals(term)
	} else {
		deals, err = Store.ListDeals()
	}
	if err != nil {
		apiError(c, err)
		return
	}

	if deals == nil {
		deals = []models.Deal{}
	}

	if customerID := c.Query("customer_id"); customerID != "" {
		filtered := make([]models.Deal, 0, len(deals))
		for _, deal := range deals {
			if deal.CustomerID == customerID {
				filtered = append(filtered, deal)
			}
		}
		deals = filtered
	}

	c.JSON(http.StatusOK, deals)
}

func GetDeal(c *gin.Context) {
	deal, err := Store.GetDeal(c.Param("id"))
	if err != nil {
		apiError(c, err)
		return
	}
	c.JSON(http.StatusOK, deal)
}

func CreateDeal(c *gin.Context) {
	var payload dealPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
		return
	}

	var missing []string
	if strValue(payload.Title) == "" {
		missing = append(missing, "title")
	}
	if payload.Amount == nil {
		missing = append(missing, "amount")
	}
	if strValue(payload.Status) == "" {
		missing = append(missing, "status")
	}
	if strValue(payload.CustomerID) == "" {
		missing = append(missing, "customer_id")
	}
	if missingFields(c, missing) {
		return
	}

	deal, err := Store.CreateDeal(store.DealInput{
		CustomerID:        strValue(payload.CustomerID),
		Title:             strValue(payload.Title),
		Amount:            *payload.Amount,
		Status:            strValue(payload.Status),
		ExpectedCloseDate: strValue(payload.ExpectedCloseDate),
		Description:       strValue(payload.Description),
	})
	if err != nil {
		apiError(c, err)
		return
	}

	audit(c, store.KindDeal, deal.ID, "create", "Created deal: "+deal.Title)
	c.JSON(http.StatusCreated, deal)
}

func UpdateDeal(c *gin.Context) {
	var payload dealPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
		return
	}

	deal, err := Store.UpdateDeal(c.Param("id"), store.DealPatch{
		CustomerID:        payload.CustomerID,
		Title:             payload.Title,
		Amount:            payload.Amount,
		Status:            payload.Status,
		ExpectedCloseDate: payload.ExpectedCloseDate,
		Description:       payload.Description,
	})
	if err != nil {
		apiError(c, err)
		return
	}

	audit(c, store.KindDeal, deal.ID, "update", "Updated deal: "+deal.Title)
	c.JSON(http.StatusOK, deal)
}

func DeleteDeal(c *gin.Context) {
	id := c.Param("id")
	if err := Store.DeleteDeal(id); err != nil {
		apiError(c, err)
		return
	}

	audit(c, store.KindDeal, id, "delete", "Deleted deal")
	c.JSON(http.StatusOK, gin.H{"message": "Deal deleted successfully"})
}
