package handlers

import (
	"net/http"

	"crm-integrator/internal/models"
	"crm-integrator/internal/store"

	"github.com/gin-gonic/gin"
)

type contactPayload struct {
	CustomerID *string `json:"customer_id"`
	Name       *string `json:"name"`
	Email      *string `json:"email"`
	Phone      *string `json:"phone"`
	Position   *string `json:"position"`
	Notes      *string `json:"notes"`
}

func ListContacts(c *gin.Context) {
	var (
		contacts []models.Contact
		err      error
	)
	if term := c.Query("search"); term != "" {
		contacts, err = Store.SearchContacts(term)
	} else {
		contacts, err = Store.ListContacts()
	}
	if err != nil {
		apiError(c, err)
		return
	}

	if contacts == nil {
		contacts = []models.Contact{}
	}

	// опциональный фильтр по клиенту поверх списка или поиска
	if customerID := c.Query("customer_id"); customerID != "" {
		filtered := make([]models.Contact, 0, len(contacts))
		for _, contact := range contacts {
			if contact.CustomerID == customerID {
				filtered = append(filtered, contact)
			}
		}
		contacts = filtered
	}

	c.JSON(http.StatusOK, contacts)
}

func GetContact(c *gin.Context) {
	contact, err := Store.GetContact(c.Param("id"))
	if err != nil {
		apiError(c, err)
		return
	}
	c.JSON(http.StatusOK, contact)
}

func CreateContact(c *gin.Context) {
	var payload contactPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
		return
	}

	var missing []string
	if strValue(payload.Name) == "" {
		missing = append(missing, "name")
	}
	if strValue(payload.Email) == "" {
		missing = append(missing, "email")
	}
	if strValue(payload.Phone) == "" {
		missing = append(missing, "phone")
	}
	if strValue(payload.CustomerID) == "" {
		missing = append(missing, "customer_id")
	}
	if missingFields(c, missing) {
		return
	}

	contact, err := Store.CreateContact(store.ContactInput{
		CustomerID: strValue(payload.CustomerID),
		Name:       strValue(payload.Name),
		Email:      strValue(payload.Email),
		Phone:      strValue(payload.Phone),
		Position:   strValue(payload.Position),
		Notes:      strValue(payload.Notes),
	})
	if err != nil {
		apiError(c, err)
		return
	}

	audit(c, store.KindContact, contact.ID, "create", "Created contact: "+contact.Name)
	c.JSON(http.StatusCreated, contact)
}

func UpdateContact(c *gin.Context) {
	var payload contactPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
		return
	}

	contact, err := Store.UpdateContact(c.Param("id"), store.ContactPatch{
		CustomerID: payload.CustomerID,
		Name:       payload.Name,
		Email:      payload.Email,
		Phone:      payload.Phone,
		Position:   payload.Position,
		Notes:      payload.Notes,
	})
	if err != nil {
		apiError(c, err)
		return
	}

	audit(c, store.KindContact, contact.ID, "update", "Updated contact: "+contact.Name)
	c.JSON(http.StatusOK, contact)
}

func DeleteContact(c *gin.Context) {
	id := c.Param("id")
	if err := Store.DeleteContact(id); err != nil {
		apiError(c, err)
		return
	}

	audit(c, store.KindContact, id, "delete", "Deleted contact")
	c.JSON(http.StatusOK, gin.H{"message": "Contact deleted successfully"})
}
