package handlers

import (
	"net/http"

	"crm-integrator/internal/models"
	"crm-integrator/internal/store"

	"github.com/gin-gonic/gin"
)

// customerPayload — и создание, и частичное обновление: отсутствующее
// в JSON поле остаётся nil и не трогает запись.
type customerPayload struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
	Website  *string `json:"website"`
	Industry *string `json:"industry"`
	Notes    *string `json:"notes"`
}

func ListCustomers(c *gin.Context) {
	var (
		customers []models.Customer
		err       error
	)
	if term := c.Query("search"); term != "" {
		customers, err = Store.SearchCustomers(term)
	} else {
		customers, err = Store.ListCustomers()
	}
	if err != nil {
		apiError(c, err)
		return
	}
	if customers == nil {
		customers = []models.Customer{}
	}
	c.JSON(http.StatusOK, customers)
}

func GetCustomer(c *gin.Context) {
	customer, err := Store.GetCustomer(c.Param("id"))
	if err != nil {
		apiError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func CreateCustomer(c *gin.Context) {
	var payload customerPayload
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
	if missingFields(c, missing) {
		return
	}

	customer, err := Store.CreateCustomer(store.CustomerInput{
		Name:     strValue(payload.Name),
		Email:    strValue(payload.Email),
		Phone:    strValue(payload.Phone),
		Address:  strValue(payload.Address),
		Website:  strValue(payload.Website),
		Industry: strValue(payload.Industry),
		Notes:    strValue(payload.Notes),
	})
	if err != nil {
		apiError(c, err)
		return
	}

	audit(c, store.KindCustomer, customer.ID, "create", "Created customer: "+customer.Name)
	c.JSON(http.StatusCreated, customer)
}

func UpdateCustomer(c *gin.Context) {
	var payload customerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
		return
	}

	customer, err := Store.UpdateCustomer(c.Param("id"), store.CustomerPatch{
		Name:     payload.Name,
		Email:    payload.Email,
		Phone:    payload.Phone,
		Address:  payload.Address,
		Website:  payload.Website,
		Industry: payload.Industry,
		Notes:    payload.Notes,
	})
	if err != nil {
		apiError(c, err)
		return
	}

	audit(c, store.KindCustomer, customer.ID, "update", "Updated customer: "+customer.Name)
	c.JSON(http.StatusOK, customer)
}

func DeleteCustomer(c *gin.Context) {
	id := c.Param("id")
	if err := Store.DeleteCustomer(id); err != nil {
		apiError(c, err)
		return
	}

	audit(c, store.KindCustomer, id, "delete", "Deleted customer and its contacts/deals")
	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}
