package store

import "fmt"

const (
	KindCustomer = "customer"
	KindContact  = "contact"
	KindDeal     = "deal"
)

// NotFoundError — запись с таким id в коллекции отсутствует.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Kind, e.ID)
}

// ReferentialError — customer_id указывает на несуществующего клиента.
type ReferentialError struct {
	Kind         string
	Field        string
	ReferencedID string
}

func (e *ReferentialError) Error() string {
	return fmt.Sprintf("%s.%s references missing customer %s", e.Kind, e.Field, e.ReferencedID)
}
