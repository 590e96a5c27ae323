package store

import (
	"strings"

	"crm-integrator/internal/models"

	"github.com/google/uuid"
)

type ContactInput struct {
	CustomerID string
	Name       string
	Email      string
	Phone      string
	Position   string
	Notes      string
	VendorID   string
}

type ContactPatch struct {
	CustomerID *string
	Name       *string
	Email      *string
	Phone      *string
	Position   *string
	Notes      *string
}

func (s *Store) ListContacts() ([]models.Contact, error) {
	return decode[models.Contact](s.contacts)
}

func (s *Store) GetContact(id string) (models.Contact, error) {
	contacts, err := s.ListContacts()
	if err != nil {
		return models.Contact{}, err
	}
	for _, c := range contacts {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Contact{}, &NotFoundError{Kind: KindContact, ID: id}
}

func (s *Store) CreateContact(in ContactInput) (models.Contact, error) {
	// ссылка на клиента проверяется до записи
	ok, err := s.customerExists(in.CustomerID)
	if err != nil {
		return models.Contact{}, err
	}
	if !ok {
		return models.Contact{}, &ReferentialError{Kind: KindContact, Field: "customer_id", ReferencedID: in.CustomerID}
	}

	contacts, err := s.ListContacts()
	if err != nil {
		return models.Contact{}, err
	}

	now := s.now()
	contact := models.Contact{
		ID:         uuid.NewString(),
		CustomerID: in.CustomerID,
		Name:       in.Name,
		Email:      in.Email,
		Phone:      in.Phone,
		Position:   in.Position,
		Notes:      in.Notes,
		VendorID:   in.VendorID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	contacts = append(contacts, contact)
	if err := encode(s.contacts, contacts); err != nil {
		return models.Contact{}, err
	}
	return contact, nil
}

func (s *Store) UpdateContact(id string, patch ContactPatch) (models.Contact, error) {
	contacts, err := s.ListContacts()
	if err != nil {
		return models.Contact{}, err
	}

	for i := range contacts {
		if contacts[i].ID != id {
			continue
		}

		c := &contacts[i]
		if patch.CustomerID != nil {
			ok, err := s.customerExists(*patch.CustomerID)
			if err != nil {
				return models.Contact{}, err
			}
			if !ok {
				return models.Contact{}, &ReferentialError{Kind: KindContact, Field: "customer_id", ReferencedID: *patch.CustomerID}
			}
			c.CustomerID = *patch.CustomerID
		}
		if patch.Name != nil {
			c.Name = *patch.Name
		}
		if patch.Email != nil {
			c.Email = *patch.Email
		}
		if patch.Phone != nil {
			c.Phone = *patch.Phone
		}
		if patch.Position != nil {
			c.Position = *patch.Position
		}
		if patch.Notes != nil {
			c.Notes = *patch.Notes
		}
		c.UpdatedAt = s.now()

		if err := encode(s.contacts, contacts); err != nil {
			return models.Contact{}, err
		}
		return *c, nil
	}

	return models.Contact{}, &NotFoundError{Kind: KindContact, ID: id}
}

func (s *Store) DeleteContact(id string) error {
	contacts, err := s.ListContacts()
	if err != nil {
		return err
	}

	kept := contacts[:0]
	for _, c := range contacts {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(contacts) {
		return &NotFoundError{Kind: KindContact, ID: id}
	}
	return encode(s.contacts, kept)
}

func (s *Store) deleteContactsOfCustomer(customerID string) error {
	contacts, err := s.ListContacts()
	if err != nil {
		return err
	}
	kept := contacts[:0]
	for _, c := range contacts {
		if c.CustomerID != customerID {
			kept = append(kept, c)
		}
	}
	return encode(s.contacts, kept)
}

func (s *Store) SearchContacts(term string) ([]models.Contact, error) {
	contacts, err := s.ListContacts()
	if err != nil {
		return nil, err
	}
	term = strings.ToLower(term)

	var results []models.Contact
	for _, c := range contacts {
		if containsFold(term, c.Name, c.Email, c.Phone, c.Position) {
			results = append(results, c)
		}
	}
	return results, nil
}
