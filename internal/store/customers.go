package store

import (
	"strings"

	"crm-integrator/internal/models"

	"github.com/google/uuid"
)

type CustomerInput struct {
	Name     string
	Email    string
	Phone    string
	Address  string
	Website  string
	Industry string
	Notes    string
}

// CustomerPatch — частичное обновление: nil-поле остаётся как было.
type CustomerPatch struct {
	Name     *string
	Email    *string
	Phone    *string
	Address  *string
	Website  *string
	Industry *string
	Notes    *string
}

func (s *Store) ListCustomers() ([]models.Customer, error) {
	return decode[models.Customer](s.customers)
}

func (s *Store) GetCustomer(id string) (models.Customer, error) {
	customers, err := s.ListCustomers()
	if err != nil {
		return models.Customer{}, err
	}
	for _, c := range customers {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Customer{}, &NotFoundError{Kind: KindCustomer, ID: id}
}

func (s *Store) CreateCustomer(in CustomerInput) (models.Customer, error) {
	customers, err := s.ListCustomers()
	if err != nil {
		return models.Customer{}, err
	}

	now := s.now()
	customer := models.Customer{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
		Website:   in.Website,
		Industry:  in.Industry,
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}

	customers = append(customers, customer)
	if err := encode(s.customers, customers); err != nil {
		return models.Customer{}, err
	}
	return customer, nil
}

func (s *Store) UpdateCustomer(id string, patch CustomerPatch) (models.Customer, error) {
	customers, err := s.ListCustomers()
	if err != nil {
		return models.Customer{}, err
	}

	for i := range customers {
		if customers[i].ID != id {
			continue
		}

		c := &customers[i]
		if patch.Name != nil {
			c.Name = *patch.Name
		}
		if patch.Email != nil {
			c.Email = *patch.Email
		}
		if patch.Phone != nil {
			c.Phone = *patch.Phone
		}
		if patch.Address != nil {
			c.Address = *patch.Address
		}
		if patch.Website != nil {
			c.Website = *patch.Website
		}
		if patch.Industry != nil {
			c.Industry = *patch.Industry
		}
		if patch.Notes != nil {
			c.Notes = *patch.Notes
		}
		c.UpdatedAt = s.now()

		if err := encode(s.customers, customers); err != nil {
			return models.Customer{}, err
		}
		return *c, nil
	}

	return models.Customer{}, &NotFoundError{Kind: KindCustomer, ID: id}
}

// DeleteCustomer удаляет клиента и каскадом все его контакты и сделки.
func (s *Store) DeleteCustomer(id string) error {
	customers, err := s.ListCustomers()
	if err != nil {
		return err
	}

	kept := customers[:0]
	for _, c := range customers {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(customers) {
		return &NotFoundError{Kind: KindCustomer, ID: id}
	}
	if err := encode(s.customers, kept); err != nil {
		return err
	}

	if err := s.deleteContactsOfCustomer(id); err != nil {
		return err
	}
	return s.deleteDealsOfCustomer(id)
}

func (s *Store) SearchCustomers(term string) ([]models.Customer, error) {
	customers, err := s.ListCustomers()
	if err != nil {
		return nil, err
	}
	term = strings.ToLower(term)

	var results []models.Customer
	for _, c := range customers {
		if containsFold(term, c.Name, c.Email, c.Phone, c.Industry) {
			results = append(results, c)
		}
	}
	return results, nil
}

// FindCustomerByPhone — точное совпадение номера, используется для
// screen pop при входящем звонке.
func (s *Store) FindCustomerByPhone(phone string) (models.Customer, error) {
	customers, err := s.ListCustomers()
	if err != nil {
		return models.Customer{}, err
	}
	for _, c := range customers {
		if c.Phone == phone {
			return c, nil
		}
	}
	return models.Customer{}, &NotFoundError{Kind: KindCustomer, ID: phone}
}

func (s *Store) customerExists(id string) (bool, error) {
	customers, err := s.ListCustomers()
	if err != nil {
		return false, err
	}
	for _, c := range customers {
		if c.ID == id {
			return true, nil
		}
	}
	return false, nil
}

// containsFold — подстрочный поиск без учёта регистра; term уже в нижнем
// регистре.
func containsFold(term string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}
