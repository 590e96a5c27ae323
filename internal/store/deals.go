package store

import (
	"strconv"
	"strings"

	"crm-integrator/internal/models"

	"github.com/google/uuid"
)

type DealInput struct {
	CustomerID        string
	Title             string
	Amount            float64
	Status            string
	ExpectedCloseDate string
	Description       string
	InteractionID     string
}

type DealPatch struct {
	CustomerID        *string
	Title             *string
	Amount            *float64
	Status            *string
	ExpectedCloseDate *string
	Description       *string
}

func (s *Store) ListDeals() ([]models.Deal, error) {
	return decode[models.Deal](s.deals)
}

func (s *Store) GetDeal(id string) (models.Deal, error) {
	deals, err := s.ListDeals()
	if err != nil {
		return models.Deal{}, err
	}
	for _, d := range deals {
		if d.ID == id {
			return d, nil
		}
	}
	return models.Deal{}, &NotFoundError{Kind: KindDeal, ID: id}
}

func (s *Store) CreateDeal(in DealInput) (models.Deal, error) {
	ok, err := s.customerExists(in.CustomerID)
	if err != nil {
		return models.Deal{}, err
	}
	if !ok {
		return models.Deal{}, &ReferentialError{Kind: KindDeal, Field: "customer_id", ReferencedID: in.CustomerID}
	}

	deals, err := s.ListDeals()
	if err != nil {
		return models.Deal{}, err
	}

	now := s.now()
	deal := models.Deal{
		ID:                uuid.NewString(),
		CustomerID:        in.CustomerID,
		Title:             in.Title,
		Amount:            in.Amount,
		Status:            in.Status,
		ExpectedCloseDate: in.ExpectedCloseDate,
		Description:       in.Description,
		InteractionID:     in.InteractionID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	deals = append(deals, deal)
	if err := encode(s.deals, deals); err != nil {
		return models.Deal{}, err
	}
	return deal, nil
}

func (s *Store) UpdateDeal(id string, patch DealPatch) (models.Deal, error) {
	deals, err := s.ListDeals()
	if err != nil {
		return models.Deal{}, err
	}

	for i := range deals {
		if deals[i].ID != id {
			continue
		}

		d := &deals[i]
		if patch.CustomerID != nil {
			ok, err := s.customerExists(*patch.CustomerID)
			if err != nil {
				return models.Deal{}, err
			}
			if !ok {
				return models.Deal{}, &ReferentialError{Kind: KindDeal, Field: "customer_id", ReferencedID: *patch.CustomerID}
			}
			d.CustomerID = *patch.CustomerID
		}
		if patch.Title != nil {
			d.Title = *patch.Title
		}
		if patch.Amount != nil {
			d.Amount = *patch.Amount
		}
		if patch.Status != nil {
			d.Status = *patch.Status
		}
		if patch.ExpectedCloseDate != nil {
			d.ExpectedCloseDate = *patch.ExpectedCloseDate
		}
		if patch.Description != nil {
			d.Description = *patch.Description
		}
		d.UpdatedAt = s.now()

		if err := encode(s.deals, deals); err != nil {
			return models.Deal{}, err
		}
		return *d, nil
	}

	return models.Deal{}, &NotFoundError{Kind: KindDeal, ID: id}
}

func (s *Store) DeleteDeal(id string) error {
	deals, err := s.ListDeals()
	if err != nil {
		return err
	}

	kept := deals[:0]
	for _, d := range deals {
		if d.ID != id {
			kept = append(kept, d)
		}
	}
	if len(kept) == len(deals) {
		return &NotFoundError{Kind: KindDeal, ID: id}
	}
	return encode(s.deals, kept)
}

func (s *Store) deleteDealsOfCustomer(customerID string) error {
	deals, err := s.ListDeals()
	if err != nil {
		return err
	}
	kept := deals[:0]
	for _, d := range deals {
		if d.CustomerID != customerID {
			kept = append(kept, d)
		}
	}
	return encode(s.deals, kept)
}

// SearchDeals ищет по названию, статусу, описанию и строковой форме суммы.
func (s *Store) SearchDeals(term string) ([]models.Deal, error) {
	deals, err := s.ListDeals()
	if err != nil {
		return nil, err
	}
	term = strings.ToLower(term)

	var results []models.Deal
	for _, d := range deals {
		amount := strconv.FormatFloat(d.Amount, 'f', -1, 64)
		if containsFold(term, d.Title, d.Status, d.Description, amount) {
			results = append(results, d)
		}
	}
	return results, nil
}
