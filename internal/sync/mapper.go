package sync

import (
	"context"
	"fmt"
	"strings"

	"crm-integrator/internal/models"
	"crm-integrator/internal/store"
)

// vendorAPI — срез клиента Genesys, который нужен маппингу. Тесты
// подставляют сюда фейк.
type vendorAPI interface {
	IsConfigured() bool
	GetContacts(ctx context.Context, limit, page int) (map[string]any, error)
	CreateContact(ctx context.Context, payload any) (map[string]any, error)
	GetInteraction(ctx context.Context, id string) (map[string]any, error)
}

// Mapper переводит записи между локальной схемой и схемой контактов
// Genesys Cloud. Состояния между вызовами не держит.
type Mapper struct {
	store  *store.Store
	vendor vendorAPI
}

func NewMapper(s *store.Store, vendor vendorAPI) *Mapper {
	return &Mapper{store: s, vendor: vendor}
}

type EmailAddress struct {
	Address string `json:"address"`
}

type PhoneNumber struct {
	Number string `json:"number"`
}

type ExternalID struct {
	Value string `json:"value"`
}

// ContactPayload — контакт в схеме Genesys External Contacts.
type ContactPayload struct {
	FirstName      string         `json:"firstName"`
	LastName       string         `json:"lastName"`
	EmailAddresses []EmailAddress `json:"emailAddresses"`
	PhoneNumbers   []PhoneNumber  `json:"phoneNumbers"`
	ExternalIDs    []ExternalID   `json:"externalIds"`
}

// ExportContact собирает payload для Genesys: первый токен имени идёт в
// firstName, остальные — в lastName; email и телефон заворачиваются в
// одноэлементные списки; локальный id уезжает в externalIds.
func ExportContact(c models.Contact) ContactPayload {
	var first, last string
	if parts := strings.Fields(c.Name); len(parts) > 0 {
		first = parts[0]
		last = strings.Join(parts[1:], " ")
	}

	payload := ContactPayload{
		FirstName:      first,
		LastName:       last,
		EmailAddresses: []EmailAddress{},
		PhoneNumbers:   []PhoneNumber{},
		ExternalIDs:    []ExternalID{{Value: c.ID}},
	}
	if c.Email != "" {
		payload.EmailAddresses = []EmailAddress{{Address: c.Email}}
	}
	if c.Phone != "" {
		payload.PhoneNumbers = []PhoneNumber{{Number: c.Phone}}
	}
	return payload
}

// ImportContact переводит контакт Genesys в поля локального контакта.
// Клиент-владелец задаётся вызывающей стороной: у вендорского контакта
// своего customer_id нет.
func ImportContact(vc map[string]any, customerID string) store.ContactInput {
	vendorID := strField(vc, "id")

	name := strings.TrimSpace(strField(vc, "firstName") + " " + strField(vc, "lastName"))

	return store.ContactInput{
		CustomerID: customerID,
		Name:       name,
		Email:      firstEntry(vc, "emailAddresses", "address"),
		Phone:      firstEntry(vc, "phoneNumbers", "number"),
		Notes:      fmt.Sprintf("Imported from Genesys Cloud. Contact ID: %s", vendorID),
		VendorID:   vendorID,
	}
}

// SyncAllContactsOut выгружает все локальные контакты в Genesys. Цикл
// best-effort: ошибка по одному контакту не останавливает остальные,
// ответ вендора (или его ошибка) складывается в результат как есть.
func (m *Mapper) SyncAllContactsOut(ctx context.Context) (int, []map[string]any, error) {
	contacts, err := m.store.ListContacts()
	if err != nil {
		return 0, nil, err
	}

	exported := 0
	results := make([]map[string]any, 0, len(contacts))
	for _, c := range contacts {
		resp, err := m.vendor.CreateContact(ctx, ExportContact(c))
		if err != nil {
			results = append(results, map[string]any{"error": err.Error()})
			continue
		}
		exported++
		results = append(results, resp)
	}
	return exported, results, nil
}

// BulkImport забирает до limit контактов из Genesys и создаёт их как
// локальные контакты указанного клиента. Ошибка выборки прерывает всё
// до единой локальной записи; ошибка создания — фатальна для вызова.
func (m *Mapper) BulkImport(ctx context.Context, customerID string, limit int) ([]models.Contact, error) {
	resp, err := m.vendor.GetContacts(ctx, limit, 1)
	if err != nil {
		return nil, err
	}

	entities, _ := resp["entities"].([]any)

	created := make([]models.Contact, 0, len(entities))
	for _, e := range entities {
		if len(created) >= limit {
			break
		}
		vc, ok := e.(map[string]any)
		if !ok {
			continue
		}
		contact, err := m.store.CreateContact(ImportContact(vc, customerID))
		if err != nil {
			return nil, err
		}
		created = append(created, contact)
	}
	return created, nil
}

// RecordInteractionAsDeal фиксирует взаимодействие Genesys как сделку.
// При ошибке вендора локально ничего не создаётся.
func (m *Mapper) RecordInteractionAsDeal(ctx context.Context, interactionID, customerID string) (models.Deal, error) {
	if _, err := m.vendor.GetInteraction(ctx, interactionID); err != nil {
		return models.Deal{}, err
	}

	return m.store.CreateDeal(store.DealInput{
		CustomerID:    customerID,
		Title:         "Interaction " + interactionID,
		Amount:        0,
		Status:        "New",
		InteractionID: interactionID,
	})
}

func strField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

// firstEntry достаёт поле первого элемента вложенного списка, либо "".
func firstEntry(m map[string]any, listKey, entryKey string) string {
	list, _ := m[listKey].([]any)
	if len(list) == 0 {
		return ""
	}
	entry, _ := list[0].(map[string]any)
	return strField(entry, entryKey)
}
