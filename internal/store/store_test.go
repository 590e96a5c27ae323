package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// тестовые часы: каждый вызов now сдвигается на секунду вперёд
func newTestStore() *Store {
	s := NewMem()
	tick := 0
	s.now = func() time.Time {
		tick++
		return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC).Add(time.Duration(tick) * time.Second)
	}
	return s
}

func mustCustomer(t *testing.T, s *Store) string {
	t.Helper()
	customer, err := s.CreateCustomer(CustomerInput{
		Name:  "Acme Inc",
		Email: "a@acme.com",
		Phone: "555-0100",
	})
	require.NoError(t, err)
	return customer.ID
}

func strptr(s string) *string { return &s }

func TestCreateCustomerDefaults(t *testing.T) {
	s := newTestStore()

	customer, err := s.CreateCustomer(CustomerInput{
		Name:  "Acme Inc",
		Email: "a@acme.com",
		Phone: "555-0100",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, customer.ID)
	assert.Equal(t, "", customer.Address)
	assert.Equal(t, "", customer.Website)
	assert.Equal(t, "", customer.Industry)
	assert.Equal(t, "", customer.Notes)
	assert.True(t, customer.CreatedAt.Equal(customer.UpdatedAt))
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	s := newTestStore()

	created, err := s.CreateCustomer(CustomerInput{
		Name:  "Acme Inc",
		Email: "a@acme.com",
		Phone: "555-0100",
		Notes: "top account",
	})
	require.NoError(t, err)

	fetched, err := s.GetCustomer(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, fetched)
}

func TestIDsUnique(t *testing.T) {
	s := newTestStore()

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		customer, err := s.CreateCustomer(CustomerInput{Name: "C", Email: "c@c", Phone: "1"})
		require.NoError(t, err)
		require.False(t, seen[customer.ID], "duplicate id %s", customer.ID)
		seen[customer.ID] = true
	}
}

func TestListPreservesInsertionOrder(t *testing.T) {
	s := newTestStore()

	first, err := s.CreateCustomer(CustomerInput{Name: "First", Email: "1@x", Phone: "1"})
	require.NoError(t, err)
	second, err := s.CreateCustomer(CustomerInput{Name: "Second", Email: "2@x", Phone: "2"})
	require.NoError(t, err)

	customers, err := s.ListCustomers()
	require.NoError(t, err)
	require.Len(t, customers, 2)
	assert.Equal(t, first.ID, customers[0].ID)
	assert.Equal(t, second.ID, customers[1].ID)
}

func TestUpdateCustomerPartial(t *testing.T) {
	s := newTestStore()
	id := mustCustomer(t, s)

	before, err := s.GetCustomer(id)
	require.NoError(t, err)

	updated, err := s.UpdateCustomer(id, CustomerPatch{
		Name:     strptr("Acme Corporation"),
		Industry: strptr("Manufacturing"),
	})
	require.NoError(t, err)

	// заданные поля обновлены, пропущенные — не тронуты
	assert.Equal(t, "Acme Corporation", updated.Name)
	assert.Equal(t, "Manufacturing", updated.Industry)
	assert.Equal(t, before.Email, updated.Email)
	assert.Equal(t, before.Phone, updated.Phone)
	assert.Equal(t, before.ID, updated.ID)
	assert.True(t, updated.CreatedAt.Equal(before.CreatedAt))
	assert.True(t, updated.UpdatedAt.After(before.UpdatedAt))
}

func TestUpdateCustomerNotFound(t *testing.T) {
	s := newTestStore()

	_, err := s.UpdateCustomer("nonexistent", CustomerPatch{Name: strptr("X")})
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, KindCustomer, notFound.Kind)
}

func TestDeleteCustomerCascades(t *testing.T) {
	s := newTestStore()
	id := mustCustomer(t, s)
	other := mustCustomer(t, s)

	_, err := s.CreateContact(ContactInput{CustomerID: id, Name: "Jane Doe", Email: "j@acme.com", Phone: "555-0101"})
	require.NoError(t, err)
	_, err = s.CreateContact(ContactInput{CustomerID: other, Name: "Kept", Email: "k@x", Phone: "555-0199"})
	require.NoError(t, err)
	_, err = s.CreateDeal(DealInput{CustomerID: id, Title: "Big deal", Amount: 1000, Status: "Open"})
	require.NoError(t, err)

	require.NoError(t, s.DeleteCustomer(id))

	_, err = s.GetCustomer(id)
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)

	contacts, err := s.ListContacts()
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "Kept", contacts[0].Name)

	deals, err := s.ListDeals()
	require.NoError(t, err)
	assert.Empty(t, deals)
}

func TestDeleteNotFound(t *testing.T) {
	s := newTestStore()

	var notFound *NotFoundError
	require.ErrorAs(t, s.DeleteCustomer("missing"), &notFound)
	require.ErrorAs(t, s.DeleteContact("missing"), &notFound)
	require.ErrorAs(t, s.DeleteDeal("missing"), &notFound)
}

func TestCreateContactReferential(t *testing.T) {
	s := newTestStore()

	_, err := s.CreateContact(ContactInput{
		CustomerID: "nonexistent",
		Name:       "Jane Doe",
		Email:      "j@acme.com",
		Phone:      "555-0101",
	})
	var referential *ReferentialError
	require.ErrorAs(t, err, &referential)
	assert.Equal(t, KindContact, referential.Kind)
	assert.Equal(t, "customer_id", referential.Field)
	assert.Equal(t, "nonexistent", referential.ReferencedID)

	// неудачное создание ничего не записало
	contacts, err := s.ListContacts()
	require.NoError(t, err)
	assert.Empty(t, contacts)
}

func TestUpdateContactRevalidatesCustomerID(t *testing.T) {
	s := newTestStore()
	id := mustCustomer(t, s)

	contact, err := s.CreateContact(ContactInput{CustomerID: id, Name: "Jane", Email: "j@x", Phone: "1"})
	require.NoError(t, err)

	_, err = s.UpdateContact(contact.ID, ContactPatch{CustomerID: strptr("nonexistent")})
	var referential *ReferentialError
	require.ErrorAs(t, err, &referential)

	// без customer_id в патче ссылка не перепроверяется и не меняется
	updated, err := s.UpdateContact(contact.ID, ContactPatch{Position: strptr("CTO")})
	require.NoError(t, err)
	assert.Equal(t, id, updated.CustomerID)
	assert.Equal(t, "CTO", updated.Position)
}

func TestCreateDealReferential(t *testing.T) {
	s := newTestStore()

	_, err := s.CreateDeal(DealInput{CustomerID: "nope", Title: "T", Amount: 1, Status: "New"})
	var referential *ReferentialError
	require.ErrorAs(t, err, &referential)
	assert.Equal(t, KindDeal, referential.Kind)
}

func TestSearchCustomers(t *testing.T) {
	s := newTestStore()

	_, err := s.CreateCustomer(CustomerInput{Name: "Acme Inc", Email: "a@acme.com", Phone: "555-0100"})
	require.NoError(t, err)
	_, err = s.CreateCustomer(CustomerInput{Name: "Globex", Email: "g@globex.com", Phone: "555-0200", Industry: "Chemicals"})
	require.NoError(t, err)

	// без учёта регистра, по подстроке
	results, err := s.SearchCustomers("ACME")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Acme Inc", results[0].Name)

	// поле industry тоже участвует
	results, err = s.SearchCustomers("chem")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Globex", results[0].Name)

	results, err = s.SearchCustomers("zzz")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchDealsByAmountString(t *testing.T) {
	s := newTestStore()
	id := mustCustomer(t, s)

	_, err := s.CreateDeal(DealInput{CustomerID: id, Title: "Server order", Amount: 12500, Status: "Open"})
	require.NoError(t, err)
	_, err = s.CreateDeal(DealInput{CustomerID: id, Title: "License", Amount: 900, Status: "Won"})
	require.NoError(t, err)

	results, err := s.SearchDeals("12500")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Server order", results[0].Title)

	results, err = s.SearchDeals("won")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "License", results[0].Title)
}

func TestSearchContacts(t *testing.T) {
	s := newTestStore()
	id := mustCustomer(t, s)

	_, err := s.CreateContact(ContactInput{CustomerID: id, Name: "Jane Doe", Email: "j@acme.com", Phone: "555-0101", Position: "Director"})
	require.NoError(t, err)

	results, err := s.SearchContacts("director")
	require.NoError(t, err)
	require.Len(t, results, 1)

	results, err = s.SearchContacts("nobody")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestFindCustomerByPhoneExactMatch(t *testing.T) {
	s := newTestStore()

	created, err := s.CreateCustomer(CustomerInput{Name: "Acme Inc", Email: "a@acme.com", Phone: "555-0100"})
	require.NoError(t, err)

	found, err := s.FindCustomerByPhone("555-0100")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	// подстрока не считается совпадением
	_, err = s.FindCustomerByPhone("555-010")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestFileStorePersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	s, err := New(dir)
	require.NoError(t, err)
	created, err := s.CreateCustomer(CustomerInput{Name: "Acme Inc", Email: "a@acme.com", Phone: "555-0100"})
	require.NoError(t, err)

	reopened, err := New(dir)
	require.NoError(t, err)
	fetched, err := reopened.GetCustomer(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Name, fetched.Name)
	assert.True(t, created.CreatedAt.Equal(fetched.CreatedAt))
}

func TestBackupCopiesCollectionFiles(t *testing.T) {
	dir := t.TempDir()

	s, err := New(dir)
	require.NoError(t, err)
	_, err = s.CreateCustomer(CustomerInput{Name: "Acme Inc", Email: "a@acme.com", Phone: "555-0100"})
	require.NoError(t, err)

	backupDir, err := s.Backup("20250601_120000")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "backup", "20250601_120000"), backupDir)

	// копия байт в байт, включая пустые коллекции
	for _, name := range []string{"customers.json", "contacts.json", "deals.json"} {
		original, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		copied, err := os.ReadFile(filepath.Join(backupDir, name))
		require.NoError(t, err)
		assert.Equal(t, original, copied, name)
	}
}

func TestBackupRequiresFileStorage(t *testing.T) {
	s := NewMem()
	_, err := s.Backup("20250601_120000")
	require.Error(t, err)
}

// сценарий из жизни: клиент, контакты, каскад, поиск
func TestCustomerLifecycleScenario(t *testing.T) {
	s := newTestStore()

	customer, err := s.CreateCustomer(CustomerInput{Name: "Acme Inc", Email: "a@acme.com", Phone: "555-0100"})
	require.NoError(t, err)
	assert.Equal(t, "", customer.Address)

	_, err = s.CreateContact(ContactInput{CustomerID: customer.ID, Name: "Jane Doe", Email: "j@acme.com", Phone: "555-0101"})
	require.NoError(t, err)

	_, err = s.CreateContact(ContactInput{CustomerID: "nonexistent", Name: "Ghost", Email: "g@x", Phone: "0"})
	var referential *ReferentialError
	require.ErrorAs(t, err, &referential)

	results, err := s.SearchCustomers("acme")
	require.NoError(t, err)
	require.Len(t, results, 1)

	results, err = s.SearchCustomers("zzz")
	require.NoError(t, err)
	assert.Empty(t, results)

	require.NoError(t, s.DeleteCustomer(customer.ID))

	contacts, err := s.ListContacts()
	require.NoError(t, err)
	assert.Empty(t, contacts)
}
