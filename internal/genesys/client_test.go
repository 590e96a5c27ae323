package genesys

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2/clientcredentials"
)

// поднимает фейковый Genesys: выдаёт токен и отдаёт mux дальше
func newTestClient(t *testing.T, handler func(w http.ResponseWriter, r *http.Request)) *Client {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "test-token",
			"token_type":   "bearer",
			"expires_in":   3600,
		})
	})
	mux.HandleFunc("/", handler)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	cc := clientcredentials.Config{
		ClientID:     "client",
		ClientSecret: "secret",
		TokenURL:     srv.URL + "/oauth/token",
	}
	return &Client{
		baseURL:    srv.URL,
		httpClient: cc.Client(context.Background()),
		configured: true,
	}
}

func TestNotConfigured(t *testing.T) {
	c := NewClient(Config{Region: "us-east-1"})
	assert.False(t, c.IsConfigured())

	_, err := c.GetUsers(context.Background(), 25, 1)
	var vendor *VendorError
	require.ErrorAs(t, err, &vendor)
	assert.Contains(t, vendor.Error(), "not configured")
}

func TestRegionTable(t *testing.T) {
	c := NewClient(Config{ClientID: "id", ClientSecret: "s", Region: "eu-west-2"})
	assert.Equal(t, "https://api.mypurecloud.london", c.baseURL)
	assert.True(t, c.IsConfigured())

	// неизвестный регион падает на дефолтный URL
	c = NewClient(Config{ClientID: "id", ClientSecret: "s", Region: "mars-1"})
	assert.Equal(t, defaultBaseURL, c.baseURL)
}

func TestGetUsersSendsTokenAndParams(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/users", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "10", r.URL.Query().Get("pageSize"))
		assert.Equal(t, "2", r.URL.Query().Get("pageNumber"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"entities": []any{map[string]any{"id": "u1"}},
		})
	})

	resp, err := c.GetUsers(context.Background(), 10, 2)
	require.NoError(t, err)
	entities, ok := resp["entities"].([]any)
	require.True(t, ok)
	assert.Len(t, entities, 1)
}

func TestCreateContactPostsPayload(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v2/externalcontacts/contacts", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Jane", body["firstName"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"id": "vendor-1"})
	})

	resp, err := c.CreateContact(context.Background(), map[string]any{"firstName": "Jane"})
	require.NoError(t, err)
	assert.Equal(t, "vendor-1", resp["id"])
}

func TestNon2xxTaggedAsVendorError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"boom"}`, http.StatusBadGateway)
	})

	_, err := c.GetQueues(context.Background(), 25, 1)
	var vendor *VendorError
	require.ErrorAs(t, err, &vendor)
	assert.Contains(t, vendor.Error(), "502")
}

func TestEmptyBodyMeansSuccess(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	resp, err := c.GetInteraction(context.Background(), "int-1")
	require.NoError(t, err)
	assert.Equal(t, "success", resp["status"])
}
