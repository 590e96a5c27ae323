package genesys

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// базовые URL по регионам Genesys Cloud
var baseURLs = map[string]string{
	"us-east-1":      "https://api.mypurecloud.com",
	"us-west-2":      "https://api.usw2.pure.cloud",
	"eu-west-1":      "https://api.mypurecloud.ie",
	"eu-central-1":   "https://api.mypurecloud.de",
	"ap-southeast-2": "https://api.mypurecloud.com.au",
	"ap-northeast-1": "https://api.mypurecloud.jp",
	"eu-west-2":      "https://api.mypurecloud.london",
	"ca-central-1":   "https://api.cac1.pure.cloud",
	"ap-northeast-2": "https://api.apne2.pure.cloud",
	"eu-central-2":   "https://api.mypurecloud.de",
	"sa-east-1":      "https://api.sae1.pure.cloud",
	"ap-south-1":     "https://api.aps1.pure.cloud",
}

const defaultBaseURL = "https://api.mypurecloud.com"

const requestTimeout = 30 * time.Second

type Config struct {
	ClientID     string
	ClientSecret string
	Region       string
}

// VendorError — любой сбой внешнего вызова: транспорт, токен, таймаут
// или не-2xx ответ.
type VendorError struct {
	Op      string
	Message string
}

func (e *VendorError) Error() string {
	return fmt.Sprintf("genesys: %s: %s", e.Op, e.Message)
}

// Client ходит в Genesys Cloud с bearer-токеном, полученным по
// client-credentials. Кэширование и обновление токена делает oauth2.
type Client struct {
	baseURL    string
	httpClient *http.Client
	configured bool
}

func NewClient(cfg Config) *Client {
	base, ok := baseURLs[cfg.Region]
	if !ok {
		base = defaultBaseURL
	}

	c := &Client{baseURL: base}
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return c
	}

	cc := clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     base + "/oauth/token",
		AuthStyle:    oauth2.AuthStyleInHeader,
	}
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient,
		&http.Client{Timeout: requestTimeout})

	c.httpClient = cc.Client(ctx)
	c.httpClient.Timeout = requestTimeout
	c.configured = true
	return c
}

func (c *Client) IsConfigured() bool {
	return c.configured
}

func pageParams(limit, page int) url.Values {
	return url.Values{
		"pageSize":   []string{strconv.Itoa(limit)},
		"pageNumber": []string{strconv.Itoa(page)},
	}
}

func (c *Client) GetUsers(ctx context.Context, limit, page int) (map[string]any, error) {
	return c.request(ctx, http.MethodGet, "/api/v2/users", pageParams(limit, page), nil)
}

func (c *Client) GetUser(ctx context.Context, id string) (map[string]any, error) {
	return c.request(ctx, http.MethodGet, "/api/v2/users/"+id, nil, nil)
}

func (c *Client) GetContacts(ctx context.Context, limit, page int) (map[string]any, error) {
	return c.request(ctx, http.MethodGet, "/api/v2/externalcontacts/contacts", pageParams(limit, page), nil)
}

func (c *Client) GetContact(ctx context.Context, id string) (map[string]any, error) {
	return c.request(ctx, http.MethodGet, "/api/v2/externalcontacts/contacts/"+id, nil, nil)
}

func (c *Client) CreateContact(ctx context.Context, payload any) (map[string]any, error) {
	return c.request(ctx, http.MethodPost, "/api/v2/externalcontacts/contacts", nil, payload)
}

func (c *Client) UpdateContact(ctx context.Context, id string, payload any) (map[string]any, error) {
	return c.request(ctx, http.MethodPut, "/api/v2/externalcontacts/contacts/"+id, nil, payload)
}

func (c *Client) GetInteractions(ctx context.Context, limit, page int) (map[string]any, error) {
	return c.request(ctx, http.MethodGet, "/api/v2/analytics/conversations/details", pageParams(limit, page), nil)
}

func (c *Client) GetInteraction(ctx context.Context, id string) (map[string]any, error) {
	return c.request(ctx, http.MethodGet, "/api/v2/analytics/conversations/"+id+"/details", nil, nil)
}

func (c *Client) GetQueues(ctx context.Context, limit, page int) (map[string]any, error) {
	return c.request(ctx, http.MethodGet, "/api/v2/routing/queues", pageParams(limit, page), nil)
}

func (c *Client) request(ctx context.Context, method, endpoint string, params url.Values, body any) (map[string]any, error) {
	if !c.configured {
		return nil, &VendorError{Op: endpoint, Message: "integration not configured"}
	}

	u := c.baseURL + endpoint
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, &VendorError{Op: endpoint, Message: "encode request: " + err.Error()}
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return nil, &VendorError{Op: endpoint, Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &VendorError{Op: endpoint, Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &VendorError{Op: endpoint, Message: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := resp.Status
		if len(raw) > 0 {
			msg = fmt.Sprintf("%s: %s", resp.Status, raw)
		}
		return nil, &VendorError{Op: endpoint, Message: msg}
	}

	if len(raw) == 0 {
		return map[string]any{"status": "success"}, nil
	}

	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, &VendorError{Op: endpoint, Message: "decode response: " + err.Error()}
	}
	return out, nil
}
