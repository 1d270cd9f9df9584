// Package clover implements the POS provider boundary against the Clover v3
// API. Read endpoints degrade to fixed fallbacks so the dashboard always
// renders; the token exchange and customer fetch surface errors because their
// callers mutate state.
package clover

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"autopilot/config"
	"autopilot/internal/domain/entity"
	"autopilot/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	defaultRequestTimeout = 30 * time.Second

	// Merchant profile data changes rarely; stats and logs are always
	// fetched fresh.
	merchantInfoTTL = time.Hour

	ordersFetchLimit = 100

	fallbackMerchantName = "Valued Merchant"
)

// Client calls the Clover v3 API. It implements service.POSService.
type Client struct {
	appID      string
	appSecret  string
	baseURL    string
	tokenURL   string
	httpClient *http.Client
	logger     *slog.Logger

	// Merchant info cache, keyed by merchant id.
	infoCache map[string]cachedInfo
	infoMutex sync.RWMutex

	now func() time.Time
}

type cachedInfo struct {
	info      entity.MerchantInfo
	expiresAt time.Time
}

// NewClient creates a Clover API client from configuration.
func NewClient(cfg *config.Config, logger *slog.Logger) service.POSService {
	client := &Client{
		baseURL:    "https://sandbox.dev.clover.com/v3",
		tokenURL:   "https://sandbox.dev.clover.com/oauth/token",
		httpClient: &http.Client{Timeout: defaultRequestTimeout},
		logger:     logger,
		infoCache:  make(map[string]cachedInfo),
		now:        time.Now,
	}

	if cfg.Clover != nil {
		client.appID = cfg.Clover.AppID
		client.appSecret = cfg.Clover.AppSecret
		if cfg.Clover.BaseURL != "" {
			client.baseURL = strings.TrimRight(cfg.Clover.BaseURL, "/")
		}
		if cfg.Clover.TokenURL != "" {
			client.tokenURL = cfg.Clover.TokenURL
		}
	}

	return client
}

// ExchangeCode trades an authorization code for an access token with one
// form-encoded POST. Any failure is a hard error; the OAuth flow never
// retries.
func (c *Client) ExchangeCode(ctx context.Context, code string) (*service.TokenGrant, error) {
	form := url.Values{}
	form.Set("client_id", c.appID)
	form.Set("client_secret", c.appSecret)
	form.Set("code", code)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create token request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "token exchange request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read token response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Error("Clover token exchange failed",
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(body)),
		)

		return nil, errors.Errorf("token exchange failed with status %d", resp.StatusCode)
	}

	var tokenResp struct {
		AccessToken string `json:"access_token"`
		MerchantID  string `json:"merchant_id"`
	}
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return nil, errors.Wrap(err, "failed to decode token response")
	}
	if tokenResp.AccessToken == "" {
		return nil, errors.New("token response missing access_token")
	}

	return &service.TokenGrant{
		AccessToken: tokenResp.AccessToken,
		MerchantID:  tokenResp.MerchantID,
	}, nil
}

// MerchantInfo fetches the merchant profile, serving a cached copy when one
// is fresh. Any upstream failure degrades to a placeholder name.
func (c *Client) MerchantInfo(ctx context.Context, merchantID, accessToken string) service.Outcome[entity.MerchantInfo] {
	if info, ok := c.cachedMerchantInfo(merchantID); ok {
		return service.OK(info)
	}

	var info entity.MerchantInfo
	if err := c.getJSON(ctx, c.baseURL+"/merchants/"+merchantID, accessToken, &info); err != nil {
		c.logger.Error("Clover merchant info fetch failed",
			slog.String("merchantId", merchantID),
			slog.Any("error", err),
		)

		return service.Fallback(entity.MerchantInfo{Name: fallbackMerchantName})
	}

	c.storeMerchantInfo(merchantID, info)

	return service.OK(info)
}

// DailyStats fetches recent orders and reduces them to total revenue in
// currency units plus an order count. The POS reports totals in minor units.
func (c *Client) DailyStats(ctx context.Context, merchantID, accessToken string) service.Outcome[entity.DailyStats] {
	var ordersResp struct {
		Elements []struct {
			Total int64 `json:"total"`
		} `json:"elements"`
	}

	endpoint := c.baseURL + "/merchants/" + merchantID + "/orders?limit=" + strconv.Itoa(ordersFetchLimit)
	if err := c.getJSON(ctx, endpoint, accessToken, &ordersResp); err != nil {
		c.logger.Error("Clover stats fetch failed",
			slog.String("merchantId", merchantID),
			slog.Any("error", err),
		)

		return service.Fallback(entity.DailyStats{})
	}

	var totalMinorUnits int64
	for _, order := range ordersResp.Elements {
		totalMinorUnits += order.Total
	}

	return service.OK(entity.DailyStats{
		Total: float64(totalMinorUnits) / 100,
		Count: len(ordersResp.Elements),
	})
}

// FetchCustomers retrieves up to limit customers. Unlike the read adapters it
// propagates failure: the sync path must commit all rows or none, and a
// silent fallback would corrupt the customer table.
func (c *Client) FetchCustomers(ctx context.Context, merchantID, accessToken string, limit int) ([]*entity.Customer, error) {
	var customersResp struct {
		Elements []struct {
			ID             string `json:"id"`
			FirstName      string `json:"firstName"`
			LastName       string `json:"lastName"`
			EmailAddresses []struct {
				EmailAddress string `json:"emailAddress"`
			} `json:"emailAddresses"`
			PhoneNumbers []struct {
				PhoneNumber string `json:"phoneNumber"`
			} `json:"phoneNumbers"`
		} `json:"elements"`
	}

	endpoint := c.baseURL + "/merchants/" + merchantID + "/customers?limit=" + strconv.Itoa(limit)
	if err := c.getJSON(ctx, endpoint, accessToken, &customersResp); err != nil {
		return nil, errors.Wrap(err, "customer fetch failed")
	}

	customers := make([]*entity.Customer, 0, len(customersResp.Elements))
	for _, raw := range customersResp.Elements {
		customer := &entity.Customer{
			ID:         raw.ID,
			MerchantID: merchantID,
			FirstName:  raw.FirstName,
			LastName:   raw.LastName,
		}
		if len(raw.EmailAddresses) > 0 {
			customer.Email = raw.EmailAddresses[0].EmailAddress
		}
		if len(raw.PhoneNumbers) > 0 {
			customer.PhoneNumber = raw.PhoneNumbers[0].PhoneNumber
		}
		customers = append(customers, customer)
	}

	return customers, nil
}

// getJSON issues one bearer-authorized GET and decodes a 2xx JSON body into
// out. Non-2xx statuses return an error carrying the response body.
func (c *Client) getJSON(ctx context.Context, endpoint, accessToken string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)

		return errors.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "failed to decode response body")
	}

	return nil
}

func (c *Client) cachedMerchantInfo(merchantID string) (entity.MerchantInfo, bool) {
	c.infoMutex.RLock()
	defer c.infoMutex.RUnlock()

	cached, ok := c.infoCache[merchantID]
	if !ok || c.now().After(cached.expiresAt) {
		return entity.MerchantInfo{}, false
	}

	return cached.info, true
}

func (c *Client) storeMerchantInfo(merchantID string, info entity.MerchantInfo) {
	c.infoMutex.Lock()
	defer c.infoMutex.Unlock()

	c.infoCache[merchantID] = cachedInfo{
		info:      info,
		expiresAt: c.now().Add(merchantInfoTTL),
	}
}
