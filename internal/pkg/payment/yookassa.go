package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/adboardhq/adboard/internal/pkg/env"
)

const defaultYooKassaAPIBaseURL = "https://api.yookassa.ru/v3"

// YooKassaConfig is the explicit gateway configuration. It is passed into the
// client constructor instead of living in process-wide state so tests can
// substitute their own endpoints per case.
type YooKassaConfig struct {
	ShopID     string
	SecretKey  string
	APIBaseURL string
	ReturnURL  string
}

// YooKassaClient implements Gateway against the YooKassa REST API.
type YooKassaClient struct {
	cfg        YooKassaConfig
	HTTPClient *http.Client
}

// NewYooKassaClient creates a gateway client from an explicit config.
func NewYooKassaClient(cfg YooKassaConfig) *YooKassaClient {
	if strings.TrimSpace(cfg.APIBaseURL) == "" {
		cfg.APIBaseURL = defaultYooKassaAPIBaseURL
	}
	return &YooKassaClient{
		cfg: cfg,
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// NewYooKassaClientFromEnv builds the production client from environment
// configuration.
func NewYooKassaClientFromEnv() *YooKassaClient {
	return NewYooKassaClient(YooKassaConfig{
		ShopID:     strings.TrimSpace(env.GetEnv("YOOKASSA_SHOP_ID", "")),
		SecretKey:  strings.TrimSpace(env.GetEnv("YOOKASSA_SECRET_KEY", "")),
		APIBaseURL: strings.TrimSpace(env.GetEnv("YOOKASSA_API_BASE_URL", defaultYooKassaAPIBaseURL)),
		ReturnURL:  strings.TrimSpace(env.GetEnv("YOOKASSA_RETURN_URL", "")),
	})
}

type yooKassaAmount struct {
	Value    string `json:"value"`
	Currency string `json:"currency"`
}

type yooKassaConfirmation struct {
	Type            string `json:"type"`
	ReturnURL       string `json:"return_url,omitempty"`
	ConfirmationURL string `json:"confirmation_url,omitempty"`
}

type yooKassaPayment struct {
	ID           string                `json:"id"`
	Status       string                `json:"status"`
	Amount       yooKassaAmount        `json:"amount"`
	Confirmation *yooKassaConfirmation `json:"confirmation,omitempty"`
}

// CreateCharge requests a new redirect-confirmed charge. The Idempotence-Key
// header carries the caller's fresh key.
func (c *YooKassaClient) CreateCharge(ctx context.Context, in CreateChargeInput) (*Charge, error) {
	if strings.TrimSpace(c.cfg.ShopID) == "" || strings.TrimSpace(c.cfg.SecretKey) == "" {
		return nil, errors.New("YOOKASSA_SHOP_ID/YOOKASSA_SECRET_KEY are not configured")
	}
	if strings.TrimSpace(in.IdempotencyKey) == "" {
		return nil, errors.New("idempotency key is required")
	}

	payload := map[string]interface{}{
		"amount": yooKassaAmount{
			Value:    strconv.FormatFloat(in.Amount, 'f', 2, 64),
			Currency: in.Currency,
		},
		"confirmation": yooKassaConfirmation{
			Type:      "redirect",
			ReturnURL: c.cfg.ReturnURL,
		},
		"capture":     true,
		"description": in.Description,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, strings.TrimRight(c.cfg.APIBaseURL, "/")+"/payments", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotence-Key", in.IdempotencyKey)
	req.SetBasicAuth(c.cfg.ShopID, c.cfg.SecretKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("yookassa charge create failed: status=%d body=%s", resp.StatusCode, string(respBody))
	}

	var out yooKassaPayment
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, err
	}
	if strings.TrimSpace(out.ID) == "" {
		return nil, errors.New("yookassa charge create returned empty id")
	}

	charge := &Charge{ID: out.ID, Status: out.Status}
	if out.Confirmation != nil {
		charge.ConfirmationURL = out.Confirmation.ConfirmationURL
	}
	return charge, nil
}

// GetCharge fetches the provider's current status for a charge.
func (c *YooKassaClient) GetCharge(ctx context.Context, id string) (*Charge, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errors.New("charge id is required")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, strings.TrimRight(c.cfg.APIBaseURL, "/")+"/payments/"+id, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(c.cfg.ShopID, c.cfg.SecretKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("yookassa charge lookup failed: status=%d body=%s", resp.StatusCode, string(respBody))
	}

	var out yooKassaPayment
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, err
	}
	if strings.TrimSpace(out.ID) == "" {
		return nil, errors.New("yookassa charge lookup returned empty id")
	}

	charge := &Charge{ID: out.ID, Status: out.Status}
	if out.Confirmation != nil {
		charge.ConfirmationURL = out.Confirmation.ConfirmationURL
	}
	return charge, nil
}
