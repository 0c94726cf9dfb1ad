package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestYooKassaServer(t *testing.T) (*httptest.Server, *[]http.Request) {
	t.Helper()
	var seen []http.Request

	mux := http.NewServeMux()
	mux.HandleFunc("/payments", func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, *r.Clone(context.Background()))
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if user, pass, ok := r.BasicAuth(); !ok || user != "shop-1" || pass != "sk-test" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if r.Header.Get("Idempotence-Key") == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		var body struct {
			Amount yooKassaAmount `json:"amount"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_ = json.NewEncoder(w).Encode(yooKassaPayment{
			ID:     "pay_123",
			Status: StatusPending,
			Amount: body.Amount,
			Confirmation: &yooKassaConfirmation{
				Type:            "redirect",
				ConfirmationURL: "https://gw.example/confirm/pay_123",
			},
		})
	})
	mux.HandleFunc("/payments/pay_123", func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, *r.Clone(context.Background()))
		_ = json.NewEncoder(w).Encode(yooKassaPayment{ID: "pay_123", Status: StatusSucceeded})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &seen
}

func TestYooKassaCreateCharge(t *testing.T) {
	srv, _ := newTestYooKassaServer(t)
	client := NewYooKassaClient(YooKassaConfig{
		ShopID:     "shop-1",
		SecretKey:  "sk-test",
		APIBaseURL: srv.URL,
		ReturnURL:  "https://board.example/payment/success",
	})

	charge, err := client.CreateCharge(context.Background(), CreateChargeInput{
		Amount:         500,
		Currency:       Currency,
		Description:    "plan top",
		IdempotencyKey: "key-1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if charge.ID != "pay_123" || charge.Status != StatusPending {
		t.Fatalf("unexpected charge: %+v", charge)
	}
	if charge.ConfirmationURL != "https://gw.example/confirm/pay_123" {
		t.Fatalf("unexpected confirmation url: %q", charge.ConfirmationURL)
	}
}

func TestYooKassaCreateChargeRequiresIdempotencyKey(t *testing.T) {
	srv, seen := newTestYooKassaServer(t)
	client := NewYooKassaClient(YooKassaConfig{ShopID: "shop-1", SecretKey: "sk-test", APIBaseURL: srv.URL})

	_, err := client.CreateCharge(context.Background(), CreateChargeInput{Amount: 500, Currency: Currency})
	if err == nil {
		t.Fatalf("expected error for missing idempotency key")
	}
	if len(*seen) != 0 {
		t.Fatalf("expected no request to reach the gateway, got %d", len(*seen))
	}
}

func TestYooKassaGetCharge(t *testing.T) {
	srv, _ := newTestYooKassaServer(t)
	client := NewYooKassaClient(YooKassaConfig{ShopID: "shop-1", SecretKey: "sk-test", APIBaseURL: srv.URL})

	charge, err := client.GetCharge(context.Background(), "pay_123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if charge.ID != "pay_123" || charge.Status != StatusSucceeded {
		t.Fatalf("unexpected charge: %+v", charge)
	}
}

func TestYooKassaGetChargeServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	client := NewYooKassaClient(YooKassaConfig{ShopID: "shop-1", SecretKey: "sk-test", APIBaseURL: srv.URL})
	if _, err := client.GetCharge(context.Background(), "pay_123"); err == nil {
		t.Fatalf("expected error for 5xx response")
	}
}
