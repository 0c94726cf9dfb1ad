package payment

import "context"

// Gateway statuses as reported by the external payment provider. Anything
// other than succeeded/pending is treated as a terminal failure.
const (
	StatusSucceeded = "succeeded"
	StatusPending   = "pending"
)

// CreateChargeInput describes a new charge. The idempotency key must be
// freshly generated per call; providers use it for deduplication.
type CreateChargeInput struct {
	Amount         float64
	Currency       string
	Description    string
	IdempotencyKey string
}

// Charge is the provider's view of a created charge.
type Charge struct {
	ID              string
	Status          string
	ConfirmationURL string
}

// Gateway abstracts the external payment provider. Implementations must not
// retry on their own; errors are surfaced to the caller untouched.
type Gateway interface {
	CreateCharge(ctx context.Context, in CreateChargeInput) (*Charge, error)
	GetCharge(ctx context.Context, id string) (*Charge, error)
}
