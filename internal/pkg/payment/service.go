package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/adboardhq/adboard/app/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// ErrNotOwner is returned when a user tries to pay for an announcement
	// they do not own.
	ErrNotOwner = errors.New("may only pay for own announcement")

	// ErrPaymentNotFound covers both unknown provider payment ids and
	// ownership mismatches; foreign payments are indistinguishable from
	// missing ones on purpose.
	ErrPaymentNotFound = errors.New("payment not found")

	ErrPlanNotFound         = errors.New("plan not found")
	ErrAnnouncementNotFound = errors.New("announcement not found")
)

// GatewayError wraps a provider communication failure. Local state is never
// mutated when one is returned; the caller may simply retry.
type GatewayError struct {
	Op  string
	Err error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("payment gateway %s: %v", e.Op, e.Err)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

// InitiateResult is the outcome of starting a plan upgrade purchase.
type InitiateResult struct {
	FreePlanApplied bool   `json:"free_plan_applied,omitempty"`
	PaymentID       string `json:"payment_id,omitempty"`
	ConfirmationURL string `json:"confirmation_url,omitempty"`
}

// StatusResult is the outcome of a caller-driven status poll.
type StatusResult struct {
	PaymentID string `json:"payment_id"`
	Status    string `json:"status"`
	Paid      bool   `json:"paid"`
	Message   string `json:"message"`
}

// Currency all plans are priced in.
const Currency = "RUB"

// Service implements plan purchase initiation and payment reconciliation.
type Service struct {
	repo    Repository
	gateway Gateway
}

// NewService creates a payment service from injected collaborators.
func NewService(repo Repository, gateway Gateway) *Service {
	return &Service{repo: repo, gateway: gateway}
}

// NewServiceFromDB creates a payment service from a GORM DB handle and the
// environment-configured gateway client.
func NewServiceFromDB(db *gorm.DB) *Service {
	return NewService(NewRepository(db), NewYooKassaClientFromEnv())
}

// Initiate starts a plan upgrade purchase for an announcement the user owns.
// Zero-amount plans skip the gateway entirely: the payment record is created
// already paid and the announcement is promoted immediately. Paid plans
// create exactly one gateway charge, keyed by a fresh idempotency token, and
// leave the announcement untouched until confirmation.
func (s *Service) Initiate(ctx context.Context, userID, announcementID, planID uint) (*InitiateResult, error) {
	a, err := s.repo.GetAnnouncement(announcementID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnnouncementNotFound
		}
		return nil, err
	}
	plan, err := s.repo.GetPlan(planID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	if a.UserID != userID {
		return nil, ErrNotOwner
	}

	planIDCopy := plan.ID
	if plan.Amount == 0 {
		p := &models.Payment{
			UserID:            userID,
			AnnouncementID:    a.ID,
			PlanID:            &planIDCopy,
			Amount:            0,
			ProviderPaymentID: "",
			Paid:              true,
		}
		if err := s.repo.CreatePayment(p); err != nil {
			return nil, err
		}
		if err := s.repo.PromoteAnnouncement(a.ID, plan); err != nil {
			return nil, err
		}
		return &InitiateResult{FreePlanApplied: true}, nil
	}

	charge, err := s.gateway.CreateCharge(ctx, CreateChargeInput{
		Amount:         plan.Amount,
		Currency:       Currency,
		Description:    fmt.Sprintf("Payment for announcement %q, plan %s", a.Title, plan.Name),
		IdempotencyKey: uuid.NewString(),
	})
	if err != nil {
		return nil, &GatewayError{Op: "create charge", Err: err}
	}

	p := &models.Payment{
		UserID:            userID,
		AnnouncementID:    a.ID,
		PlanID:            &planIDCopy,
		Amount:            plan.Amount,
		ProviderPaymentID: charge.ID,
		Paid:              false,
	}
	if err := s.repo.CreatePayment(p); err != nil {
		return nil, err
	}

	return &InitiateResult{
		PaymentID:       charge.ID,
		ConfirmationURL: charge.ConfirmationURL,
	}, nil
}

// CheckStatus polls the gateway for a payment owned by the user and applies a
// confirmed settlement locally. The paid flip plus announcement promotion run
// as one conditional transaction, so duplicate polls and racing confirmations
// apply the promotion exactly once. Pending leaves everything untouched; any
// other provider status is reported as a failure and the payment stays unpaid
// permanently (a retry means a new Initiate and a new payment row).
func (s *Service) CheckStatus(ctx context.Context, userID uint, providerPaymentID string) (*StatusResult, error) {
	p, err := s.repo.GetPaymentByProviderID(providerPaymentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	if p.UserID != userID {
		return nil, ErrPaymentNotFound
	}

	charge, err := s.gateway.GetCharge(ctx, providerPaymentID)
	if err != nil {
		return nil, &GatewayError{Op: "get charge", Err: err}
	}

	switch charge.Status {
	case StatusSucceeded:
		if !p.Paid {
			if _, err := s.repo.ConfirmAndPromote(p.ID); err != nil {
				return nil, err
			}
		}
		return &StatusResult{
			PaymentID: charge.ID,
			Status:    charge.Status,
			Paid:      true,
			Message:   "payment succeeded",
		}, nil
	case StatusPending:
		return &StatusResult{
			PaymentID: charge.ID,
			Status:    charge.Status,
			Paid:      p.Paid,
			Message:   "payment pending",
		}, nil
	default:
		return &StatusResult{
			PaymentID: charge.ID,
			Status:    charge.Status,
			Paid:      p.Paid,
			Message:   "payment failed",
		}, nil
	}
}
